package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DhavalSuthar-24/eplradar/internal/models"
	"github.com/DhavalSuthar-24/eplradar/internal/seed"
	"github.com/DhavalSuthar-24/eplradar/internal/testutil"
)

func TestSeedArgs(t *testing.T) {
	c := newSeedCmd()
	assert.NoError(t, c.Args(c, []string{"clubs"}))
	assert.NoError(t, c.Args(c, []string{"derive-clubs"}))
	assert.Error(t, c.Args(c, []string{"venues"}))
	assert.Error(t, c.Args(c, nil))
	assert.Error(t, c.Args(c, []string{"clubs", "players"}))
}

func TestRunSeed(t *testing.T) {
	db := testutil.NewDB(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, seed.ClubsFile),
		[]byte("Club_name,Win_count,Draw_count,Lose_count\nArsenal,2,1,0\n"), 0o644))

	opts := seedOptions{dataDir: dir, mediaDir: t.TempDir()}
	var out bytes.Buffer
	require.NoError(t, runSeed(context.Background(), &out, db, "clubs", opts))
	assert.Contains(t, out.String(), "clubs.csv: 1 created")

	var club models.Club
	require.NoError(t, db.Where("name = ?", "Arsenal").First(&club).Error)
	assert.Equal(t, 7, club.Points())

	out.Reset()
	require.NoError(t, runSeed(context.Background(), &out, db, "all", opts))
	assert.Contains(t, out.String(), "clubs.csv: 0 created, 1 updated")

	err := runSeed(context.Background(), &out, db, "players", opts)
	assert.Error(t, err, "players.csv is missing")
}

func TestDeriveClubsCommand(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, seed.MatchesFile),
		[]byte("Home_Team,Away_Team,Home_Team_Score,Away_Team_Score\nArsenal,Chelsea,1,0\n"), 0o644))

	var out bytes.Buffer
	require.NoError(t, deriveClubs(&out, seedOptions{dataDir: dir}))
	assert.Contains(t, out.String(), "wrote 2 clubs")
	assert.FileExists(t, filepath.Join(dir, seed.ClubsFile))
}
