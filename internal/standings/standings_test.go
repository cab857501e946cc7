package standings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DhavalSuthar-24/eplradar/internal/models"
	"github.com/DhavalSuthar-24/eplradar/internal/testutil"
)

func names(clubs []models.Club) []string {
	out := make([]string, len(clubs))
	for i, c := range clubs {
		out[i] = c.Name
	}
	return out
}

func TestRankByPointsStable(t *testing.T) {
	clubs := []models.Club{
		{Name: "Arsenal", Wins: 2, Draws: 1}, // 7
		{Name: "Brentford", Wins: 3},         // 9
		{Name: "Chelsea", Wins: 1, Draws: 4}, // 7
		{Name: "Everton", Draws: 2},          // 2
		{Name: "Fulham", Wins: 2, Draws: 1},  // 7
	}

	ranked := Rank(clubs)
	assert.Equal(t, []string{"Brentford", "Arsenal", "Chelsea", "Fulham", "Everton"}, names(ranked))
	assert.Equal(t, "Arsenal", clubs[0].Name, "input is not reordered")
}

func TestTable(t *testing.T) {
	rows := Table([]models.Club{
		{Name: "Leeds", Wins: 1, Draws: 1, Losses: 3},
		{Name: "Spurs", Wins: 4, Losses: 1},
	})

	require.Len(t, rows, 2)
	assert.Equal(t, Row{Position: 1, Name: "Spurs", Wins: 4, Losses: 1, Points: 12, TotalMatches: 5}, rows[0])
	assert.Equal(t, 2, rows[1].Position)
	assert.Equal(t, 4, rows[1].Points)
	assert.Empty(t, Table(nil))
}

func TestTally(t *testing.T) {
	records := Tally([]Result{
		{Home: "Arsenal", Away: "Chelsea", HomeScore: 2, AwayScore: 0},
		{Home: "Chelsea", Away: "Liverpool", HomeScore: 1, AwayScore: 1},
		{Home: "Liverpool", Away: "Arsenal", HomeScore: 3, AwayScore: 1},
	})

	assert.Equal(t, Record{Wins: 1, Losses: 1}, *records["Arsenal"])
	assert.Equal(t, Record{Draws: 1, Losses: 1}, *records["Chelsea"])
	assert.Equal(t, Record{Wins: 1, Draws: 1}, *records["Liverpool"])
	assert.Equal(t, 4, records["Liverpool"].Points())
}

func TestLoadFromDatabase(t *testing.T) {
	db := testutil.NewDB(t)
	testutil.CreateClub(t, db, "Wolves", 1, 0, 5)
	testutil.CreateClub(t, db, "Burnley", 3, 0, 3)
	testutil.CreateClub(t, db, "Arsenal", 3, 0, 3)

	rows, err := Load(context.Background(), NewRepository(db))
	require.NoError(t, err)

	require.Len(t, rows, 3)
	// equal points fall back to alphabetical order
	assert.Equal(t, "Arsenal", rows[0].Name)
	assert.Equal(t, "Burnley", rows[1].Name)
	assert.Equal(t, "Wolves", rows[2].Name)
}
