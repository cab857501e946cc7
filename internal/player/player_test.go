package player

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DhavalSuthar-24/eplradar/internal/models"
	"github.com/DhavalSuthar-24/eplradar/internal/testutil"
)

func setup(t *testing.T) (*gin.Engine, *models.Player) {
	t.Helper()

	db := testutil.NewDB(t)
	r, api := testutil.Router()
	PlayerRoutes(api, db, testutil.Config())

	arsenal := testutil.CreateClub(t, db, "Arsenal", 0, 0, 0)
	require.NoError(t, db.Model(arsenal).Update("logo", "Arsenal.png").Error)
	city := testutil.CreateClub(t, db, "Manchester City", 0, 0, 0)

	saka := testutil.CreatePlayer(t, db, "Bukayo Saka", arsenal, 10)
	testutil.CreatePlayer(t, db, "Erling Haaland", city, 27)
	raya := &models.Player{Name: "David Raya", Position: "Goalkeeper", ClubID: arsenal.ID, CleanSheets: 16}
	require.NoError(t, db.Create(raya).Error)

	return r, saka
}

func list(t *testing.T, r *gin.Engine, query string) []string {
	t.Helper()

	w := testutil.Do(r, http.MethodGet, "/api/players"+query, nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var got []PlayerResponse
	testutil.Data(t, w, &got)

	names := make([]string, len(got))
	for i, p := range got {
		names[i] = p.Name
	}
	return names
}

func TestListPlayersFilters(t *testing.T) {
	r, _ := setup(t)

	assert.Equal(t, []string{"Bukayo Saka", "David Raya", "Erling Haaland"}, list(t, r, ""))
	assert.Equal(t, []string{"Bukayo Saka", "David Raya"}, list(t, r, "?club=arsenal"))
	assert.Equal(t, []string{"David Raya"}, list(t, r, "?position=goalkeeper"))
	assert.Equal(t, []string{"Erling Haaland"}, list(t, r, "?q=haa"))
	assert.Empty(t, list(t, r, "?club=Arsenal&q=haaland"))
}

func TestListPlayersSearchIsLiteral(t *testing.T) {
	r, _ := setup(t)

	assert.Empty(t, list(t, r, "?q=_"))
	assert.Empty(t, list(t, r, "?q=%25"))
	assert.Empty(t, list(t, r, "?q=s_ka"))
	assert.Equal(t, []string{"Bukayo Saka"}, list(t, r, "?q=o%20s"))
}

func TestGetPlayer(t *testing.T) {
	r, saka := setup(t)

	w := testutil.Do(r, http.MethodGet, fmt.Sprintf("/api/players/%d", saka.ID), nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var got PlayerResponse
	testutil.Data(t, w, &got)
	assert.Equal(t, "Bukayo Saka", got.Name)
	assert.Equal(t, "Arsenal", got.Club)
	assert.Equal(t, "/media/Arsenal.png", got.ClubLogo)
	assert.Equal(t, 10, got.Goals)
	assert.Equal(t, "", got.ProfilePicture)
}

func TestGetPlayerErrors(t *testing.T) {
	r, _ := setup(t)

	assert.Equal(t, http.StatusNotFound, testutil.Do(r, http.MethodGet, "/api/players/999", nil, "").Code)
	assert.Equal(t, http.StatusBadRequest, testutil.Do(r, http.MethodGet, "/api/players/abc", nil, "").Code)
}
