package club

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/eplradar/config"
	"github.com/DhavalSuthar-24/eplradar/internal/models"
	"github.com/DhavalSuthar-24/eplradar/internal/testutil"
)

type fixture struct {
	db      *gorm.DB
	cfg     *config.Config
	router  *gin.Engine
	arsenal *models.Club
	chelsea *models.Club
	alice   *models.User
	bob     *models.User
	admin   *models.User
}

func setup(t *testing.T) *fixture {
	t.Helper()

	db := testutil.NewDB(t)
	cfg := testutil.Config()
	r, api := testutil.Router()
	ClubRoutes(api, db, cfg)

	f := &fixture{
		db:      db,
		cfg:     cfg,
		router:  r,
		arsenal: testutil.CreateClub(t, db, "Arsenal", 2, 1, 0),
		chelsea: testutil.CreateClub(t, db, "Chelsea", 3, 0, 0),
		alice:   testutil.CreateUser(t, db, "alice", false),
		bob:     testutil.CreateUser(t, db, "bob", false),
		admin:   testutil.CreateUser(t, db, "admin", true),
	}
	testutil.CreateClub(t, db, "Brentford", 2, 1, 3)
	return f
}

func (f *fixture) as(t *testing.T, u *models.User) string {
	return testutil.Bearer(t, f.cfg, u.ID)
}

func TestListClubsSorting(t *testing.T) {
	f := setup(t)

	tests := []struct {
		sort string
		want []string
	}{
		{"", []string{"Arsenal", "Brentford", "Chelsea"}},
		{"name", []string{"Arsenal", "Brentford", "Chelsea"}},
		{"points", []string{"Chelsea", "Arsenal", "Brentford"}},
		{"wins", []string{"Chelsea", "Arsenal", "Brentford"}},
		{"bogus", []string{"Arsenal", "Brentford", "Chelsea"}},
	}

	for _, tt := range tests {
		t.Run("sort="+tt.sort, func(t *testing.T) {
			w := testutil.Do(f.router, http.MethodGet, "/api/clubs?sort="+tt.sort, nil, "")
			require.Equal(t, http.StatusOK, w.Code)

			var got []ClubResponse
			testutil.Data(t, w, &got)
			names := make([]string, len(got))
			for i, c := range got {
				names[i] = c.Name
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestGetClubDetail(t *testing.T) {
	f := setup(t)
	require.NoError(t, f.db.Model(f.arsenal).Update("logo", "Arsenal.png").Error)
	testutil.CreatePlayer(t, f.db, "Bukayo Saka", f.arsenal, 12)
	testutil.CreatePlayer(t, f.db, "Cole Palmer", f.chelsea, 15)
	kickoff := time.Date(2024, 8, 17, 15, 0, 0, 0, time.UTC)
	testutil.CreateMatch(t, f.db, f.chelsea, f.arsenal, 2, kickoff.AddDate(0, 0, 7), models.MatchUpcoming)
	testutil.CreateMatch(t, f.db, f.arsenal, f.chelsea, 1, kickoff, models.MatchFinished)

	w := testutil.Do(f.router, http.MethodGet, "/api/clubs/arsenal", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var detail ClubDetailResponse
	testutil.Data(t, w, &detail)
	assert.Equal(t, "Arsenal", detail.Club.Name)
	assert.Equal(t, "/media/Arsenal.png", detail.Club.Logo)
	assert.Equal(t, 7, detail.Club.Points)
	assert.Equal(t, 3, detail.Club.TotalMatches)
	require.Len(t, detail.Players, 1)
	assert.Equal(t, "Bukayo Saka", detail.Players[0].Name)
	require.Len(t, detail.Fixtures, 2)
	assert.Equal(t, 1, detail.Fixtures[0].Week, "fixtures ordered by kickoff")
	assert.True(t, detail.Fixtures[0].IsHome)
	assert.Equal(t, 1, detail.HomeMatches)
	assert.Equal(t, 1, detail.AwayMatches)
}

func TestGetClubNotFound(t *testing.T) {
	f := setup(t)
	w := testutil.Do(f.router, http.MethodGet, "/api/clubs/Atlantis", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCommentLifecycle(t *testing.T) {
	f := setup(t)

	w := testutil.Do(f.router, http.MethodPost, "/api/clubs/Arsenal/comments", map[string]string{"content": "  COYG  "}, f.as(t, f.alice))
	require.Equal(t, http.StatusCreated, w.Code)
	var created CommentResponse
	testutil.Data(t, w, &created)
	assert.Equal(t, "COYG", created.Content)
	assert.Equal(t, "alice", created.Username)
	assert.True(t, created.IsOwner)

	path := fmt.Sprintf("/api/comments/%d", created.ID)

	w = testutil.Do(f.router, http.MethodGet, "/api/clubs/Arsenal/comments", nil, f.as(t, f.bob))
	require.Equal(t, http.StatusOK, w.Code)
	var listed []CommentResponse
	testutil.Data(t, w, &listed)
	require.Len(t, listed, 1)
	assert.False(t, listed[0].IsOwner)

	w = testutil.Do(f.router, http.MethodPut, path, map[string]string{"content": "hijack"}, f.as(t, f.bob))
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = testutil.Do(f.router, http.MethodDelete, path, nil, f.as(t, f.bob))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = testutil.Do(f.router, http.MethodPut, path, map[string]string{"content": "North London is red"}, f.as(t, f.alice))
	require.Equal(t, http.StatusOK, w.Code)
	var updated CommentResponse
	testutil.Data(t, w, &updated)
	assert.Equal(t, "North London is red", updated.Content)

	w = testutil.Do(f.router, http.MethodDelete, path, nil, f.as(t, f.alice))
	assert.Equal(t, http.StatusOK, w.Code)
	w = testutil.Do(f.router, http.MethodDelete, path, nil, f.as(t, f.alice))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddCommentValidation(t *testing.T) {
	f := setup(t)

	tests := []struct {
		name string
		path string
		body interface{}
		auth string
		code int
	}{
		{"anonymous", "/api/clubs/Arsenal/comments", map[string]string{"content": "hi"}, "", http.StatusUnauthorized},
		{"missing content", "/api/clubs/Arsenal/comments", map[string]string{}, f.as(t, f.alice), http.StatusBadRequest},
		{"blank content", "/api/clubs/Arsenal/comments", map[string]string{"content": "   "}, f.as(t, f.alice), http.StatusBadRequest},
		{"malformed json", "/api/clubs/Arsenal/comments", `{"content":`, f.as(t, f.alice), http.StatusBadRequest},
		{"unknown club", "/api/clubs/Atlantis/comments", map[string]string{"content": "hi"}, f.as(t, f.alice), http.StatusNotFound},
		{"bad comment id", "/api/comments/abc", nil, f.as(t, f.alice), http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			method := http.MethodPost
			if tt.name == "bad comment id" {
				method = http.MethodDelete
			}
			w := testutil.Do(f.router, method, tt.path, tt.body, tt.auth)
			assert.Equal(t, tt.code, w.Code, w.Body.String())
		})
	}
}

func TestDeletingUserCascadesComments(t *testing.T) {
	f := setup(t)
	require.NoError(t, f.db.Create(&models.ClubComment{UserID: f.alice.ID, ClubID: f.arsenal.ID, Content: "one"}).Error)
	require.NoError(t, f.db.Create(&models.ClubComment{UserID: f.bob.ID, ClubID: f.arsenal.ID, Content: "two"}).Error)

	require.NoError(t, f.db.Delete(f.alice).Error)

	var count int64
	require.NoError(t, f.db.Model(&models.ClubComment{}).Where("user_id = ?", f.alice.ID).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, f.db.Model(&models.ClubComment{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRecomputeRecords(t *testing.T) {
	f := setup(t)
	kickoff := time.Date(2024, 8, 17, 15, 0, 0, 0, time.UTC)
	m := testutil.CreateMatch(t, f.db, f.arsenal, f.chelsea, 1, kickoff, models.MatchFinished)
	require.NoError(t, f.db.Model(m).Updates(map[string]interface{}{"home_score": 2, "away_score": 1}).Error)
	testutil.CreateMatch(t, f.db, f.chelsea, f.arsenal, 2, kickoff.AddDate(0, 0, 7), models.MatchUpcoming)

	w := testutil.Do(f.router, http.MethodPost, "/api/admin/clubs/recompute", nil, f.as(t, f.alice))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = testutil.Do(f.router, http.MethodPost, "/api/admin/clubs/recompute", nil, f.as(t, f.admin))
	require.Equal(t, http.StatusOK, w.Code)
	var res RecomputeResponse
	testutil.Data(t, w, &res)
	assert.Equal(t, 3, res.ClubsUpdated)

	var arsenal, chelsea, brentford models.Club
	require.NoError(t, f.db.First(&arsenal, f.arsenal.ID).Error)
	require.NoError(t, f.db.First(&chelsea, f.chelsea.ID).Error)
	require.NoError(t, f.db.Where("name = ?", "Brentford").First(&brentford).Error)
	assert.Equal(t, 1, arsenal.Wins)
	assert.Equal(t, 0, arsenal.Losses)
	assert.Equal(t, 1, chelsea.Losses)
	assert.Equal(t, 0, chelsea.Wins)
	assert.Zero(t, brentford.TotalMatches())
}
