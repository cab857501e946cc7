package news

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
	"github.com/DhavalSuthar-24/eplradar/internal/events"
	"github.com/DhavalSuthar-24/eplradar/internal/models"
	"github.com/DhavalSuthar-24/eplradar/internal/testutil"
)

type fixture struct {
	db        *gorm.DB
	cfg       *config.Config
	router    *gin.Engine
	publisher *events.Recorder
	alice     *models.User
	bob       *models.User
}

func setup(t *testing.T) *fixture {
	t.Helper()

	db := testutil.NewDB(t)
	cfg := testutil.Config()
	r, api := testutil.Router()
	rec := &events.Recorder{}
	NewsRoutes(api, db, cfg, rec)

	return &fixture{
		db:        db,
		cfg:       cfg,
		router:    r,
		publisher: rec,
		alice:     testutil.CreateUser(t, db, "alice", false),
		bob:       testutil.CreateUser(t, db, "bob", false),
	}
}

func listTitles(t *testing.T, f *fixture, query string) []string {
	t.Helper()

	w := testutil.Do(f.router, http.MethodGet, "/api/news"+query, nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var got []NewsResponse
	testutil.Data(t, w, &got)
	out := make([]string, len(got))
	for i, n := range got {
		out[i] = n.Title
	}
	return out
}

func TestListNewsFilterAndSort(t *testing.T) {
	f := setup(t)
	old := testutil.CreateNews(t, f.db, f.alice, "Old transfer", models.CategoryTransfer, 50)
	require.NoError(t, f.db.Model(old).UpdateColumn("created_at", time.Now().Add(-48*time.Hour)).Error)
	testutil.CreateNews(t, f.db, f.alice, "Derby report", models.CategoryMatch, 120)
	testutil.CreateNews(t, f.db, f.bob, "New transfer", models.CategoryTransfer, 10)

	tests := []struct {
		query string
		want  []string
	}{
		{"", []string{"New transfer", "Derby report", "Old transfer"}},
		{"?category=all", []string{"New transfer", "Derby report", "Old transfer"}},
		{"?category=transfer", []string{"New transfer", "Old transfer"}},
		{"?category=rumor", []string{}},
		{"?sort=views_desc", []string{"Derby report", "Old transfer", "New transfer"}},
		{"?sort=views_asc", []string{"New transfer", "Old transfer", "Derby report"}},
		{"?sort=weird", []string{"New transfer", "Derby report", "Old transfer"}},
		{"?category=transfer&sort=views_desc", []string{"Old transfer", "New transfer"}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, listTitles(t, f, tt.query))
		})
	}
}

func TestGetNewsIncrementsViews(t *testing.T) {
	f := setup(t)
	n := testutil.CreateNews(t, f.db, f.alice, "Hot take", models.CategoryAnalysis, 99)
	path := fmt.Sprintf("/api/news/%d", n.ID)

	w := testutil.Do(f.router, http.MethodGet, path, nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var got NewsResponse
	testutil.Data(t, w, &got)
	assert.Equal(t, 100, got.Views)
	assert.True(t, got.IsHot)
	assert.Equal(t, "Analysis", got.CategoryLabel)
	assert.Equal(t, "alice", got.Author)
	assert.Equal(t, n.CreatedAt.Format(DateLayout), got.Date)

	testutil.Do(f.router, http.MethodGet, path, nil, "")
	var stored models.News
	require.NoError(t, f.db.First(&stored, n.ID).Error)
	assert.Equal(t, 101, stored.Views)

	w = testutil.Do(f.router, http.MethodGet, "/api/news/999", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateNews(t *testing.T) {
	f := setup(t)
	auth := testutil.Bearer(t, f.cfg, f.alice.ID)

	tests := []struct {
		name string
		body interface{}
		code int
	}{
		{"missing title", map[string]string{"content": "x", "category": "match"}, http.StatusBadRequest},
		{"blank content", map[string]string{"title": "x", "content": "   ", "category": "match"}, http.StatusBadRequest},
		{"unknown category", map[string]string{"title": "x", "content": "y", "category": "gossip"}, http.StatusBadRequest},
		{"malformed", `{"title":`, http.StatusBadRequest},
		{"ok", map[string]interface{}{"title": "Signing", "content": "Done deal", "category": "transfer", "is_featured": true}, http.StatusCreated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := testutil.Do(f.router, http.MethodPost, "/api/news", tt.body, auth)
			assert.Equal(t, tt.code, w.Code, w.Body.String())
		})
	}

	w := testutil.Do(f.router, http.MethodPost, "/api/news", map[string]string{"title": "a", "content": "b", "category": "general"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	evs := f.publisher.Events()
	require.Len(t, evs, 1)
	assert.Equal(t, events.NewsCreated, evs[0].Type)

	var stored models.News
	require.NoError(t, f.db.Where("title = ?", "Signing").First(&stored).Error)
	assert.Equal(t, f.alice.ID, stored.AuthorID)
	assert.True(t, stored.IsFeatured)
	assert.Zero(t, stored.Views)
}

func TestNewsOwnership(t *testing.T) {
	f := setup(t)
	n := testutil.CreateNews(t, f.db, f.alice, "Mine", models.CategoryGeneral, 0)
	path := fmt.Sprintf("/api/news/%d", n.ID)
	body := map[string]interface{}{"title": "Edited", "content": "New body", "category": "rumor", "is_featured": false}
	aliceAuth := testutil.Bearer(t, f.cfg, f.alice.ID)
	bobAuth := testutil.Bearer(t, f.cfg, f.bob.ID)

	w := testutil.Do(f.router, http.MethodPut, path, body, bobAuth)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = testutil.Do(f.router, http.MethodDelete, path, nil, bobAuth)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = testutil.Do(f.router, http.MethodPut, "/api/news/999", body, aliceAuth)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = testutil.Do(f.router, http.MethodPut, path, body, aliceAuth)
	require.Equal(t, http.StatusOK, w.Code)
	var got NewsResponse
	testutil.Data(t, w, &got)
	assert.Equal(t, "Edited", got.Title)
	assert.Equal(t, models.CategoryRumor, got.Category)

	w = testutil.Do(f.router, http.MethodDelete, path, nil, aliceAuth)
	assert.Equal(t, http.StatusOK, w.Code)
	w = testutil.Do(f.router, http.MethodGet, path, nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNewsCascadesWithAuthor(t *testing.T) {
	f := setup(t)
	testutil.CreateNews(t, f.db, f.alice, "Gone soon", models.CategoryGeneral, 0)
	testutil.CreateNews(t, f.db, f.bob, "Stays", models.CategoryGeneral, 0)

	require.NoError(t, f.db.Delete(f.alice).Error)
	assert.Equal(t, []string{"Stays"}, listTitles(t, f, ""))
}
