// Package testutil builds throwaway databases and fixtures for package tests.
package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/DhavalSuthar-24/eplradar/internal/models"
	"github.com/DhavalSuthar-24/eplradar/pkg/utils"
)

// NewDB returns an isolated in-memory SQLite database with every model
// migrated and foreign keys enforced.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(models.All()...))
	return db
}

// CreateUser inserts an active user whose password is "password123".
func CreateUser(t *testing.T, db *gorm.DB, username string, admin bool) *models.User {
	t.Helper()

	hash, err := utils.HashPasswordCost("password123", 4)
	require.NoError(t, err)

	u := &models.User{Username: username, Password: hash, IsActive: true, IsAdmin: admin}
	require.NoError(t, db.Create(u).Error)
	return u
}

func CreateClub(t *testing.T, db *gorm.DB, name string, wins, draws, losses int) *models.Club {
	t.Helper()

	c := &models.Club{Name: name, Wins: wins, Draws: draws, Losses: losses}
	require.NoError(t, db.Create(c).Error)
	return c
}

func CreatePlayer(t *testing.T, db *gorm.DB, name string, club *models.Club, goals int) *models.Player {
	t.Helper()

	p := &models.Player{Name: name, Position: "Forward", ClubID: club.ID, Goals: goals, Age: 25, Citizenship: "England"}
	require.NoError(t, db.Create(p).Error)
	return p
}

func CreateMatch(t *testing.T, db *gorm.DB, home, away *models.Club, week int, date time.Time, status models.MatchStatus) *models.Match {
	t.Helper()

	m := &models.Match{HomeClubID: home.ID, AwayClubID: away.ID, Week: week, Date: date, Status: status}
	require.NoError(t, db.Create(m).Error)
	return m
}

func CreateNews(t *testing.T, db *gorm.DB, author *models.User, title string, category models.NewsCategory, views int) *models.News {
	t.Helper()

	n := &models.News{AuthorID: author.ID, Title: title, Content: title + " body", Category: category, Views: views}
	require.NoError(t, db.Create(n).Error)
	return n
}
