//go:build integration

package database

import (
	"context"
	"fmt"
	"log"
	"os"
	"testing"

	"github.com/ory/dockertest/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/DhavalSuthar-24/eplradar/internal/models"
)

var pg *gorm.DB

func TestMain(m *testing.M) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Fatalf("Could not construct pool: %s", err)
	}
	if err := pool.Client.Ping(); err != nil {
		log.Fatalf("Could not connect to Docker: %s", err)
	}

	resource, err := pool.Run("postgres", "17.2-alpine", []string{"POSTGRES_USER=postgres", "POSTGRES_PASSWORD=postgres", "POSTGRES_DB=eplradar"})
	if err != nil {
		log.Fatalf("Could not start resource: %s", err)
	}
	_ = resource.Expire(600)

	dsn := fmt.Sprintf("host=localhost port=%s user=postgres password=postgres dbname=eplradar sslmode=disable TimeZone=UTC",
		resource.GetPort("5432/tcp"))

	if err := pool.Retry(func() error {
		var err error
		pg, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger:         logger.Default.LogMode(logger.Silent),
			TranslateError: true,
		})
		if err != nil {
			return err
		}
		return Ping(context.Background(), pg)
	}); err != nil {
		log.Fatalf("Could not connect to database: %s", err)
	}

	code := m.Run()
	if err := pool.Purge(resource); err != nil {
		log.Fatalf("Could not purge resource: %s", err)
	}
	os.Exit(code)
}

func TestPostgresMigrateAndCascade(t *testing.T) {
	ctx := context.Background()
	require.NoError(t, Migrate(ctx, pg))

	user := &models.User{Username: "alice", Password: "x", IsActive: true}
	require.NoError(t, pg.Create(user).Error)
	club := &models.Club{Name: "Arsenal"}
	require.NoError(t, pg.Create(club).Error)
	player := &models.Player{Name: "Bukayo Saka", ClubID: club.ID}
	require.NoError(t, pg.Create(player).Error)
	require.NoError(t, pg.Create(&models.FavoritePlayer{UserID: user.ID, PlayerID: player.ID}).Error)

	err := pg.Create(&models.Club{Name: "Arsenal"}).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	err = pg.Create(&models.Club{Name: "Broken", Wins: -1}).Error
	assert.Error(t, err, "negative counters are rejected")

	require.NoError(t, pg.Delete(club).Error)

	var favorites int64
	pg.Model(&models.FavoritePlayer{}).Count(&favorites)
	assert.Zero(t, favorites)
}
