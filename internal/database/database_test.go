package database

import (
	"context"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/DhavalSuthar-24/eplradar/internal/models"
)

func openSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	return db
}

func TestMigrateCreatesTables(t *testing.T) {
	db := openSQLite(t)
	ctx := context.Background()

	require.NoError(t, Migrate(ctx, db))
	require.NoError(t, Migrate(ctx, db), "migrating twice is a no-op")

	for _, m := range models.All() {
		assert.True(t, db.Migrator().HasTable(m), "%T table", m)
	}
	assert.True(t, db.Migrator().HasIndex(&models.Prediction{}, "idx_prediction_user_match"))

	require.NoError(t, Ping(ctx, db))
	require.NoError(t, Close(db))
	assert.Error(t, Ping(ctx, db))
}
