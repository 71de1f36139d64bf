package services

import (
	"fmt"
	"testing"

	"backend/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database migrated with the full
// schema. The DSN is keyed by test name so parallel tests never share
// state through the sqlite shared cache.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Nutrition{}, &models.FoodEntry{}))
	return db
}

func seedNutrition(t *testing.T, db *gorm.DB, refs ...models.Nutrition) {
	t.Helper()
	for i := range refs {
		require.NoError(t, db.Create(&refs[i]).Error)
	}
}

func seedEntries(t *testing.T, db *gorm.DB, entries ...models.FoodEntry) {
	t.Helper()
	for i := range entries {
		require.NoError(t, db.Create(&entries[i]).Error)
	}
}
