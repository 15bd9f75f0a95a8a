package postgres

import (
	"testing"

	"mazao/internal/infra/persistence/model"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory database with the full schema migrated.
// The repository queries stay within the SQL subset both engines share.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.UserModel{},
		&model.ClientModel{},
		&model.LicenseModel{},
		&model.ContentModel{},
		&model.ReviewModel{},
		&model.SettingModel{},
		&model.PageViewEventModel{},
	))

	return db
}
