package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tamsou/portfolio-backend/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupTestDB opens a per-test in-memory database with the full schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Album{},
		&models.Photo{},
		&models.PurchaseHistory{},
		&models.DownloadCode{},
	))

	return db
}

type stubMailer struct{}

func (stubMailer) SendVerificationEmail(to, name, token string) error { return nil }
func (stubMailer) SendWelcomeEmail(to, name string) error             { return nil }
