package database

import (
	"log"
	"os"

	"github.com/tamsou/portfolio-backend/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Global DB handle.
var DB *gorm.DB

func NewDatabase() *gorm.DB {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	var err error
	DB, err = gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := RunMigrations(DB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return DB
}

func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Album{},
		&models.Photo{},
		&models.PurchaseHistory{},
		&models.DownloadCode{},
	)
}
