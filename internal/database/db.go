package database

import (
	"log"

	"github.com/magnolias-hr/magnolias-api/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the postgres connection and runs migrations. TranslateError
// is enabled so unique-index violations surface as gorm.ErrDuplicatedKey,
// which the repositories map to the conflict error.
func Connect(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	log.Println("Database connection established")

	log.Println("Running Migrations...")
	if err := db.AutoMigrate(
		&models.Company{},
		&models.Applicant{},
		&models.Posting{},
		&models.Application{},
	); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}
	return db
}
