package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	models "airline-marketplace/authority/internal/models/gorm"
)

var PgDB *gorm.DB

// InitPostgresORM opens the GORM connection and migrates the schema.
// TranslateError is enabled so unique-constraint failures surface as
// gorm.ErrDuplicatedKey regardless of driver.
func InitPostgresORM(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	PgDB = db
	return db, nil
}

// Migrate creates or updates the schema for every model.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Country{},
		&models.City{},
		&models.Airport{},
		&models.Airline{},
		&models.Flight{},
		&models.Booking{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
