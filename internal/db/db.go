package db

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/NeilAutriz/ISKOlarship-sub008/internal/models"
)

// Init opens the postgres connection and migrates the application
// aggregate tables.
func Init(dsn string) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to db: %w", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db from gorm: %w", err)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := gdb.AutoMigrate(&models.Application{}); err != nil {
		return nil, fmt.Errorf("automigrate applications: %w", err)
	}
	if err := gdb.AutoMigrate(&models.Document{}); err != nil {
		return nil, fmt.Errorf("automigrate documents: %w", err)
	}

	log.Println("connected to database")
	return gdb, nil
}
