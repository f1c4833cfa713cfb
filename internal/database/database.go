package database

import (
	"log/slog"
	"os"

	"github.com/sunridge-camp/camp-signup-api/internal/config"
	"github.com/sunridge-camp/camp-signup-api/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func Connect(cfg *config.Config) *gorm.DB {
	// SQLite ships with foreign keys off; the cascade and FK constraints on
	// the models only hold with the pragma enabled.
	db, err := gorm.Open(sqlite.Open(cfg.DatabasePath+"?_foreign_keys=on"), &gorm.Config{})
	if err != nil {
		slog.Error("failed to connect to database", "path", cfg.DatabasePath, "error", err)
		os.Exit(1)
	}

	// Auto Migrate
	if err := db.AutoMigrate(&models.Camper{}, &models.Activity{}, &models.Signup{}); err != nil {
		slog.Error("failed to auto migrate", "error", err)
		os.Exit(1)
	}

	return db
}
