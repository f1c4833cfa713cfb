package handlers

import (
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/sunridge-camp/camp-signup-api/internal/models"
	"github.com/sunridge-camp/camp-signup-api/internal/store"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&models.Camper{}, &models.Activity{}, &models.Signup{}); err != nil {
		t.Fatalf("failed to auto migrate: %v", err)
	}

	return store.New(db)
}

func statusOf(t *testing.T, err error) int {
	t.Helper()

	se, ok := err.(huma.StatusError)
	if !ok {
		t.Fatalf("expected huma.StatusError, got %T: %v", err, err)
	}
	return se.GetStatus()
}
