package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/sunridge-camp/camp-signup-api/internal/config"
	"github.com/sunridge-camp/camp-signup-api/internal/database"
	"github.com/sunridge-camp/camp-signup-api/internal/handlers"
	"github.com/sunridge-camp/camp-signup-api/internal/store"
)

func init() {
	if err := godotenv.Load(); err != nil {
		slog.Info(err.Error())
	}
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: time.RFC1123Z,
		}),
	))
}

func main() {
	// Load Configuration
	cfg := config.LoadConfig()

	// Connect to Database
	db := database.Connect(cfg)

	// Initialize Handlers
	st := store.New(db)
	camperHandler := handlers.NewCamperHandler(st)
	activityHandler := handlers.NewActivityHandler(st)
	signupHandler := handlers.NewSignupHandler(st)

	// Initialize Router
	r := chi.NewRouter()

	// Register Routes
	handlers.RegisterRoutes(r, camperHandler, activityHandler, signupHandler)

	// Start Server
	slog.Info("starting server", "port", cfg.Port, "database", cfg.DatabasePath)
	if err := http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), r); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
