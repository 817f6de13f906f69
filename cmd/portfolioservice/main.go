package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"

	"portfolio-assistant/internal/chat"
	"portfolio-assistant/internal/config"
	"portfolio-assistant/internal/llm"
	"portfolio-assistant/internal/logging"
	"portfolio-assistant/internal/profile"
	"portfolio-assistant/internal/project"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// main is the entry point for the portfolio service.
func main() {
	// A .env file is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Could not create logger: %v", err)
	}
	defer logger.Sync()

	p, err := profile.Load()
	if err != nil {
		logger.Fatal("could not load profile data", zap.Error(err))
	}

	db, err := connectDB(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("could not connect to database", zap.Error(err))
	}
	defer db.Close()
	logger.Info("database connected")

	// Dependency injection, one layer into the next.

	gemini, err := llm.NewGeminiClient(context.Background(), cfg.APIKey, cfg.Model)
	if err != nil {
		logger.Fatal("could not create gemini client", zap.Error(err))
	}
	llmService := llm.NewService(gemini, logger.Named("llm"))
	chatService := chat.NewService(llmService, p, logger.Named("chat"))
	chatHandler := chat.NewHandler(chatService, logger.Named("chat"))

	projectRepo := project.NewPostgresRepository(db)
	projectService := project.NewService(projectRepo, logger.Named("project"))
	projectHandler := project.NewHandler(projectService, logger.Named("project"))

	profileHandler := profile.NewHandler(p)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(logging.RequestLogger(logger))
	r.Use(middleware.Recoverer) // Handle panics gracefully

	// Simple health check.
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("PortfolioService OK"))
	})

	chatHandler.RegisterRoutes(r)
	projectHandler.RegisterRoutes(r)
	profileHandler.RegisterRoutes(r)

	logger.Info("portfolio service starting", zap.String("addr", cfg.Addr()), zap.String("model", cfg.Model))

	// Start the server and block until it errors or is stopped.
	if err := http.ListenAndServe(cfg.Addr(), r); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}

// connectDB is a helper to open and verify the database connection.
func connectDB(connStr string) (*sql.DB, error) {
	db, err := sql.Open("pgx", connStr)
	if err != nil {
		return nil, err
	}
	// Ping() ensures the connection is actually valid.
	if err = db.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}
