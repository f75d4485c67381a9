package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/arjun/cybercafe-backend/internal/api"
	"github.com/arjun/cybercafe-backend/internal/config"
	"github.com/arjun/cybercafe-backend/internal/logger"
	"github.com/arjun/cybercafe-backend/internal/repository/postgres"
	"github.com/arjun/cybercafe-backend/internal/service"
	"github.com/arjun/cybercafe-backend/internal/websocket"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	log := logger.New()
	defer log.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalw("failed to load config", "error", err)
	}

	// Initialize database
	db, err := postgres.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}

	if err := postgres.SeedComputers(db); err != nil {
		log.Fatalw("failed to seed computers", "error", err)
	}

	// Initialize repositories
	repos := postgres.NewRepositories(db)

	// Initialize status-feed hub
	hub := websocket.NewHub(log)
	go hub.Run()

	// Initialize services
	services := service.NewServices(repos, cfg)

	// Initialize router
	router := api.NewRouter(services, hub, log)

	// Create server
	srv := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Infow("server starting", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("failed to start server", "error", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "error", err)
	}

	hub.Stop()

	log.Infow("server stopped")
}
