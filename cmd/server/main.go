package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"afl-predictions-backend/internal/api/routes"
	"afl-predictions-backend/internal/auth"
	"afl-predictions-backend/internal/config"
	"afl-predictions-backend/internal/database"
	"afl-predictions-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "afl-predictions-backend/docs" // This is needed for swag
)

//	@title			AFL Predictions API
//	@version		1.0
//	@description	Backend for a small AFL tipping league: players log in by name and email, tip the winner of each game, guess ladder positions, and compare win/loss records.

//	@contact.name	API Support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:3003
//	@BasePath	/rules/api

//	@securityDefinitions.apikey	SessionCookie
//	@in							cookie
//	@name						afl_session
//	@description				Session cookie set by POST /auth/login.

const shutdownTimeout = 15 * time.Second

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	// Set up logging
	logger.Setup(cfg.LogLevel)
	logrus.SetOutput(os.Stdout)

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, &database.Options{
		MaxOpenConns: cfg.DatabaseMaxOpenConns,
	})
	if err != nil {
		logrus.Fatalf("Failed to initialize database: %v", err)
	}

	// Session settings come from the main config unless a dedicated auth file is named
	authConfig := auth.NewAuthConfigFromConfig(cfg)
	if cfg.AuthConfigFile != "" {
		authConfig, err = auth.LoadAuthConfig(cfg.AuthConfigFile)
		if err != nil {
			logrus.Fatalf("Failed to load auth config: %v", err)
		}
	}

	// Sessions live in memory; a restart logs everyone out
	authService, err := auth.NewAuthService(authConfig, auth.NewMemoryStore())
	if err != nil {
		logrus.Fatalf("Failed to initialize auth service: %v", err)
	}
	scheduler, err := auth.StartSessionSweeper(authService, authConfig.SweepInterval)
	if err != nil {
		logrus.Fatalf("Failed to start session sweeper: %v", err)
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := routes.SetupRoutes(db, cfg, authService)

	port := cfg.Port
	if port == "" {
		port = "3003"
	}

	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logrus.Infof("Starting server on port %s", port)
		serverErrors <- server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	case sig := <-quit:
		logrus.WithField("signal", sig.String()).Info("Shutdown signal received")

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logrus.WithError(err).Error("Graceful shutdown failed")
			_ = server.Close()
		}
	}

	if err := scheduler.Shutdown(); err != nil {
		logrus.WithError(err).Warn("Session sweeper did not stop cleanly")
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	logrus.Info("Server stopped")
}
