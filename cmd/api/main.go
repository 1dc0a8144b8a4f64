package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/simonkvalheim/bankist/internal/auth"
	"github.com/simonkvalheim/bankist/internal/bootstrap"
	"github.com/simonkvalheim/bankist/internal/config"
	"github.com/simonkvalheim/bankist/internal/handler"
	"github.com/simonkvalheim/bankist/internal/ledger"
	"github.com/simonkvalheim/bankist/internal/logger"
	appMiddleware "github.com/simonkvalheim/bankist/internal/middleware"
	"github.com/simonkvalheim/bankist/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	if cfg.UsingDefaultSecret {
		log.Warn().Msg("Using default SESSION_SECRET for development. Set SESSION_SECRET in production!")
	}

	// Seed the in-memory directory; nothing survives a restart
	dir := bootstrap.Initialize(log)

	engine := ledger.NewEngine(time.Now, log)
	controller := session.NewController(dir, engine, time.Now, log)

	authConfig := auth.DefaultConfig(cfg.SessionSecret)
	authConfig.TokenExpiry = cfg.SessionTTL
	authService := auth.NewService(authConfig)

	cors := appMiddleware.DefaultCORSConfig()
	cors.AllowedOrigins = cfg.CORSOrigins

	router := handler.NewRouter(handler.NewLedger(controller, log), authService, cors)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Int("port", cfg.Port).Msg("Server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	waitForShutdown(server, log)
}

// waitForShutdown blocks until SIGINT/SIGTERM, then drains the server
func waitForShutdown(server *http.Server, log zerolog.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// Give outstanding requests 30 seconds to complete
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}
