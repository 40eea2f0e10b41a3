package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"algoarena/internal/api"
	"algoarena/internal/app/service"
	"algoarena/internal/common/security"
	"algoarena/internal/domain/repository"
	"algoarena/internal/platform/config"
	"algoarena/internal/platform/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	// 1. Load configuration and logging
	config.Load()
	logger.Init(config.AppConfig.LogLevel)
	log.Info().Msg("Configuration loaded")

	// 2. Initialize JWT
	security.InitJWT()

	// 3. Build the in-memory catalog
	problemRepo := repository.NewMemProblemRepository()

	// 4. Initialize services
	authService := service.NewAuthService()
	problemService := service.NewProblemService(problemRepo)
	submissionService := service.NewSubmissionService(
		config.AppConfig.TestRunDelay,
		config.AppConfig.SubmitDelay,
	)

	// 5. Router & HTTP server
	router := api.NewRouter(authService, problemService, submissionService, config.AppConfig.PublicDir)

	server := &http.Server{
		Addr:         ":" + config.AppConfig.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 6. Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Info().Str("port", config.AppConfig.Port).Msg("Server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Str("port", config.AppConfig.Port).Msg("Could not listen")
		}
	}()

	<-stop

	log.Info().Msg("Shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("Server shutdown failed")
	}

	log.Info().Msg("Server stopped gracefully")
}
