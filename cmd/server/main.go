package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"chartsight/internal/analyzer"
	"chartsight/internal/api/vision"
	"chartsight/internal/config"
	platformhttp "chartsight/internal/platform/http"
	"chartsight/internal/server"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// 2. Configure logging
	setupLogging(cfg.LogLevel)
	log.Info().Msg("Starting ChartSight analyzer")
	printConfig(cfg)

	if cfg.OpenAIAPIKey == "" {
		log.Fatal().Msg("OPENAI_API_KEY is not set")
	}

	// 3. Setup provider and service
	visionClient := vision.NewClient(vision.ClientOptions{
		APIKey:         cfg.OpenAIAPIKey,
		Model:          cfg.OpenAIModel,
		RequestsPerSec: cfg.ProviderRPS,
	})
	service := analyzer.NewService(visionClient)

	fetcher := platformhttp.NewClient(platformhttp.ClientOptions{
		Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
	})

	// 4. Setup HTTP server
	handler := server.NewHandler(server.HandlerOptions{
		Analyzer:        service,
		Fetcher:         fetcher,
		MaxUploadBytes:  cfg.MaxUploadBytes(),
		DefaultLanguage: cfg.DefaultLanguage,
	})
	srv := server.NewServer(cfg.HTTPAddr, handler)

	// 5. Run until interrupted
	setupSignalHandling(cancel)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	case <-ctx.Done():
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Shutdown error")
		}
	}

	log.Info().Msg("ChartSight analyzer stopped")
}

// setupSignalHandling configures signal handling for graceful shutdown
func setupSignalHandling(cancel context.CancelFunc) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		log.Info().Msg("Shutdown signal received, exiting...")
		cancel()
	}()
}

// setupLogging configures the logger
func setupLogging(logLevel string) {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	log.Logger = log.Output(output)

	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log.Logger = log.Logger.Level(level)
}

// printConfig outputs the current configuration
func printConfig(cfg *config.Config) {
	log.Info().
		Str("Model", cfg.OpenAIModel).
		Str("HTTPAddr", cfg.HTTPAddr).
		Int("RequestTimeout", cfg.RequestTimeout).
		Int64("MaxUploadMB", cfg.MaxUploadMB).
		Str("DefaultLanguage", cfg.DefaultLanguage).
		Int("ProviderRPS", cfg.ProviderRPS).
		Msg("Configuration loaded")
}
