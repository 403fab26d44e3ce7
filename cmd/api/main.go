package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"fitcoach/internal/coach"
	"fitcoach/internal/genai"
	"fitcoach/internal/recommender"
	"fitcoach/internal/server"
	"fitcoach/internal/session"
	"fitcoach/internal/youtube"
)

func gracefulShutdown(apiServer *http.Server, logger zerolog.Logger, done chan bool) {
	// Create context that listens for the interrupt signal from the OS.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	logger.Info().Msg("shutting down gracefully, press Ctrl+C again to force")
	stop() // Allow Ctrl+C to force shutdown

	// Give in-flight requests 5 seconds to finish.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := apiServer.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("Server exiting")
	done <- true
}

func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	genClient, err := genai.NewClientFromEnv(logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Could not configure the generation backend")
	}
	pool := genai.NewPool(genClient, genai.DefaultPoolSize)

	// The trained-model scorer replaces the rule table when an artifact
	// path is configured.
	var scorer coach.Scorer = recommender.RuleScorer{}
	if path := os.Getenv("RECOMMENDER_MODEL_PATH"); path != "" {
		model, err := recommender.LoadModel(path)
		if err != nil {
			logger.Fatal().Err(err).Str("path", path).Msg("Could not load recommender model")
		}
		scorer = model
		logger.Info().Str("path", path).Msg("Using trained recommender model")
	}

	sessions := session.NewStore()
	svc := coach.NewService(scorer, sessions, pool, logger)

	var videos *youtube.Client
	if apiKey := os.Getenv("YOUTUBE_API_KEY"); apiKey != "" {
		videos = youtube.NewClient(apiKey, "", logger)
	} else {
		logger.Warn().Msg("YOUTUBE_API_KEY not set, video search endpoints disabled")
	}

	apiServer := server.New(svc, sessions, videos, logger)

	done := make(chan bool, 1)
	go gracefulShutdown(apiServer, logger, done)

	logger.Info().Str("addr", apiServer.Addr).Msg("Starting API server")
	if err := apiServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		panic(fmt.Sprintf("http server error: %s", err))
	}

	<-done
	logger.Info().Msg("Graceful shutdown complete.")
}
