// cmd/voicebot-server/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"hotel-voicebot/internal/analytics"
	"hotel-voicebot/internal/common/config"
	"hotel-voicebot/internal/common/database"
	stderrors "hotel-voicebot/internal/common/errors"
	"hotel-voicebot/internal/common/logger"
	"hotel-voicebot/internal/common/observability"
	"hotel-voicebot/internal/nlu"
	"hotel-voicebot/internal/responder"
	"hotel-voicebot/internal/server"
	"hotel-voicebot/internal/store"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2 // Exponential backoff
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()

	// Wrap zap logger with our logger interface
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting voicebot server...",
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	ctx := context.Background()

	// In-memory domain data with the seeded property and inventory.
	hotelStore := store.New()

	// --- Optional Redis mirror for the query log ---
	recorderOpts := []analytics.Option{
		analytics.WithLimits(cfg.Analytics.RecentLimit, cfg.Analytics.TopIntents),
	}
	var redisClient *database.RedisClient
	if cfg.Analytics.RedisEnabled {
		err = retryWithBackoff(func() error {
			var err error
			redisClient, err = database.NewRedis(cfg.Database.Redis)
			if err != nil {
				return err
			}
			return redisClient.Ping(ctx)
		}, 10, 2*time.Second, zapLog, "Redis connection")

		if err != nil {
			// The query log degrades to memory-only; the bot itself keeps working.
			redisErr := stderrors.NewRedisUnavailableError(err)
			zapLog.Warn("redis unavailable, analytics mirror disabled",
				zap.String("code", string(redisErr.Code)),
				zap.Bool("retryable", redisErr.Retryable),
				zap.Error(err),
			)
			redisClient = nil
		} else {
			defer redisClient.Close()
			zapLog.Info("Redis connected successfully")
			recorderOpts = append(recorderOpts, analytics.WithRedis(redisClient.Client, cfg.Analytics.RedisKey))
		}
	}

	recorder := analytics.NewRecorder(log, recorderOpts...)

	// --- Train the NLU pipeline ---
	resp := responder.New(cfg.Hotel)
	pipeline, err := nlu.NewPipeline(hotelStore, resp, log, nlu.Options{
		KeywordThreshold: cfg.NLP.KeywordOverrideThreshold,
	})
	if err != nil {
		stdErr := stderrors.Normalize(err)
		zapLog.Fatal("nlu pipeline initialization failed",
			zap.String("code", string(stdErr.Code)),
			zap.String("category", stderrors.GetErrorCategory(stdErr.Code)),
			zap.Bool("fatal", stderrors.IsFatal(stdErr.Code)),
			zap.Error(err),
		)
	}
	zapLog.Info("NLU pipeline trained",
		zap.Int("trainingExamples", len(nlu.DefaultCorpus())),
	)

	srv, err := server.New(cfg, pipeline, recorder, obs, log)
	if err != nil {
		zapLog.Fatal("server initialization failed", zap.Error(err))
	}

	httpServer := srv.HTTPServer()
	go func() {
		zapLog.Info("HTTP server listening", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, draining requests...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("Error shutting down HTTP server", zap.Error(err))
	}

	zapLog.Info("Voicebot server stopped gracefully")
}
