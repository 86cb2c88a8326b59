// cmd/webhook-manager/main.go
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

	"survey-webhooks/internal/common/config"
	"survey-webhooks/internal/common/database"
	"survey-webhooks/internal/common/logger"
	"survey-webhooks/internal/common/observability"
	"survey-webhooks/internal/dispatch"
	"survey-webhooks/internal/server"
	"survey-webhooks/internal/settings"
	"survey-webhooks/internal/store"
	"survey-webhooks/internal/transform"
	"survey-webhooks/pkg/registry"

	surveycomplete "survey-webhooks/internal/hooks/survey-complete"
	surveysettings "survey-webhooks/internal/hooks/survey-settings"
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
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting webhook manager...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	obs := observability.New("webhook-manager")
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Init PostgreSQL with retry ---
	var pg *database.PostgresClient
	err = retryWithBackoff(func() error {
		var err error
		pg, err = database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			return err
		}
		return pg.Ping(ctx)
	}, 15, 2*time.Second, zapLog, "PostgreSQL connection")

	if err != nil {
		zapLog.Fatal("postgres failed after retries", zap.Error(err))
	}
	defer pg.Close()
	zapLog.Info("PostgreSQL connected successfully")

	// --- Init Redis with retry ---
	var redis *database.RedisClient
	err = retryWithBackoff(func() error {
		var err error
		redis, err = database.NewRedis(cfg.Database.Redis)
		if err != nil {
			return err
		}
		return redis.Ping(ctx)
	}, 10, 2*time.Second, zapLog, "Redis connection")

	if err != nil {
		zapLog.Fatal("redis failed after retries", zap.Error(err))
	}
	defer redis.Close()
	zapLog.Info("Redis connected successfully")

	// --- Wire the pipeline ---
	settingsStore := store.NewRedisSettingsStore(redis.Client)
	settingsRegistry := settings.NewRegistry(settings.DefaultDefinitions(cfg.Webhook)...)
	resolver := settings.NewResolver(settingsRegistry, settingsStore)
	gate := settings.NewActivationGate(resolver)

	respondents := store.NewPostgresRespondentStore(pg.DB)
	catalog := store.NewPostgresCatalogStore(pg.DB)

	dispatcher := dispatch.NewDispatcher(config.GetDuration(cfg.Webhook.Timeout), log)
	transformer := transform.NewTransformer(log)

	completeHandler := surveycomplete.NewHandler(
		surveycomplete.NewConfig(cfg.Webhook),
		gate,
		resolver,
		respondents,
		catalog,
		transformer,
		dispatcher,
		obs,
		log,
	)
	settingsHandler := surveysettings.NewHandler(resolver, log)

	events, err := registry.NewEventRegistry()
	if err != nil {
		zapLog.Fatal("event registry failed", zap.Error(err))
	}

	srv := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      server.New(events, completeHandler, settingsHandler, log).Routes(),
		ReadTimeout:  config.GetDuration(cfg.Server.ReadTimeout),
		WriteTimeout: config.GetDuration(cfg.Server.ReadTimeout) + config.GetDuration(cfg.Webhook.Timeout),
	}

	go func() {
		zapLog.Info("HTTP server listening", zap.String("address", cfg.Server.Address))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("http server failed", zap.Error(err))
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.GetDuration(cfg.Server.ShutdownTimeout))
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("graceful shutdown failed", zap.Error(err))
	}

	zapLog.Info("Webhook manager stopped")
}
