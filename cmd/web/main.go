package main

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/zatekoja/tastebuddies/frontend/internal/adapters/cache"
	"github.com/zatekoja/tastebuddies/frontend/internal/api/handlers"
	"github.com/zatekoja/tastebuddies/frontend/internal/api/routes"
	"github.com/zatekoja/tastebuddies/frontend/internal/api/session"
	"github.com/zatekoja/tastebuddies/frontend/internal/application/services"
	"github.com/zatekoja/tastebuddies/frontend/internal/domain/providers"
	"github.com/zatekoja/tastebuddies/frontend/internal/infrastructure/clients/messapi"
	"github.com/zatekoja/tastebuddies/frontend/internal/infrastructure/clients/redis"
	"github.com/zatekoja/tastebuddies/frontend/internal/infrastructure/observability"
	"github.com/zatekoja/tastebuddies/frontend/pkg/config"
)

func main() {
	// A .env file is optional; the environment wins over it
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		observability.GetLogger().Warn().Err(err).Msg("Failed to read .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		observability.GetLogger().Fatal().Err(err).Msg("Failed to load configuration")
	}
	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Server.Env)
	logger := observability.GetLogger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry if enabled
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(ctx, cfg.OTEL.ServiceName, cfg.OTEL.ServiceVersion, cfg.OTEL.Endpoint)
		if err != nil {
			logger.Warn().Err(err).Msg("Failed to set up OpenTelemetry")
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					logger.Error().Err(err).Msg("Error shutting down OpenTelemetry")
				}
			}()
			observability.EnableOTelLogs(cfg.OTEL.ServiceName)
			logger = observability.GetLogger()
			logger.Info().Msg("OpenTelemetry initialized successfully")
		}
	}

	metrics, err := observability.InitMetrics()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize metrics")
	}

	// Review drafts live in Redis when it is reachable, otherwise in memory
	var draftCache providers.CacheProvider
	if cfg.Redis.Enabled {
		redisClient, err := redis.NewClient(&cfg.Redis)
		if err != nil {
			logger.Warn().Err(err).Str("addr", cfg.Redis.RedisAddr()).Msg("Redis unavailable, keeping review drafts in memory")
		} else {
			defer redisClient.Close()
			draftCache = cache.NewRedisAdapter(redisClient)
			logger.Info().Str("addr", cfg.Redis.RedisAddr()).Msg("Review drafts stored in Redis")
		}
	}
	if draftCache == nil {
		draftCache = cache.NewMemoryAdapter(cfg.Redis.MemoryMaxDrafts, cfg.Redis.DraftTTL)
	}
	drafts := cache.NewReviewDraftStore(draftCache, cfg.Redis.DraftTTL, metrics)

	api := messapi.NewClient(cfg.Backend.BaseURL, cfg.Session.CookieName, cfg.Backend.Timeout, metrics)

	pages := handlers.NewPages(handlers.PageOptions{
		AppName:       cfg.UI.AppName,
		HTMXScriptURL: cfg.UI.HTMXScriptURL,
		LoginPath:     cfg.Session.LoginPath,
	}, session.Cookies{
		SessionName: cfg.Session.CookieName,
		VisitorName: cfg.Session.VisitorCookieName,
		Secure:      cfg.Session.SecureCookies,
	})

	router := routes.NewRouter(
		handlers.NewMessHandler(services.NewMessService(api, drafts), pages, cfg.UI.MessImageURL),
		handlers.NewHeaderHandler(services.NewHeaderService(api), pages, cfg.Session.LoginPath),
		handlers.NewProfileHandler(services.NewProfileService(api), pages),
		cfg.Server.AllowedOrigins,
		metrics,
	)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.SetupRoutes(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start server in a goroutine
	go func() {
		logger.Info().Str("addr", server.Addr).Str("backend", cfg.Backend.BaseURL).Msg("Server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Server shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Error during server shutdown")
	}

	logger.Info().Msg("Server stopped")
}
