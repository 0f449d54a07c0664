package app

import (
	"context"

	"cn7-transcriptor/internal/api/server"
	"cn7-transcriptor/internal/app/api"
	"cn7-transcriptor/internal/app/api/provider"
	"cn7-transcriptor/internal/app/metrics"
	"cn7-transcriptor/internal/app/preview"
	"cn7-transcriptor/internal/app/session"
	"cn7-transcriptor/internal/config"
	"go.uber.org/zap"
)

// provideTranscriber creates the configured backend wrapped with metrics.
// Backends register themselves; the binary must import them.
func provideTranscriber(ctx context.Context, cfg *config.Config, keys *config.APIKeys, m *metrics.Metrics, logger *zap.Logger) (api.Transcriber, error) {
	if err := config.RequireAPIKey(keys, cfg.Provider); err != nil {
		return nil, err
	}

	t, err := provider.Create(ctx, cfg.Provider, provider.Settings{
		APIKey:      keys.For(cfg.Provider),
		Model:       cfg.Model,
		Temperature: cfg.Temperature,
		BaseURL:     cfg.BaseURL,
	}, logger)
	if err != nil {
		return nil, err
	}

	logger.Info("transcription backend ready",
		zap.String("provider", t.Name()),
		zap.String("model", cfg.Model),
	)
	return provider.NewInstrumented(t, m), nil
}

// provideSessionStore creates the store and starts closing idle sessions.
// Server.Shutdown stops the expiry loop through CloseAll.
func provideSessionStore(ctx context.Context, cfg *config.Config, transcriber api.Transcriber, previews *preview.Manager, m *metrics.Metrics, logger *zap.Logger) *session.Store {
	store := session.NewStore(transcriber, previews, m, logger)
	store.StartExpiry(ctx, cfg.SessionTTL)
	return store
}

func provideServerConfig(cfg *config.Config) server.Config {
	return server.Config{
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		Environment:  cfg.Server.Environment,
		MaxUploadMB:  cfg.MaxUploadMB,
	}
}
