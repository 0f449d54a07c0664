//go:build !wireinject

//go:generate go run -mod=mod github.com/google/wire/cmd/wire

package app

import (
	"context"

	"cn7-transcriptor/internal/api/server"
	"cn7-transcriptor/internal/app/converter"
	"cn7-transcriptor/internal/app/metrics"
	"cn7-transcriptor/internal/app/preview"
	"cn7-transcriptor/internal/config"
	"go.uber.org/zap"
)

// Injectors from wire.go:

// InitializeServer builds the HTTP server and everything behind it.
func InitializeServer(ctx context.Context, cfg *config.Config, keys *config.APIKeys, logger *zap.Logger) (*server.Server, error) {
	metricsMetrics := metrics.New()
	transcriber, err := provideTranscriber(ctx, cfg, keys, metricsMetrics, logger)
	if err != nil {
		return nil, err
	}
	manager := preview.NewManager(metricsMetrics, logger)
	store := provideSessionStore(ctx, cfg, transcriber, manager, metricsMetrics, logger)
	serverConfig := provideServerConfig(cfg)
	serverServer := server.NewServer(serverConfig, store, manager, metricsMetrics, logger)
	return serverServer, nil
}

// InitializeConverter builds the one-shot converter used by the CLI.
func InitializeConverter(ctx context.Context, cfg *config.Config, keys *config.APIKeys, logger *zap.Logger, progress converter.ProgressConfig) (*converter.Converter, error) {
	metricsMetrics := metrics.New()
	transcriber, err := provideTranscriber(ctx, cfg, keys, metricsMetrics, logger)
	if err != nil {
		return nil, err
	}
	manager := preview.NewManager(metricsMetrics, logger)
	converterConverter := converter.NewConverter(transcriber, manager, progress, logger)
	return converterConverter, nil
}
