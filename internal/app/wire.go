//go:build wireinject

package app

import (
	"context"

	"cn7-transcriptor/internal/api/server"
	"cn7-transcriptor/internal/app/converter"
	"cn7-transcriptor/internal/app/metrics"
	"cn7-transcriptor/internal/app/preview"
	"cn7-transcriptor/internal/config"
	"github.com/google/wire"
	"go.uber.org/zap"
)

var transcriberSet = wire.NewSet(
	metrics.New,
	preview.NewManager,
	provideTranscriber,
)

// InitializeServer builds the HTTP server and everything behind it.
func InitializeServer(ctx context.Context, cfg *config.Config, keys *config.APIKeys, logger *zap.Logger) (*server.Server, error) {
	wire.Build(
		transcriberSet,
		provideSessionStore,
		provideServerConfig,
		server.NewServer,
	)
	return &server.Server{}, nil
}

// InitializeConverter builds the one-shot converter used by the CLI.
func InitializeConverter(ctx context.Context, cfg *config.Config, keys *config.APIKeys, logger *zap.Logger, progress converter.ProgressConfig) (*converter.Converter, error) {
	wire.Build(
		transcriberSet,
		converter.NewConverter,
	)
	return &converter.Converter{}, nil
}

