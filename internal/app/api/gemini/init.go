package gemini

import (
	"context"

	"cn7-transcriptor/internal/app/api"
	"cn7-transcriptor/internal/app/api/provider"
	"go.uber.org/zap"
)

func init() {
	provider.RegisterProvider("gemini", createGeminiProvider)
}

func createGeminiProvider(ctx context.Context, settings provider.Settings, logger *zap.Logger) (api.Transcriber, error) {
	return NewClient(ctx, Config{
		APIKey:      settings.APIKey,
		Model:       settings.Model,
		Temperature: settings.Temperature,
		BaseURL:     settings.BaseURL,
	}, logger)
}
