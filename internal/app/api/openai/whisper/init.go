package whisper

import (
	"context"

	"cn7-transcriptor/internal/app/api"
	"cn7-transcriptor/internal/app/api/openai"
	"cn7-transcriptor/internal/app/api/provider"
	"cn7-transcriptor/internal/app/errors"
	"go.uber.org/zap"
)

func init() {
	// Register openai provider with the factory
	provider.RegisterProvider("openai", createOpenAIProvider)
}

// createOpenAIProvider creates an OpenAI Whisper provider from settings
func createOpenAIProvider(ctx context.Context, settings provider.Settings, logger *zap.Logger) (api.Transcriber, error) {
	if settings.APIKey == "" {
		return nil, errors.Wrap(errors.ErrMissingAPIKey, "openai provider")
	}
	client := openai.NewClient(settings.APIKey, settings.BaseURL)
	return NewRemoteTranscriber(client, settings.Model, settings.Temperature, logger), nil
}
