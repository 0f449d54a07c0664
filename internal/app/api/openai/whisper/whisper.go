package whisper

import (
	"bytes"
	"context"
	"strings"

	"cn7-transcriptor/internal/app/errors"
	"cn7-transcriptor/internal/app/model"
	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// prompt steers Whisper toward the same transcript layout as the Gemini
// system instruction. Whisper only reads the tail of long prompts, so this
// is the short form.
const prompt = "[00:00] Falante A: Olá a todos e bem-vindos. [00:45] Falante B: Exatamente."

const defaultTemperature = float32(0.2)

// RemoteTranscriber implements api.Transcriber using the OpenAI API.
type RemoteTranscriber struct {
	client      *openai.Client
	model       string
	temperature float32
	logger      *zap.Logger
}

// NewRemoteTranscriber creates a new RemoteTranscriber instance.
func NewRemoteTranscriber(client *openai.Client, model string, temperature float32, logger *zap.Logger) *RemoteTranscriber {
	if model == "" {
		model = openai.Whisper1
	}
	if temperature == 0 {
		temperature = defaultTemperature
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RemoteTranscriber{
		client:      client,
		model:       model,
		temperature: temperature,
		logger:      logger.Named("openai"),
	}
}

// Name implements api.Transcriber.
func (rt *RemoteTranscriber) Name() string {
	return "openai"
}

// Transcribe uploads the file bytes to the OpenAI transcription endpoint.
func (rt *RemoteTranscriber) Transcribe(ctx context.Context, file *model.MediaFile) (string, error) {
	if file == nil {
		return "", errors.ErrNoFile
	}

	req := openai.AudioRequest{
		Model:       rt.model,
		FilePath:    file.Name(),
		Reader:      bytes.NewReader(file.Data()),
		Prompt:      prompt,
		Temperature: rt.temperature,
	}
	resp, err := rt.client.CreateTranscription(ctx, req)
	if err != nil {
		failure := errors.Remote(err)
		rt.logger.Error("createTranscription failed",
			zap.String("file", file.Name()),
			zap.String("kind", string(failure.Kind)),
			zap.Error(err),
		)
		return "", failure
	}

	if strings.TrimSpace(resp.Text) == "" {
		rt.logger.Error("createTranscription returned no text", zap.String("file", file.Name()))
		return "", errors.EmptyResponse()
	}
	return resp.Text, nil
}
