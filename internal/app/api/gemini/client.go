// Package gemini transcribes media with a Gemini model through the
// google.golang.org/genai SDK.
package gemini

import (
	"context"
	"encoding/base64"
	"strings"
	"time"

	"cn7-transcriptor/internal/app/errors"
	"cn7-transcriptor/internal/app/model"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

// contentGenerator is the part of *genai.Models the client uses.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Config holds the request parameters.
type Config struct {
	APIKey      string
	Model       string
	Temperature float32
	// BaseURL overrides the endpoint, for tests and proxies.
	BaseURL string
}

func (c Config) withDefaults() Config {
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.Temperature == 0 {
		c.Temperature = DefaultTemperature
	}
	return c
}

// Client implements api.Transcriber.
type Client struct {
	models contentGenerator
	config Config
	logger *zap.Logger
}

// NewClient connects to the Gemini API with the key in cfg.
func NewClient(ctx context.Context, cfg Config, logger *zap.Logger) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.ErrMissingAPIKey
	}

	cc := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create gemini client")
	}
	return newClient(client.Models, cfg, logger), nil
}

func newClient(models contentGenerator, cfg Config, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		models: models,
		config: cfg.withDefaults(),
		logger: logger.Named("gemini"),
	}
}

// Name implements api.Transcriber.
func (c *Client) Name() string {
	return "gemini"
}

// Model returns the model requests are sent to.
func (c *Client) Model() string {
	return c.config.Model
}

// Transcribe sends the whole file inline with the system instruction and
// returns the generated text. There is no retry and no timeout beyond ctx.
func (c *Client) Transcribe(ctx context.Context, file *model.MediaFile) (string, error) {
	if file == nil {
		return "", errors.ErrNoFile
	}

	contents, config := c.buildRequest(file)

	start := time.Now()
	resp, err := c.models.GenerateContent(ctx, c.config.Model, contents, config)
	if err != nil {
		failure := errors.Remote(err)
		c.logger.Error("transcription request failed",
			zap.String("file", file.Name()),
			zap.String("mime_type", file.MIMEType()),
			zap.String("kind", string(failure.Kind)),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err),
		)
		return "", failure
	}

	text := responseText(resp)
	if strings.TrimSpace(text) == "" {
		c.logger.Error("transcription response was empty",
			zap.String("file", file.Name()),
			zap.Duration("elapsed", time.Since(start)),
		)
		return "", errors.EmptyResponse()
	}

	c.logger.Debug("transcription completed",
		zap.String("file", file.Name()),
		zap.Int("chars", len(text)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return text, nil
}

func (c *Client) buildRequest(file *model.MediaFile) ([]*genai.Content, *genai.GenerateContentConfig) {
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(file.Data(), file.MIMEType()),
			genai.NewPartFromText(UserInstruction),
		}, genai.RoleUser),
	}

	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(SystemInstruction, genai.RoleUser),
		Temperature:       genai.Ptr(c.config.Temperature),
	}
	return contents, config
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	return resp.Text()
}

// InlinePayload is the transport-safe form of a file: its declared type and
// the base64 of its bytes. The SDK produces the same encoding on the wire.
type InlinePayload struct {
	MIMEType string
	Data     string
}

// EncodeInline returns the inline payload for file.
func EncodeInline(file *model.MediaFile) InlinePayload {
	return InlinePayload{
		MIMEType: file.MIMEType(),
		Data:     base64.StdEncoding.EncodeToString(file.Data()),
	}
}
