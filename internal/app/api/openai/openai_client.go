package openai

import (
	"strings"

	"github.com/sashabaranov/go-openai"
)

// NewClient returns an OpenAI client for apiKey. baseURL may be empty.
func NewClient(apiKey, baseURL string) *openai.Client {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = strings.TrimRight(baseURL, "/")
	}
	return openai.NewClientWithConfig(config)
}
