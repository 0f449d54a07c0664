package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// APIKeys holds the credentials found in the environment
type APIKeys struct {
	Gemini string
	OpenAI string
}

var envPaths = []string{
	".env",
	".env.local",
	"../.env",
	"../../.env",
}

// LoadEnv loads the first .env file found. A missing file is not an error;
// the variables may be set system-wide. Returns the loaded path or "".
func LoadEnv() (string, error) {
	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return "", fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			return envPath, nil
		}
	}
	return "", nil
}

// GetAPIKeys reads the API keys. GEMINI_API_KEY takes precedence over the
// generic API_KEY. Formats are checked by RequireAPIKey for the selected
// provider only.
func GetAPIKeys() *APIKeys {
	apiKeys := &APIKeys{
		Gemini: strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		OpenAI: strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
	}
	if apiKeys.Gemini == "" {
		apiKeys.Gemini = strings.TrimSpace(os.Getenv("API_KEY"))
	}
	return apiKeys
}

// For returns the key for a provider.
func (k *APIKeys) For(provider string) string {
	switch provider {
	case ProviderGemini:
		return k.Gemini
	case ProviderOpenAI:
		return k.OpenAI
	}
	return ""
}

// RequireAPIKey fails fast when the selected provider has no key or a
// malformed one.
func RequireAPIKey(apiKeys *APIKeys, provider string) error {
	if key := apiKeys.For(provider); key != "" {
		return ValidateAPIKey(key, provider)
	}
	switch provider {
	case ProviderOpenAI:
		return fmt.Errorf("provider %s requires OPENAI_API_KEY in environment or .env file", provider)
	default:
		return fmt.Errorf("provider %s requires GEMINI_API_KEY (or API_KEY) in environment or .env file", provider)
	}
}
