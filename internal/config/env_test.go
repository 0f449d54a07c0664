package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAPIKeys(t *testing.T) {
	testCases := []struct {
		name         string
		openaiKey    string
		geminiKey    string
		genericKey   string
		expectGemini string
	}{
		{
			name:      "OpenAI key",
			openaiKey: "sk-1234567890abcdef1234567890abcdef",
		},
		{
			name:         "Gemini key",
			geminiKey:    "AIzaTest-1234567890abcdef1234567890",
			expectGemini: "AIzaTest-1234567890abcdef1234567890",
		},
		{
			name:         "generic API_KEY used for Gemini",
			genericKey:   "AIzaGeneric-1234567890abcdef123456",
			expectGemini: "AIzaGeneric-1234567890abcdef123456",
		},
		{
			name:         "GEMINI_API_KEY wins over API_KEY",
			geminiKey:    "AIzaTest-1234567890abcdef1234567890",
			genericKey:   "AIzaGeneric-1234567890abcdef123456",
			expectGemini: "AIzaTest-1234567890abcdef1234567890",
		},
		{
			name:         "unrelated API_KEY is read without a format check",
			openaiKey:    "sk-1234567890abcdef1234567890abcdef",
			genericKey:   "some-other-service-token",
			expectGemini: "some-other-service-token",
		},
		{
			name: "empty keys",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("OPENAI_API_KEY", tc.openaiKey)
			t.Setenv("GEMINI_API_KEY", tc.geminiKey)
			t.Setenv("API_KEY", tc.genericKey)

			apiKeys := GetAPIKeys()
			assert.Equal(t, tc.openaiKey, apiKeys.OpenAI)
			assert.Equal(t, tc.expectGemini, apiKeys.Gemini)
		})
	}
}

func TestRequireAPIKey(t *testing.T) {
	testCases := []struct {
		name          string
		apiKeys       *APIKeys
		provider      string
		expectError   bool
		errorContains string
	}{
		{
			name:     "gemini with key",
			apiKeys:  &APIKeys{Gemini: "AIzaTest-1234567890abcdef1234567890"},
			provider: ProviderGemini,
		},
		{
			name:          "gemini without key",
			apiKeys:       &APIKeys{OpenAI: "sk-1234567890abcdef1234567890abcdef"},
			provider:      ProviderGemini,
			expectError:   true,
			errorContains: "GEMINI_API_KEY",
		},
		{
			name:     "openai with key",
			apiKeys:  &APIKeys{OpenAI: "sk-1234567890abcdef1234567890abcdef"},
			provider: ProviderOpenAI,
		},
		{
			name:          "openai without key",
			apiKeys:       &APIKeys{},
			provider:      ProviderOpenAI,
			expectError:   true,
			errorContains: "OPENAI_API_KEY",
		},
		{
			name:     "openai ignores a malformed gemini key",
			apiKeys:  &APIKeys{Gemini: "some-other-service-token", OpenAI: "sk-1234567890abcdef1234567890abcdef"},
			provider: ProviderOpenAI,
		},
		{
			name:          "invalid OpenAI key format",
			apiKeys:       &APIKeys{OpenAI: "invalid-key"},
			provider:      ProviderOpenAI,
			expectError:   true,
			errorContains: "invalid OPENAI_API_KEY format",
		},
		{
			name:          "OpenAI key too short",
			apiKeys:       &APIKeys{OpenAI: "sk-short"},
			provider:      ProviderOpenAI,
			expectError:   true,
			errorContains: "too short",
		},
		{
			name:          "invalid Gemini key format",
			apiKeys:       &APIKeys{Gemini: "some-other-service-token"},
			provider:      ProviderGemini,
			expectError:   true,
			errorContains: "invalid GEMINI_API_KEY format",
		},
		{
			name:          "Gemini key too short",
			apiKeys:       &APIKeys{Gemini: "AIza-short"},
			provider:      ProviderGemini,
			expectError:   true,
			errorContains: "too short",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := RequireAPIKey(tc.apiKeys, tc.provider)

			if tc.expectError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.errorContains)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	path, err := LoadEnv()
	require.NoError(t, err)
	assert.Empty(t, path, "no .env file present")

	t.Setenv("CN7_TEST_VALUE", "")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("CN7_TEST_VALUE=loaded\n"), 0o600))
	require.NoError(t, os.Unsetenv("CN7_TEST_VALUE"))

	path, err = LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, ".env", path)
	assert.Equal(t, "loaded", os.Getenv("CN7_TEST_VALUE"))
}
