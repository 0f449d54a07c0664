package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// ConfigEnv names the variable holding the config file path.
const ConfigEnv = "CN7_CONFIG"

// Config is the runtime configuration.
type Config struct {
	Provider    string       `yaml:"provider" validate:"required,oneof=gemini openai"`
	Model       string       `yaml:"model" validate:"required"`
	Temperature float32      `yaml:"temperature" validate:"gte=0,lte=2"`
	BaseURL     string       `yaml:"base_url" validate:"omitempty,url"`
	MaxUploadMB int64        `yaml:"max_upload_mb" validate:"gte=1,lte=2048"`
	Server      ServerConfig `yaml:"server"`

	// SessionTTL closes HTTP sessions left unused this long; 0 keeps them
	// until deleted.
	SessionTTL time.Duration `yaml:"session_ttl" validate:"gte=0"`
}

type ServerConfig struct {
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port" validate:"gte=1,lte=65535"`
	Environment     string        `yaml:"environment" validate:"oneof=development production test"`
	ReadTimeout     time.Duration `yaml:"read_timeout" validate:"gt=0"`
	WriteTimeout    time.Duration `yaml:"write_timeout" validate:"gt=0"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" validate:"gt=0"`
}

var defaultModels = map[string]string{
	ProviderGemini: "gemini-2.5-flash",
	ProviderOpenAI: "whisper-1",
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Provider:    ProviderGemini,
		Temperature: 0.2,
		MaxUploadMB: 200,
		SessionTTL:  30 * time.Minute,
		Server: ServerConfig{
			Host:        "0.0.0.0",
			Port:        8080,
			Environment: "development",
			ReadTimeout: 30 * time.Second,
			// a transcription holds the response open for the remote call
			WriteTimeout:    10 * time.Minute,
			IdleTimeout:     2 * time.Minute,
			ShutdownTimeout: 15 * time.Second,
		},
	}
}

// Load reads the YAML file at path over the defaults and validates the
// result. An empty path falls back to $CN7_CONFIG, then to defaults only.
func Load(path string) (*Config, error) {
	if path == "" {
		path = strings.TrimSpace(os.Getenv(ConfigEnv))
	}

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if err := Parse(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	cfg.applyDefaults()
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes YAML onto cfg. Keys absent from data keep their value.
func Parse(data []byte, cfg *Config) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (c *Config) applyDefaults() {
	c.Provider = strings.ToLower(strings.TrimSpace(c.Provider))
	if c.Model == "" {
		c.Model = defaultModels[c.Provider]
	}
}

// Addr is the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// MaxUploadBytes is the upload cap in bytes.
func (c *Config) MaxUploadBytes() int64 {
	return c.MaxUploadMB << 20
}
