package common

import (
	"cn7-transcriptor/internal/app/logging"
	"cn7-transcriptor/internal/config"
	"go.uber.org/zap"
)

var (
	ConfigPath string
	Verbose    bool
)

// Runtime is what every command that talks to a backend needs.
type Runtime struct {
	Config *config.Config
	Keys   *config.APIKeys
	Logger *zap.Logger
}

// Bootstrap loads .env, the config file and the API keys. quiet limits
// logging to errors unless --verbose is set.
func Bootstrap(quiet bool) (*Runtime, error) {
	// .env may set CN7_CONFIG, so it goes first
	envPath, err := config.LoadEnv()
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(ConfigPath)
	if err != nil {
		return nil, err
	}

	var logger *zap.Logger
	if quiet && !Verbose {
		logger = logging.Quiet()
	} else {
		logger, err = logging.New(Verbose || cfg.Server.Environment != "production")
		if err != nil {
			return nil, err
		}
	}

	if envPath != "" {
		logger.Debug("loaded environment file", zap.String("path", envPath))
	}

	return &Runtime{Config: cfg, Keys: config.GetAPIKeys(), Logger: logger}, nil
}
