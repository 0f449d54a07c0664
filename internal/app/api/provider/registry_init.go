package provider

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"cn7-transcriptor/internal/app/api"
	"go.uber.org/zap"
)

// Settings configures one transcription backend.
type Settings struct {
	APIKey      string
	Model       string
	Temperature float32
	BaseURL     string
}

// ProviderCreator builds a backend from settings
type ProviderCreator func(ctx context.Context, settings Settings, logger *zap.Logger) (api.Transcriber, error)

// providerRegistry stores provider creation functions
var (
	providerRegistry = make(map[string]ProviderCreator)
	registryMutex    sync.RWMutex
)

// RegisterProvider registers a provider creator function
func RegisterProvider(providerType string, creator ProviderCreator) {
	registryMutex.Lock()
	defer registryMutex.Unlock()
	providerRegistry[providerType] = creator
}

// GetProviderCreator returns the creator function for a provider type
func GetProviderCreator(providerType string) (ProviderCreator, error) {
	registryMutex.RLock()
	defer registryMutex.RUnlock()

	creator, ok := providerRegistry[providerType]
	if !ok {
		return nil, fmt.Errorf("provider type %s not registered", providerType)
	}
	return creator, nil
}

// ListRegisteredProviders returns all registered provider types, sorted
func ListRegisteredProviders() []string {
	registryMutex.RLock()
	defer registryMutex.RUnlock()

	var providers []string
	for providerType := range providerRegistry {
		providers = append(providers, providerType)
	}
	sort.Strings(providers)
	return providers
}

// Create builds the named backend.
func Create(ctx context.Context, providerType string, settings Settings, logger *zap.Logger) (api.Transcriber, error) {
	creator, err := GetProviderCreator(providerType)
	if err != nil {
		return nil, err
	}
	return creator(ctx, settings, logger)
}
