package ports

import "github.com/TYTheBeast/wynn-builder-ui/internal/core/domain"

// ConfigLoader defines the interface for loading the UI settings.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the settings file at path.
	// A missing file yields domain.DefaultSettings.
	Load(path string) (domain.Settings, error)
}
