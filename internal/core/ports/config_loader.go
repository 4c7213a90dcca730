package ports

import "go.trai.ch/jute/internal/core/domain"

// ConfigLoader defines the interface for loading jute.yaml.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file at path.
	Load(path string) (*domain.RunConfig, error)

	// Discover walks up from cwd and returns the path of the nearest config file.
	// It returns domain.ErrConfigNotFound when there is none.
	Discover(cwd string) (string, error)
}
