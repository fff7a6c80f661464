package ports

import "go.trai.ch/props/internal/core/domain"

// ConfigLoader defines the interface for loading the task declarations.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load finds the configuration starting at the given working directory and returns the
	// validated task graph.
	Load(cwd string) (*domain.Graph, error)
}
