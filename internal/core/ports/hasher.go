package ports

import "go.trai.ch/props/internal/core/domain"

// Hasher defines the interface for computing property fingerprints.
//
//go:generate mockgen -destination=mocks/hasher_mock.go -package=mocks -source=hasher.go
type Hasher interface {
	// ComputeFingerprint computes a stable fingerprint of the resolved properties of a task.
	ComputeFingerprint(props *domain.TaskProperties) string
}
