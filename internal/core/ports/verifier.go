package ports

import "go.trai.ch/props/internal/core/domain"

// Verifier defines the interface for verifying output existence.
//
//go:generate mockgen -destination=mocks/verifier_mock.go -package=mocks -source=verifier.go
type Verifier interface {
	// VerifyOutputs checks if all outputs exist in the given root directory with the declared type.
	VerifyOutputs(root string, outputs []domain.ResolvedOutputFilePropertySpec) (bool, error)
}
