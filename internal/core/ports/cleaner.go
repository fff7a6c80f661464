package ports

import "go.trai.ch/props/internal/core/domain"

// OutputCleaner defines the interface for removing outputs a task no longer declares.
//
//go:generate mockgen -destination=mocks/cleaner_mock.go -package=mocks -source=cleaner.go
type OutputCleaner interface {
	// RemoveStaleOutputs deletes every previous output file that is absent from current.
	// Files matching one of the keep glob patterns are left in place.
	// It returns the removed paths relative to root.
	RemoveStaleOutputs(
		root string,
		previous, current []domain.ResolvedOutputFilePropertySpec,
		keep []string,
	) ([]string, error)
}
