package ports

import "go.trai.ch/props/internal/core/domain"

// SnapshotStore defines the interface for storing and retrieving output snapshots.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type SnapshotStore interface {
	// Get retrieves the snapshot for a given task name.
	// Returns nil, nil if not found.
	Get(taskName string) (*domain.Snapshot, error)

	// Put stores the snapshot.
	Put(snapshot domain.Snapshot) error
}

// SnapshotStoreOpener opens the snapshot store of a project.
type SnapshotStoreOpener interface {
	// Open returns the store kept below the given project root.
	Open(root string) (SnapshotStore, error)
}
