package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/props/internal/core/ports"
)

// NodeID is the unique identifier for the snapshot store Graft node.
const NodeID graft.ID = "adapter.snapshot_store"

func init() {
	graft.Register(graft.Node[ports.SnapshotStoreOpener]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SnapshotStoreOpener, error) {
			return NewOpener(), nil
		},
	})
}
