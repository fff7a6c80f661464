package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/props/internal/adapters/cas"                //nolint:depguard // Wired in app layer
	"go.trai.ch/props/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/props/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"go.trai.ch/props/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/props/internal/adapters/telemetry"          //nolint:depguard // Wired in app layer
	"go.trai.ch/props/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/props/internal/adapters/watcher"            //nolint:depguard // Wired in app layer
	"go.trai.ch/props/internal/core/ports"
	"go.trai.ch/props/internal/engine/resolver"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			resolver.NodeID,
			fs.ResolverNodeID,
			fs.HasherNodeID,
			fs.VerifierNodeID,
			fs.CleanerNodeID,
			cas.NodeID,
			telemetry.TracerNodeID,
			watcher.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			return NewComponents(app, log, tel), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	res, err := graft.Dep[*resolver.Resolver](ctx)
	if err != nil {
		return nil, err
	}

	inputs, err := graft.Dep[ports.InputResolver](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	verifier, err := graft.Dep[ports.Verifier](ctx)
	if err != nil {
		return nil, err
	}

	cleaner, err := graft.Dep[ports.OutputCleaner](ctx)
	if err != nil {
		return nil, err
	}

	stores, err := graft.Dep[ports.SnapshotStoreOpener](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	fileWatcher, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, res, inputs, hasher, stores, verifier, cleaner, tracer, fileWatcher, log), nil
}
