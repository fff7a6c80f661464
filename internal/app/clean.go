package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.trai.ch/props/internal/core/domain"
	"go.trai.ch/props/internal/core/ports"
	"go.trai.ch/zerr"
)

// Clean removes the outputs recorded for each target that its current declaration no longer
// produces, then records the current resolved outputs as the new snapshot. A task without
// outputs is cleaned against an empty set when its snapshot recorded any.
func (a *App) Clean(ctx context.Context, targets []string) error {
	graph, props, err := a.loadAndResolve(ctx, targets)
	if err != nil {
		return err
	}

	store, err := a.stores.Open(graph.Root())
	if err != nil {
		return err
	}

	var errs error
	for i := range props {
		p := &props[i]
		if !p.Cacheable && p.HasDeclaredOutputs {
			a.skip(p)
			continue
		}
		if err := a.cleanTask(ctx, graph.Root(), store, p); err != nil {
			errs = errors.Join(errs, zerr.With(err, "task", p.Task.Name))
		}
	}
	return errs
}

func (a *App) cleanTask(
	ctx context.Context,
	root string,
	store ports.SnapshotStore,
	props *domain.TaskProperties,
) error {
	name := props.Task.Name
	_, span := a.tracer.Start(ctx, "clean "+name)
	defer span.End()

	snapshot, err := store.Get(name)
	if err != nil {
		span.RecordError(err)
		return err
	}

	var previous []domain.ResolvedOutputFilePropertySpec
	if snapshot != nil {
		previous = snapshot.Outputs
	}
	// A task that dropped every output still owns what it recorded before.
	if !props.Cacheable && len(previous) == 0 {
		a.skip(props)
		return nil
	}
	current := props.Resolved.Slice()

	removed, err := a.cleaner.RemoveStaleOutputs(root, previous, current, props.Task.Keep)
	if err != nil {
		span.RecordError(err)
		return err
	}
	for _, path := range removed {
		a.logger.Info(fmt.Sprintf("%s: removed %s", name, path))
	}
	span.SetAttribute("props.removed", len(removed))

	if err := store.Put(domain.Snapshot{
		TaskName:    name,
		Fingerprint: a.hasher.ComputeFingerprint(props),
		Outputs:     current,
		Timestamp:   time.Now(),
	}); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

func (a *App) skip(props *domain.TaskProperties) {
	a.logger.Warn(fmt.Sprintf("%s: skipped, not cacheable: %s", props.Task.Name, props.NotCacheableReason))
}
