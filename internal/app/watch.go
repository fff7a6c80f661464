package app

import (
	"context"

	"go.trai.ch/props/internal/adapters/watcher" //nolint:depguard // debouncing is shared with the adapter
)

// watch runs run once, then again after every burst of changes below the project root until
// ctx is done. Failed runs are logged and do not stop watching.
func (a *App) watch(ctx context.Context, run func(context.Context) error) error {
	graph, err := a.load()
	if err != nil {
		return err
	}

	if err := run(ctx); err != nil {
		a.logger.Error(err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := a.watcher.Start(ctx, graph.Root()); err != nil {
		return err
	}
	defer func() { _ = a.watcher.Stop() }()

	changes := make(chan struct{}, 1)
	debouncer := watcher.NewDebouncer(a.debounce, func([]string) {
		select {
		case changes <- struct{}{}:
		default:
		}
	})
	defer debouncer.Stop()
	go func() {
		for event := range a.watcher.Events() {
			debouncer.Add(event.Path)
		}
	}()

	a.logger.Info("watching " + graph.Root() + " for changes")
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-changes:
			if err := run(ctx); err != nil {
				a.logger.Error(err)
			}
		}
	}
}
