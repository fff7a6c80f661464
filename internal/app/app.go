// Package app implements the application layer for props.
package app

import (
	"context"
	"errors"
	"io"
	"os"
	"runtime"
	"time"

	"go.trai.ch/props/internal/adapters/watcher" //nolint:depguard // debouncing is shared with the adapter
	"go.trai.ch/props/internal/core/domain"
	"go.trai.ch/props/internal/core/ports"
	"go.trai.ch/props/internal/engine/resolver"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	resolver     *resolver.Resolver
	inputs       ports.InputResolver
	hasher       ports.Hasher
	stores       ports.SnapshotStoreOpener
	verifier     ports.Verifier
	cleaner      ports.OutputCleaner
	tracer       ports.Tracer
	watcher      ports.Watcher
	logger       ports.Logger

	stdout      io.Writer
	workDir     string
	parallelism int
	debounce    time.Duration
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	res *resolver.Resolver,
	inputs ports.InputResolver,
	hasher ports.Hasher,
	stores ports.SnapshotStoreOpener,
	verifier ports.Verifier,
	cleaner ports.OutputCleaner,
	tracer ports.Tracer,
	fileWatcher ports.Watcher,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		resolver:     res,
		inputs:       inputs,
		hasher:       hasher,
		stores:       stores,
		verifier:     verifier,
		cleaner:      cleaner,
		tracer:       tracer,
		watcher:      fileWatcher,
		logger:       log,
		stdout:       os.Stdout,
		parallelism:  runtime.NumCPU(),
		debounce:     watcher.DefaultDebounceWindow,
	}
}

// WithOutput sets the writer reports are printed to.
func (a *App) WithOutput(w io.Writer) *App {
	a.stdout = w
	return a
}

// WithWorkDir sets the directory the configuration is searched from.
// The process working directory is used when unset.
func (a *App) WithWorkDir(dir string) *App {
	a.workDir = dir
	return a
}

// WithParallelism sets how many tasks are resolved concurrently.
func (a *App) WithParallelism(n int) *App {
	a.parallelism = n
	return a
}

// WithDebounce sets the window in which file changes are coalesced in watch mode.
func (a *App) WithDebounce(window time.Duration) *App {
	a.debounce = window
	return a
}

func (a *App) load() (*domain.Graph, error) {
	cwd := a.workDir
	if cwd == "" {
		var err error
		if cwd, err = os.Getwd(); err != nil {
			return nil, zerr.Wrap(err, "failed to get working directory")
		}
	}

	graph, err := a.configLoader.Load(cwd)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return graph, nil
}

func (a *App) loadAndResolve(ctx context.Context, targets []string) (*domain.Graph, []domain.TaskProperties, error) {
	graph, err := a.load()
	if err != nil {
		return nil, nil, err
	}

	props, err := a.resolver.Resolve(ctx, graph, targets, a.parallelism)
	if err != nil {
		return nil, nil, errors.Join(domain.ErrResolutionFailed, err)
	}
	return graph, props, nil
}
