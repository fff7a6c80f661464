package app_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/props/internal/adapters/telemetry"
	"go.trai.ch/props/internal/app"
	"go.trai.ch/props/internal/core/domain"
	"go.trai.ch/props/internal/core/ports/mocks"
	"go.trai.ch/props/internal/engine/resolver"
	"go.uber.org/mock/gomock"
)

const (
	projectRoot = "/project"
	workDir     = "/project/sub"
)

type fixture struct {
	loader   *mocks.MockConfigLoader
	inputs   *mocks.MockInputResolver
	hasher   *mocks.MockHasher
	stores   *mocks.MockSnapshotStoreOpener
	store    *mocks.MockSnapshotStore
	verifier *mocks.MockVerifier
	cleaner  *mocks.MockOutputCleaner
	watcher  *mocks.MockWatcher
	logger   *mocks.MockLogger
	out      *bytes.Buffer
	app      *app.App
}

// newFixture wires an App around mocks. Callers must set NO_COLOR before entering a bubble.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		loader:   mocks.NewMockConfigLoader(ctrl),
		inputs:   mocks.NewMockInputResolver(ctrl),
		hasher:   mocks.NewMockHasher(ctrl),
		stores:   mocks.NewMockSnapshotStoreOpener(ctrl),
		store:    mocks.NewMockSnapshotStore(ctrl),
		verifier: mocks.NewMockVerifier(ctrl),
		cleaner:  mocks.NewMockOutputCleaner(ctrl),
		watcher:  mocks.NewMockWatcher(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
		out:      &bytes.Buffer{},
	}

	tracer := telemetry.NewNoOpTracer()
	f.app = app.New(
		f.loader,
		resolver.New(tracer),
		f.inputs,
		f.hasher,
		f.stores,
		f.verifier,
		f.cleaner,
		tracer,
		f.watcher,
		f.logger,
	).WithOutput(f.out).WithWorkDir(workDir).WithParallelism(2)

	return f
}

func file(name, path string) domain.DeclaredOutput {
	return domain.DeclareCacheable(domain.NewOutputFileProperty(name, domain.OutputTypeFile, path))
}

func newGraph(t *testing.T, tasks ...*domain.Task) *domain.Graph {
	t.Helper()
	g := domain.NewGraph()
	g.SetRoot(projectRoot)
	for _, task := range tasks {
		require.NoError(t, g.AddTask(task))
	}
	require.NoError(t, g.Validate())
	return g
}

// projectGraph declares one cacheable task and one task with a multi-file output.
func projectGraph(t *testing.T) *domain.Graph {
	t.Helper()
	return newGraph(t,
		&domain.Task{
			Name: "compile",
			Inputs: []domain.InputFileProperty{
				domain.NewInputFileProperty("sources", "src", "go.mod"),
				domain.NewInputFileProperty("", "go.sum"),
			},
			Outputs: []domain.DeclaredOutput{
				file("binary", "bin/app"),
				domain.DeclareComposite(domain.NewCompositeOutputProperty("reports", domain.OutputTypeDirectory,
					domain.CompositeEntry{Key: "html", Path: "build/reports/html"},
					domain.CompositeEntry{Key: "xml", Path: "build/reports/xml"},
				)),
			},
		},
		&domain.Task{
			Name:         "logs",
			Dependencies: []string{"compile"},
			Outputs: []domain.DeclaredOutput{
				domain.DeclareGeneric(domain.NewOutputFilesProperty("logs", domain.OutputTypeFile, "log/a.log", "log/b.log")),
			},
		},
	)
}
