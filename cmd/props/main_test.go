package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/props/internal/adapters/telemetry"
	"go.trai.ch/props/internal/app"
	"go.trai.ch/props/internal/core/domain"
	"go.trai.ch/props/internal/core/ports/mocks"
	"go.trai.ch/props/internal/engine/resolver"
	"go.uber.org/mock/gomock"
)

type appMocks struct {
	loader *mocks.MockConfigLoader
	logger *mocks.MockLogger
}

func newApp(t *testing.T) (*app.App, appMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := appMocks{
		loader: mocks.NewMockConfigLoader(ctrl),
		logger: mocks.NewMockLogger(ctrl),
	}
	tracer := telemetry.NewNoOpTracer()
	a := app.New(
		m.loader,
		resolver.New(tracer),
		mocks.NewMockInputResolver(ctrl),
		mocks.NewMockHasher(ctrl),
		mocks.NewMockSnapshotStoreOpener(ctrl),
		mocks.NewMockVerifier(ctrl),
		mocks.NewMockOutputCleaner(ctrl),
		tracer,
		mocks.NewMockWatcher(ctrl),
		m.logger,
	).WithWorkDir("/project").WithOutput(io.Discard)
	return a, m
}

func provide(a *app.App, logger *mocks.MockLogger) ComponentProvider {
	return func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{App: a, Logger: logger}, func() {}, nil
	}
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	a, m := newApp(t)

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provide(a, m.logger))
	assert.Equal(t, 0, exitCode)
}

// TestRun_CleanupCalled verifies that the provider's cleanup runs when the command returns.
func TestRun_CleanupCalled(t *testing.T) {
	a, m := newApp(t)

	cleaned := false
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{App: a, Logger: m.logger}, func() { cleaned = true }, nil
	}

	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), provider)
	assert.Equal(t, 0, exitCode)
	assert.True(t, cleaned)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run logs the error and returns 1 when the command fails.
func TestRun_ExecutionError(t *testing.T) {
	a, m := newApp(t)
	m.loader.EXPECT().Load("/project").Return(nil, domain.ErrConfigNotFound)
	m.logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorIs(t, err, domain.ErrConfigNotFound)
	})

	exitCode := run(context.Background(), []string{"resolve"}, new(bytes.Buffer), provide(a, m.logger))
	assert.Equal(t, 1, exitCode)
}

// TestRun_Signal verifies that the context is canceled on signal.
func TestRun_Signal(t *testing.T) {
	a, m := newApp(t)

	blockCh := make(chan struct{})
	m.loader.EXPECT().Load(gomock.Any()).DoAndReturn(func(_ string) (*domain.Graph, error) {
		select {
		case <-blockCh:
			return nil, context.Canceled
		case <-time.After(5 * time.Second):
			return nil, errors.New("timeout in mock")
		}
	})
	m.logger.EXPECT().Error(gomock.Any()).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan int)

	go func() {
		errCh <- run(ctx, []string{"resolve", "build"}, io.Discard, provide(a, m.logger))
	}()

	// Wait a bit to ensure run() reaches Load()
	time.Sleep(100 * time.Millisecond)

	cancel()
	close(blockCh)

	select {
	case ret := <-errCh:
		assert.NotEqual(t, 0, ret)
	case <-time.After(2 * time.Second):
		t.Fatal("TestRun_Signal timed out waiting for run() to return")
	}
}
