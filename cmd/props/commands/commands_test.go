package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/props/cmd/props/commands"
	"go.trai.ch/props/internal/app"
	"go.trai.ch/props/internal/build"
)

type mockApp struct {
	resolveFunc func(ctx context.Context, targets []string, opts app.ResolveOptions) error
	statusFunc  func(ctx context.Context, targets []string) error
	cleanFunc   func(ctx context.Context, targets []string) error
}

func (m *mockApp) Resolve(ctx context.Context, targets []string, opts app.ResolveOptions) error {
	if m.resolveFunc != nil {
		return m.resolveFunc(ctx, targets, opts)
	}
	return nil
}

func (m *mockApp) Status(ctx context.Context, targets []string) error {
	if m.statusFunc != nil {
		return m.statusFunc(ctx, targets)
	}
	return nil
}

func (m *mockApp) Clean(ctx context.Context, targets []string) error {
	if m.cleanFunc != nil {
		return m.cleanFunc(ctx, targets)
	}
	return nil
}

func TestCommands_Resolve(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		wantTargets []string
		wantOpts    app.ResolveOptions
	}{
		{
			name: "all tasks",
			args: []string{"resolve"},
		},
		{
			name:        "targets and flags",
			args:        []string{"resolve", "build", "test", "--json", "--filter", "reports.*", "-e"},
			wantTargets: []string{"build", "test"},
			wantOpts:    app.ResolveOptions{Filter: "reports.*", JSON: true, Expand: true},
		},
		{
			name:     "watch",
			args:     []string{"resolve", "-w"},
			wantOpts: app.ResolveOptions{Watch: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotTargets []string
			var gotOpts app.ResolveOptions
			called := false

			cli := commands.New(&mockApp{
				resolveFunc: func(_ context.Context, targets []string, opts app.ResolveOptions) error {
					gotTargets, gotOpts, called = targets, opts, true
					return nil
				},
			})
			cli.SetArgs(tt.args)

			require.NoError(t, cli.Execute(context.Background()))
			assert.True(t, called)
			assert.ElementsMatch(t, tt.wantTargets, gotTargets)
			assert.Equal(t, tt.wantOpts, gotOpts)
		})
	}
}

func TestCommands_Status(t *testing.T) {
	var gotTargets []string
	cli := commands.New(&mockApp{
		statusFunc: func(_ context.Context, targets []string) error {
			gotTargets = targets
			return nil
		},
	})
	cli.SetArgs([]string{"status", "build"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, []string{"build"}, gotTargets)
}

func TestCommands_Clean(t *testing.T) {
	t.Run("passes targets", func(t *testing.T) {
		var gotTargets []string
		cli := commands.New(&mockApp{
			cleanFunc: func(_ context.Context, targets []string) error {
				gotTargets = targets
				return nil
			},
		})
		cli.SetArgs([]string{"clean", "build", "docs"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, []string{"build", "docs"}, gotTargets)
	})

	t.Run("returns error on failure", func(t *testing.T) {
		cli := commands.New(&mockApp{
			cleanFunc: func(_ context.Context, _ []string) error {
				return errors.New("simulated error")
			},
		})
		cli.SetArgs([]string{"clean"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Version(t *testing.T) {
	cli := commands.New(&mockApp{})

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "props version "+build.Version+" (commit: "+build.Commit+", date: "+build.Date+")\n", buf.String())
}

func TestCommands_VersionFlag(t *testing.T) {
	cli := commands.New(&mockApp{})

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"--version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, buf.String(), "props version "+build.Version)
}

func TestCommands_UnknownCommand(t *testing.T) {
	cli := commands.New(&mockApp{})
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
	cli.SetArgs([]string{"deploy"})

	require.Error(t, cli.Execute(context.Background()))
}
