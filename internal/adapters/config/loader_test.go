package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/props/internal/adapters/config"
	"go.trai.ch/props/internal/core/domain"
	"go.trai.ch/props/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func createFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func newLoader(t *testing.T) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()
	return config.NewLoader(mockLogger)
}

func TestLoader_Load_FullDeclaration(t *testing.T) {
	rootDir := t.TempDir()
	createFile(t, rootDir, domain.ConfigFileName, `
version: "1"
tasks:
  generate:
    outputs:
      - name: sources
        type: directory
        path: gen/
  compile:
    dependsOn: [generate]
    inputs:
      - name: sources
        paths: [src, go.mod]
      - paths: [go.sum]
    outputs:
      - name: binary
        type: file
        path: bin/app
      - name: coverage
      - name: reports
        type: directory
        each: {xml: build/reports/xml, html: build/reports/html}
      - name: shards
        each: [out/a.bin, out/b.bin]
      - name: logs
        files: [log/a.log, log/b.log]
    keep: ["**/.gitkeep"]
`)

	g, err := newLoader(t).Load(rootDir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Clean(rootDir), g.Root())

	task, ok := g.GetTask("compile")
	require.True(t, ok)
	assert.Equal(t, []string{"generate"}, task.Dependencies)
	assert.Equal(t, []string{"**/.gitkeep"}, task.Keep)

	require.Len(t, task.Inputs, 2)
	assert.Equal(t, "sources", task.Inputs[0].PropertyName())
	assert.Equal(t, []string{"src", "go.mod"}, task.Inputs[0].Paths())
	assert.Empty(t, task.Inputs[1].PropertyName(), "input without a name stays anonymous")

	require.Len(t, task.Outputs, 5)

	binary, ok := task.Outputs[0].Cacheable()
	require.True(t, ok)
	file, present := binary.OutputFile()
	assert.True(t, present)
	assert.Equal(t, "bin/app", file)

	coverage, ok := task.Outputs[1].Cacheable()
	require.True(t, ok)
	_, present = coverage.OutputFile()
	assert.False(t, present, "output without a path is absent")

	reports, ok := task.Outputs[2].Composite()
	require.True(t, ok)
	var reportNames []string
	for p := range reports.ExpandToOutputProperties() {
		reportNames = append(reportNames, p.PropertyName())
		assert.Equal(t, domain.OutputTypeDirectory, p.OutputType())
	}
	assert.Equal(t, []string{"reports.xml", "reports.html"}, reportNames, "map entries keep declaration order")

	shards, ok := task.Outputs[3].Composite()
	require.True(t, ok)
	var shardNames []string
	for p := range shards.ExpandToOutputProperties() {
		shardNames = append(shardNames, p.PropertyName())
	}
	assert.Equal(t, []string{"shards$1", "shards$2"}, shardNames)

	logs, ok := task.Outputs[4].Generic()
	require.True(t, ok)
	assert.Equal(t, []string{"log/a.log", "log/b.log"}, logs.Paths())

	gen, ok := g.GetTask("generate")
	require.True(t, ok)
	sources, ok := gen.Outputs[0].Cacheable()
	require.True(t, ok)
	file, _ = sources.OutputFile()
	assert.Equal(t, "gen", file, "paths are cleaned")
}

func TestLoader_Load_Errors(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		errContains string
		errIs       error
	}{
		{
			name: "empty output name",
			content: `
tasks:
  build:
    outputs:
      - name: ""
        path: out
`,
			errContains: "Property name must not be empty string",
			errIs:       domain.ErrEmptyPropertyName,
		},
		{
			name: "empty input name",
			content: `
tasks:
  build:
    inputs:
      - name: ""
        paths: [src]
`,
			errIs: domain.ErrEmptyPropertyName,
		},
		{
			name: "unknown output type",
			content: `
tasks:
  build:
    outputs:
      - path: out
        type: socket
`,
			errContains: "unknown output type",
		},
		{
			name: "conflicting output paths",
			content: `
tasks:
  build:
    outputs:
      - name: out
        path: out
        files: [a, b]
`,
			errContains: "more than one of",
		},
		{
			name: "scalar each",
			content: `
tasks:
  build:
    outputs:
      - name: out
        each: out
`,
			errContains: "'each' must be a list or a map",
			errIs:       domain.ErrInvalidCompositeOutput,
		},
		{
			name: "empty path in each list",
			content: `
tasks:
  build:
    outputs:
      - name: shards
        each: [out/a.bin, ""]
`,
			errContains: "empty path in 'each'",
			errIs:       domain.ErrInvalidCompositeOutput,
		},
		{
			name: "empty path in each map",
			content: `
tasks:
  build:
    outputs:
      - name: reports
        each: {k: ""}
`,
			errContains: "empty path in 'each'",
			errIs:       domain.ErrInvalidCompositeOutput,
		},
		{
			name: "missing dependency",
			content: `
tasks:
  build:
    dependsOn: [ghost]
`,
			errContains: "missing dependency",
		},
		{
			name: "cycle",
			content: `
tasks:
  a:
    dependsOn: [b]
  b:
    dependsOn: [a]
`,
			errContains: "cycle detected",
		},
		{
			name: "task name with whitespace",
			content: `
tasks:
  "my task": {}
`,
			errContains: "invalid task name",
		},
		{
			name:        "malformed yaml",
			content:     "tasks: [",
			errContains: "failed to parse config file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rootDir := t.TempDir()
			createFile(t, rootDir, domain.ConfigFileName, tt.content)

			_, err := newLoader(t).Load(rootDir)
			require.Error(t, err)
			if tt.errContains != "" {
				assert.Contains(t, err.Error(), tt.errContains)
			}
			if tt.errIs != nil {
				assert.True(t, errors.Is(err, tt.errIs), "expected %v in chain, got %v", tt.errIs, err)
			}
		})
	}
}

func TestLoader_Load_WarnsOnUnknownVersion(t *testing.T) {
	rootDir := t.TempDir()
	createFile(t, rootDir, domain.ConfigFileName, "version: \"2\"\ntasks: {}\n")

	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).Times(1)

	g, err := config.NewLoader(mockLogger).Load(rootDir)
	require.NoError(t, err)
	assert.Empty(t, g.TaskNames())
}

func TestLoader_Load_EmptyEachPathReportsLine(t *testing.T) {
	rootDir := t.TempDir()
	createFile(t, rootDir, domain.ConfigFileName, `tasks:
  build:
    outputs:
      - name: shards
        each:
          - out/a.bin
          - ""
`)

	_, err := newLoader(t).Load(rootDir)
	require.Error(t, err)

	var md interface{ Metadata() map[string]any }
	require.True(t, errors.As(err, &md))
	assert.Equal(t, 7, md.Metadata()["line"])
	assert.Equal(t, "shards", md.Metadata()["output"])
	assert.Equal(t, "build", md.Metadata()["task"])
}
