// Package config provides the configuration loader for props.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode"

	"go.trai.ch/props/internal/core/domain"
	"go.trai.ch/props/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// supportedVersion is the only configuration version understood by the loader.
const supportedVersion = "1"

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load finds props.yaml in cwd or one of its parents and returns the validated task graph.
func (l *Loader) Load(cwd string) (*domain.Graph, error) {
	configPath, err := FindConfiguration(cwd)
	if err != nil {
		return nil, err
	}

	var propsfile Propsfile
	if err := readAndUnmarshalYAML(configPath, &propsfile); err != nil {
		return nil, err
	}

	if propsfile.Version != "" && propsfile.Version != supportedVersion {
		l.Logger.Warn(fmt.Sprintf("%s declares version %q, expected %q",
			domain.ConfigFileName, propsfile.Version, supportedVersion))
	}

	g := domain.NewGraph()
	g.SetRoot(resolveRoot(configPath, propsfile.Root))

	names := make([]string, 0, len(propsfile.Tasks))
	for name := range propsfile.Tasks {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		if err := validateTaskName(name); err != nil {
			return nil, err
		}

		dto := propsfile.Tasks[name]
		if dto == nil {
			dto = &TaskDTO{}
		}

		task, err := buildTask(name, dto)
		if err != nil {
			return nil, zerr.With(err, "task", name)
		}

		if err := g.AddTask(task); err != nil {
			return nil, err
		}
	}

	if err := g.Validate(); err != nil {
		return nil, err
	}

	return g, nil
}

// FindConfiguration walks up from cwd and returns the path of the nearest props.yaml.
func FindConfiguration(cwd string) (string, error) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(domain.ErrConfigNotFound, "cwd", cwd)
}

func buildTask(name string, dto *TaskDTO) (*domain.Task, error) {
	inputs, err := buildInputs(dto.Inputs)
	if err != nil {
		return nil, err
	}

	outputs := make([]domain.DeclaredOutput, 0, len(dto.Outputs))
	for i := range dto.Outputs {
		output, err := buildOutput(&dto.Outputs[i])
		if err != nil {
			return nil, zerr.With(err, "output_index", i)
		}
		outputs = append(outputs, output)
	}

	return &domain.Task{
		Name:         name,
		Inputs:       inputs,
		Outputs:      outputs,
		Dependencies: slices.Compact(slices.Sorted(slices.Values(dto.DependsOn))),
		Keep:         dto.Keep,
	}, nil
}

func buildInputs(dtos []InputDTO) ([]domain.InputFileProperty, error) {
	inputs := make([]domain.InputFileProperty, 0, len(dtos))
	for i, dto := range dtos {
		name, err := propertyName(dto.Name)
		if err != nil {
			return nil, zerr.With(err, "input_index", i)
		}
		inputs = append(inputs, domain.NewInputFileProperty(name, cleanPaths(dto.Paths)...))
	}
	return inputs, nil
}

func buildOutput(dto *OutputDTO) (domain.DeclaredOutput, error) {
	name, err := propertyName(dto.Name)
	if err != nil {
		return domain.DeclaredOutput{}, err
	}

	outputType, err := domain.ParseOutputType(dto.Type)
	if err != nil {
		return domain.DeclaredOutput{}, err
	}

	hasEach := dto.Each.Kind != 0
	hasFiles := dto.Files != nil
	declared := 0
	for _, set := range []bool{dto.Path != "", hasEach, hasFiles} {
		if set {
			declared++
		}
	}
	if declared > 1 {
		return domain.DeclaredOutput{}, zerr.With(domain.ErrConflictingOutputPaths, "output", name)
	}

	switch {
	case hasEach:
		entries, err := decodeEach(&dto.Each)
		if err != nil {
			return domain.DeclaredOutput{}, zerr.With(err, "output", name)
		}
		return domain.DeclareComposite(domain.NewCompositeOutputProperty(name, outputType, entries...)), nil
	case hasFiles:
		return domain.DeclareGeneric(domain.NewOutputFilesProperty(name, outputType, cleanPaths(dto.Files)...)), nil
	default:
		return domain.DeclareCacheable(domain.NewOutputFileProperty(name, outputType, cleanPath(dto.Path))), nil
	}
}

// decodeEach turns a list into indexed entries and a map into keyed entries, both in
// declaration order.
func decodeEach(node *yaml.Node) ([]domain.CompositeEntry, error) {
	switch node.Kind {
	case yaml.SequenceNode:
		entries := make([]domain.CompositeEntry, 0, len(node.Content))
		for _, item := range node.Content {
			var path string
			if err := item.Decode(&path); err != nil {
				return nil, zerr.Wrap(err, domain.ErrInvalidCompositeOutput.Error())
			}
			if path == "" {
				return nil, emptyEntryError(item)
			}
			entries = append(entries, domain.CompositeEntry{Path: cleanPath(path)})
		}
		return entries, nil
	case yaml.MappingNode:
		entries := make([]domain.CompositeEntry, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			var key, path string
			if err := node.Content[i].Decode(&key); err != nil {
				return nil, zerr.Wrap(err, domain.ErrInvalidCompositeOutput.Error())
			}
			if err := node.Content[i+1].Decode(&path); err != nil {
				return nil, zerr.Wrap(err, domain.ErrInvalidCompositeOutput.Error())
			}
			if _, err := domain.CheckPropertyName(key); err != nil {
				return nil, zerr.With(zerr.Wrap(err, "invalid key in 'each'"), "line", node.Content[i].Line)
			}
			if path == "" {
				return nil, emptyEntryError(node.Content[i+1])
			}
			entries = append(entries, domain.CompositeEntry{Key: key, Path: cleanPath(path)})
		}
		return entries, nil
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidCompositeOutput, "invalid 'each'"), "line", node.Line)
	}
}

// emptyEntryError reports an 'each' element without a path.
func emptyEntryError(node *yaml.Node) error {
	err := zerr.Wrap(domain.ErrInvalidCompositeOutput, "empty path in 'each'")
	return zerr.With(err, "line", node.Line)
}

// propertyName returns the declared name, or "" for an anonymous property. A name that is
// present but empty is rejected.
func propertyName(name *string) (string, error) {
	if name == nil {
		return "", nil
	}
	checked, err := domain.CheckPropertyName(*name)
	if err != nil {
		return "", zerr.Wrap(err, "invalid property name")
	}
	return checked, nil
}

func cleanPath(p string) string {
	if p == "" {
		return ""
	}
	return filepath.ToSlash(filepath.Clean(p))
}

func cleanPaths(paths []string) []string {
	if len(paths) == 0 {
		return nil
	}
	cleaned := make([]string, len(paths))
	for i, p := range paths {
		cleaned[i] = cleanPath(p)
	}
	return cleaned
}

func resolveRoot(configPath, configuredRoot string) string {
	configDir := filepath.Dir(configPath)
	if configuredRoot == "" {
		return filepath.Clean(configDir)
	}
	if filepath.IsAbs(configuredRoot) {
		return filepath.Clean(configuredRoot)
	}
	return filepath.Clean(filepath.Join(configDir, configuredRoot))
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is discovered by FindConfiguration
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", configPath)
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.With(zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error()), "path", configPath)
	}

	return nil
}

// validateTaskName rejects empty names and names containing whitespace.
func validateTaskName(name string) error {
	if name == "" || strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return zerr.With(domain.ErrInvalidTaskName, "task_name", name)
	}
	return nil
}
