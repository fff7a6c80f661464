package config

import "gopkg.in/yaml.v3"

// Propsfile represents the structure of the props.yaml configuration file.
type Propsfile struct {
	Version string              `yaml:"version"`
	Root    string              `yaml:"root"`
	Tasks   map[string]*TaskDTO `yaml:"tasks"`
}

// TaskDTO represents a task definition in the configuration.
type TaskDTO struct {
	DependsOn []string    `yaml:"dependsOn"`
	Inputs    []InputDTO  `yaml:"inputs"`
	Outputs   []OutputDTO `yaml:"outputs"`
	Keep      []string    `yaml:"keep"`
}

// InputDTO declares a set of input paths. A missing name makes the input anonymous.
type InputDTO struct {
	Name  *string  `yaml:"name"`
	Paths []string `yaml:"paths"`
}

// OutputDTO declares one output. At most one of Path, Each and Files may be set; none of them
// declares an output that is currently absent.
type OutputDTO struct {
	Name *string `yaml:"name"`
	Type string  `yaml:"type"`
	Path string  `yaml:"path"`
	// Each is a list (indexed entries) or a map (keyed entries) of paths.
	Each  yaml.Node `yaml:"each"`
	Files []string  `yaml:"files"`
}
