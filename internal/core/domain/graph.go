package domain

import (
	"iter"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// Graph holds the tasks of a project and their dependencies.
type Graph struct {
	root           string
	tasks          map[string]Task
	executionOrder []string
}

// NewGraph creates a new empty Graph.
func NewGraph() *Graph {
	return &Graph{
		tasks: make(map[string]Task),
	}
}

// SetRoot sets the project root directory that task paths are relative to.
func (g *Graph) SetRoot(root string) {
	g.root = root
}

// Root returns the project root directory.
func (g *Graph) Root() string {
	return g.root
}

// AddTask adds a task to the graph.
// It returns an error if a task with the same name already exists.
func (g *Graph) AddTask(t *Task) error {
	if _, exists := g.tasks[t.Name]; exists {
		return zerr.With(ErrTaskAlreadyExists, "task_name", t.Name)
	}
	g.tasks[t.Name] = *t
	return nil
}

// GetTask returns the task with the given name.
func (g *Graph) GetTask(name string) (Task, bool) {
	t, ok := g.tasks[name]
	return t, ok
}

// TaskNames returns all task names in ascending order.
func (g *Graph) TaskNames() []string {
	names := make([]string, 0, len(g.tasks))
	for name := range g.tasks {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Validate checks for missing dependencies and cycles using a depth-first topological sort.
// Tasks and dependencies are visited in name order so the resulting order is deterministic.
func (g *Graph) Validate() error {
	g.executionOrder = make([]string, 0, len(g.tasks))
	visited := make(map[string]int) // 0: unvisited, 1: visiting, 2: visited
	var path []string

	var visit func(u string) error
	visit = func(u string) error {
		visited[u] = 1
		path = append(path, u)

		task, exists := g.tasks[u]
		if !exists {
			return zerr.With(ErrMissingDependency, "dependency", u)
		}

		deps := slices.Clone(task.Dependencies)
		slices.Sort(deps)
		for _, dep := range deps {
			if visited[dep] == 1 {
				return g.buildCycleError(path, dep)
			}
			if visited[dep] == 0 {
				if err := visit(dep); err != nil {
					return err
				}
			}
		}

		visited[u] = 2
		path = path[:len(path)-1]
		g.executionOrder = append(g.executionOrder, u)
		return nil
	}

	for _, name := range g.TaskNames() {
		if visited[name] == 0 {
			if err := visit(name); err != nil {
				return err
			}
		}
	}

	return nil
}

// buildCycleError constructs an error with cycle path metadata.
func (g *Graph) buildCycleError(path []string, dep string) error {
	start := slices.Index(path, dep)
	cycle := append(slices.Clone(path[start:]), dep)
	return zerr.With(ErrCycleDetected, "cycle", strings.Join(cycle, " -> "))
}

// Walk returns an iterator that yields tasks in dependency order.
// It assumes Validate() has been called and returned nil.
func (g *Graph) Walk() iter.Seq[Task] {
	return func(yield func(Task) bool) {
		for _, name := range g.executionOrder {
			if !yield(g.tasks[name]) {
				return
			}
		}
	}
}

// Closure returns the named targets and their transitive dependencies in dependency order.
// No targets selects every task. It assumes Validate() has been called and returned nil.
func (g *Graph) Closure(targets []string) ([]Task, error) {
	if len(targets) == 0 {
		return slices.Collect(g.Walk()), nil
	}

	selected := make(map[string]bool)
	var mark func(name string)
	mark = func(name string) {
		if selected[name] {
			return
		}
		selected[name] = true
		for _, dep := range g.tasks[name].Dependencies {
			mark(dep)
		}
	}
	for _, target := range targets {
		if _, ok := g.tasks[target]; !ok {
			return nil, zerr.With(ErrTaskNotFound, "task_name", target)
		}
		mark(target)
	}

	tasks := make([]Task, 0, len(selected))
	for task := range g.Walk() {
		if selected[task.Name] {
			tasks = append(tasks, task)
		}
	}
	return tasks, nil
}
