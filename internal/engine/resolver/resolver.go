// Package resolver resolves the declared file properties of tasks in a graph.
package resolver

import (
	"context"
	"fmt"

	"go.trai.ch/props/internal/core/domain"
	"go.trai.ch/props/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Span attribute keys recorded per task.
const (
	AttrTask      = "props.task"
	AttrInputs    = "props.inputs"
	AttrOutputs   = "props.outputs"
	AttrCacheable = "props.cacheable"
)

// Resolver resolves tasks concurrently, one fresh set of visitors per task.
type Resolver struct {
	tracer ports.Tracer
}

// New creates a Resolver that records a span per resolved task.
func New(tracer ports.Tracer) *Resolver {
	return &Resolver{tracer: tracer}
}

// Resolve resolves the targets and their transitive dependencies, or every task when no target
// is given. Results follow the graph walk order. The first failing task cancels the remaining
// work and its error is returned with the task name attached.
func (r *Resolver) Resolve(
	ctx context.Context,
	graph *domain.Graph,
	targets []string,
	parallelism int,
) ([]domain.TaskProperties, error) {
	tasks, err := graph.Closure(targets)
	if err != nil {
		return nil, err
	}

	names := make([]string, len(tasks))
	for i, task := range tasks {
		names[i] = task.Name
	}

	ctx, span := r.tracer.Start(ctx, "resolve", ports.WithAttribute(ports.AttrInternal, true))
	defer span.End()
	r.tracer.EmitPlan(ctx, names)

	results := make([]domain.TaskProperties, len(tasks))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(parallelism, 1))

	for i, task := range tasks {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			props, err := r.resolveTask(gctx, task)
			if err != nil {
				return zerr.With(zerr.Wrap(err, "failed to resolve task"), "task", task.Name)
			}
			results[i] = props
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		span.RecordError(err)
		return nil, err
	}
	return results, nil
}

func (r *Resolver) resolveTask(ctx context.Context, task domain.Task) (domain.TaskProperties, error) {
	_, span := r.tracer.Start(ctx, "resolve "+task.Name, ports.WithAttribute(AttrTask, task.Name))
	defer span.End()

	props, err := ResolveTask(task)
	if err != nil {
		span.RecordError(err)
		return domain.TaskProperties{}, err
	}

	span.SetAttribute(AttrInputs, props.Inputs.Len())
	span.SetAttribute(AttrOutputs, props.Outputs.Len())
	span.SetAttribute(AttrCacheable, props.Cacheable)
	return props, nil
}

// ResolveTask names and collects the inputs and outputs of a single task. Outputs that all
// resolve to one file each are converted into resolved specs; otherwise the task is reported
// as not cacheable together with the reason.
func ResolveTask(task domain.Task) (domain.TaskProperties, error) {
	inputVisitor := domain.NewInputFilesVisitor()
	for _, input := range domain.EnsurePropertiesHaveNames(task.Inputs) {
		inputVisitor.AcceptInputFileProperty(input)
	}
	inputs, err := inputVisitor.FileProperties()
	if err != nil {
		return domain.TaskProperties{}, err
	}

	outputVisitor := domain.NewOutputFilesVisitor()
	for _, output := range domain.EnsurePropertiesHaveNames(task.Outputs) {
		domain.ResolveDeclaredOutputFileProperty(outputVisitor, output)
	}
	outputs, err := outputVisitor.FileProperties()
	if err != nil {
		return domain.TaskProperties{}, err
	}

	props := domain.TaskProperties{
		Task:               task,
		Inputs:             inputs,
		Outputs:            outputs,
		HasDeclaredOutputs: outputVisitor.HasDeclaredOutputs(),
	}

	if !props.HasDeclaredOutputs {
		props.NotCacheableReason = "no outputs declared"
		return props, nil
	}
	if name, ok := domain.IsCacheable(outputs); !ok {
		props.NotCacheableReason = fmt.Sprintf("output property '%s' does not resolve to a single file", name)
		return props, nil
	}

	props.Cacheable = true
	props.Resolved = domain.ResolveFileProperties(outputs)
	return props, nil
}
