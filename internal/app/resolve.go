package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/gobwas/glob"
	"go.trai.ch/props/internal/core/domain"
	"go.trai.ch/props/internal/ui/output"
	"go.trai.ch/props/internal/ui/style"
	"go.trai.ch/zerr"
)

// ResolveOptions configuration for the Resolve method.
type ResolveOptions struct {
	// Filter is a glob over property names, with '.' separating segments.
	Filter string
	// JSON prints the report as JSON instead of text.
	JSON bool
	// Expand lists the files each input denotes.
	Expand bool
	// Watch re-resolves whenever a file below the project root changes.
	Watch bool
}

// PropertyReport is one input or output of a task in the resolve report.
type PropertyReport struct {
	Name  string   `json:"name"`
	Type  string   `json:"type,omitzero"`
	Paths []string `json:"paths,omitzero"`
	Files []string `json:"files,omitzero"`
}

// TaskReport is the resolve report of one task.
type TaskReport struct {
	Task      string           `json:"task"`
	Cacheable bool             `json:"cacheable"`
	Reason    string           `json:"reason,omitzero"`
	Inputs    []PropertyReport `json:"inputs,omitzero"`
	Outputs   []PropertyReport `json:"outputs,omitzero"`
}

// Resolve prints the resolved file properties of the targets and their dependencies.
func (a *App) Resolve(ctx context.Context, targets []string, opts ResolveOptions) error {
	filter, err := compileFilter(opts.Filter)
	if err != nil {
		return err
	}

	run := func(ctx context.Context) error {
		graph, props, err := a.loadAndResolve(ctx, targets)
		if err != nil {
			return err
		}
		reports, err := a.buildReports(graph.Root(), props, filter, opts.Expand)
		if err != nil {
			return err
		}
		if opts.JSON {
			return writeJSON(a.stdout, reports)
		}
		return writeText(a.stdout, reports)
	}

	if opts.Watch {
		return a.watch(ctx, run)
	}
	return run(ctx)
}

func compileFilter(pattern string) (glob.Glob, error) {
	if pattern == "" {
		return nil, nil
	}
	g, err := glob.Compile(pattern, '.')
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrInvalidFilter.Error()), "filter", pattern)
	}
	return g, nil
}

func (a *App) buildReports(
	root string,
	props []domain.TaskProperties,
	filter glob.Glob,
	expand bool,
) ([]TaskReport, error) {
	matches := func(name string) bool { return filter == nil || filter.Match(name) }

	reports := make([]TaskReport, 0, len(props))
	for i := range props {
		p := &props[i]
		report := TaskReport{
			Task:      p.Task.Name,
			Cacheable: p.Cacheable,
			Reason:    p.NotCacheableReason,
		}

		for input := range p.Inputs.All() {
			if !matches(input.PropertyName()) {
				continue
			}
			pr := PropertyReport{Name: input.PropertyName(), Paths: input.Paths()}
			if expand {
				files, err := a.inputs.ResolveInputs(input.Paths(), root)
				if err != nil {
					err = zerr.With(zerr.Wrap(err, "failed to expand input"), "task", p.Task.Name)
					return nil, zerr.With(err, "input", input.PropertyName())
				}
				pr.Files = files
			}
			report.Inputs = append(report.Inputs, pr)
		}

		if p.Cacheable {
			for out := range p.Resolved.All() {
				if !matches(out.Name) {
					continue
				}
				report.Outputs = append(report.Outputs, PropertyReport{
					Name:  out.Name,
					Type:  out.OutputType.String(),
					Paths: []string{out.OutputFile},
				})
			}
		} else {
			for out := range p.Outputs.All() {
				if !matches(out.PropertyName()) {
					continue
				}
				report.Outputs = append(report.Outputs, PropertyReport{
					Name:  out.PropertyName(),
					Type:  out.OutputType().String(),
					Paths: out.Paths(),
				})
			}
		}

		if filter != nil && len(report.Inputs) == 0 && len(report.Outputs) == 0 {
			continue
		}
		reports = append(reports, report)
	}
	return reports, nil
}

func writeJSON(w io.Writer, reports []TaskReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(reports); err != nil {
		return zerr.Wrap(err, "failed to encode report")
	}
	return nil
}

func writeText(w io.Writer, reports []TaskReport) error {
	s := style.New(output.Renderer(w))

	var b strings.Builder
	for i, report := range reports {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(s.Heading.Render(report.Task) + "\n")

		nameWidth, typeWidth := 0, 0
		for _, pr := range report.Inputs {
			nameWidth = max(nameWidth, len(pr.Name))
		}
		for _, pr := range report.Outputs {
			nameWidth = max(nameWidth, len(pr.Name))
			typeWidth = max(typeWidth, len(pr.Type))
		}

		for _, pr := range report.Inputs {
			fmt.Fprintf(&b, "  %s  %-*s  %s\n",
				s.Muted.Render("input "), nameWidth, pr.Name, strings.Join(pr.Paths, " "))
			for _, file := range pr.Files {
				fmt.Fprintf(&b, "  %s  %s\n", strings.Repeat(" ", 6+2+nameWidth), s.Muted.Render(file))
			}
		}
		for _, pr := range report.Outputs {
			fmt.Fprintf(&b, "  %s  %-*s  %-*s  %s\n",
				s.Muted.Render("output"), nameWidth, pr.Name, typeWidth, pr.Type, strings.Join(pr.Paths, " "))
		}

		if report.Cacheable {
			b.WriteString("  " + s.Success.Render(style.Check+" cacheable") + "\n")
		} else {
			b.WriteString("  " + s.Warning.Render(style.Warning+" not cacheable: "+report.Reason) + "\n")
		}
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return zerr.Wrap(err, "failed to write report")
	}
	return nil
}
