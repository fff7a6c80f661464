package app

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"go.trai.ch/props/internal/core/domain"
	"go.trai.ch/props/internal/core/ports"
	"go.trai.ch/props/internal/ui/output"
	"go.trai.ch/props/internal/ui/style"
	"go.trai.ch/zerr"
)

// StatusReport is the up-to-date state of one task.
type StatusReport struct {
	Task   string
	Status domain.TaskStatus
	Reason string
}

// Status compares the resolved outputs of the targets with their recorded snapshots and
// prints whether each task is up to date.
func (a *App) Status(ctx context.Context, targets []string) error {
	graph, props, err := a.loadAndResolve(ctx, targets)
	if err != nil {
		return err
	}

	store, err := a.stores.Open(graph.Root())
	if err != nil {
		return err
	}

	reports := make([]StatusReport, 0, len(props))
	for i := range props {
		report, err := a.taskStatus(ctx, graph.Root(), store, &props[i])
		if err != nil {
			return zerr.With(err, "task", props[i].Task.Name)
		}
		reports = append(reports, report)
	}

	return writeStatus(a.stdout, reports)
}

func (a *App) taskStatus(
	ctx context.Context,
	root string,
	store ports.SnapshotStore,
	props *domain.TaskProperties,
) (StatusReport, error) {
	name := props.Task.Name
	_, span := a.tracer.Start(ctx, "status "+name)
	defer span.End()

	report := StatusReport{Task: name}
	if !props.Cacheable {
		report.Status = domain.TaskStatusNotCacheable
		report.Reason = props.NotCacheableReason
		return report, nil
	}

	snapshot, err := store.Get(name)
	if err != nil {
		span.RecordError(err)
		return report, err
	}
	if snapshot == nil {
		report.Status = domain.TaskStatusNew
		return report, nil
	}

	if a.hasher.ComputeFingerprint(props) != snapshot.Fingerprint {
		report.Status = domain.TaskStatusChanged
		report.Reason = changeReason(snapshot.Outputs, props.Resolved)
		return report, nil
	}

	ok, err := a.verifier.VerifyOutputs(root, props.Resolved.Slice())
	if err != nil {
		span.RecordError(err)
		return report, err
	}
	if !ok {
		report.Status = domain.TaskStatusChanged
		report.Reason = "outputs missing"
		return report, nil
	}

	span.SetAttribute(ports.AttrCached, true)
	report.Status = domain.TaskStatusUpToDate
	return report, nil
}

// changeReason names the first output that differs from the snapshot, in name order. When the
// outputs match, the inputs must have changed.
func changeReason(
	previous []domain.ResolvedOutputFilePropertySpec,
	current domain.PropertySet[domain.ResolvedOutputFilePropertySpec],
) string {
	recorded := make(map[string]bool, len(previous))
	for _, prev := range slices.SortedFunc(slices.Values(previous), byName) {
		recorded[prev.Name] = true
		cur, ok := current.Get(prev.Name)
		switch {
		case !ok:
			return fmt.Sprintf("output '%s' removed", prev.Name)
		case cur != prev:
			return fmt.Sprintf("output '%s' changed", prev.Name)
		}
	}
	for cur := range current.All() {
		if !recorded[cur.Name] {
			return fmt.Sprintf("output '%s' added", cur.Name)
		}
	}
	return "declared properties changed"
}

func byName(a, b domain.ResolvedOutputFilePropertySpec) int {
	return strings.Compare(a.Name, b.Name)
}

func writeStatus(w io.Writer, reports []StatusReport) error {
	s := style.New(output.Renderer(w))

	width := 0
	for _, r := range reports {
		width = max(width, len(r.Task))
	}

	var b strings.Builder
	for _, r := range reports {
		var icon string
		switch r.Status {
		case domain.TaskStatusUpToDate:
			icon = s.Success.Render(style.Check)
		case domain.TaskStatusChanged:
			icon = s.Warning.Render(style.Tilde)
		case domain.TaskStatusNew:
			icon = s.Heading.Render(style.Dot)
		default:
			icon = s.Muted.Render(style.Circle)
		}

		line := fmt.Sprintf("%s %-*s  %s", icon, width, r.Task, r.Status)
		if r.Reason != "" {
			line += s.Muted.Render(" (" + r.Reason + ")")
		}
		b.WriteString(line + "\n")
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return zerr.Wrap(err, "failed to write status")
	}
	return nil
}
