package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"go.trai.ch/props/internal/ui/output"
	"go.trai.ch/props/internal/ui/style"
)

// PrettyHandler is a slog.Handler that writes one styled block per record. Attributes holding
// an error are expanded into their cause chain below the message instead of key=value pairs.
type PrettyHandler struct {
	w      io.Writer
	styles style.Styles
	level  slog.Leveler
	attrs  []slog.Attr
	group  string
}

// NewPrettyHandler creates a new PrettyHandler writing to w, or to stderr when w is nil.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{
		w:      w,
		styles: style.New(output.Renderer(w)),
		level:  level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and writes the record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	var (
		fields []string
		errs   []error
	)
	collect := func(attr slog.Attr) {
		attr.Value = attr.Value.Resolve()
		if err, ok := attr.Value.Any().(error); ok && attr.Value.Kind() == slog.KindAny {
			errs = append(errs, err)
			return
		}
		fields = append(fields, formatAttr(h.group, attr))
	}
	for _, attr := range h.attrs {
		collect(attr)
	}
	r.Attrs(func(attr slog.Attr) bool {
		collect(attr)
		return true
	})

	var blocks []string
	if head := strings.TrimSpace(strings.Join(append([]string{r.Message}, fields...), " ")); head != "" {
		blocks = append(blocks, head)
	}
	for _, err := range errs {
		blocks = append(blocks, formatErrorEntries(collectErrorEntries(err)))
	}

	icon, st := h.styles.Record(r.Level)
	text := strings.Join(blocks, "\n")
	if icon != "" {
		text = icon + " " + text
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = st.Render(line)
		}
	}

	_, err := io.WriteString(h.w, strings.Join(lines, "\n")+"\n")
	return err
}

// WithAttrs returns a new Handler with the given attributes appended.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(append(make([]slog.Attr, 0, len(h.attrs)+len(attrs)), h.attrs...), attrs...)
	return &clone
}

// WithGroup returns a new Handler with the given group name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	clone := *h
	clone.group = name
	return &clone
}

func formatAttr(group string, attr slog.Attr) string {
	key := attr.Key
	if group != "" {
		key = group + "." + key
	}
	return key + "=" + attr.Value.String()
}
