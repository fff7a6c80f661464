// Package style provides shared colors and icons for terminal output.
package style

import (
	"log/slog"

	"github.com/charmbracelet/lipgloss"
)

// Brand Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Tilde   = "~"
	Dot     = "●"
	Circle  = "○"
)

// Styles are the text styles of the property report, bound to one renderer.
type Styles struct {
	Heading lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Failure lipgloss.Style
	Warning lipgloss.Style
}

// New returns the report styles for r.
func New(r *lipgloss.Renderer) Styles {
	return Styles{
		Heading: r.NewStyle().Bold(true).Foreground(Iris),
		Muted:   r.NewStyle().Foreground(Slate),
		Success: r.NewStyle().Foreground(Green),
		Failure: r.NewStyle().Foreground(Red),
		Warning: r.NewStyle().Foreground(Yellow),
	}
}

// Record returns the icon and style of a log record at level. Records below warn carry no icon.
func (s Styles) Record(level slog.Level) (string, lipgloss.Style) {
	switch {
	case level >= slog.LevelError:
		return Cross, s.Failure
	case level >= slog.LevelWarn:
		return Warning, s.Warning
	default:
		return "", s.Muted
	}
}
