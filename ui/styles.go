package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/ftahirops/xstatus/format"
	"github.com/ftahirops/xstatus/model"
)

var (
	// Colors
	colorRed    = lipgloss.Color("#FF5555")
	colorYellow = lipgloss.Color("#F1FA8C")
	colorGreen  = lipgloss.Color("#50FA7B")
	colorCyan   = lipgloss.Color("#8BE9FD")
	colorWhite  = lipgloss.Color("#F8F8F2")
	colorGray   = lipgloss.Color("#6272A4")

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorGray).
			Padding(0, 1)

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	valueStyle  = lipgloss.NewStyle().Foreground(colorWhite)
	warnStyle   = lipgloss.NewStyle().Foreground(colorYellow).Bold(true)
	critStyle   = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	okStyle     = lipgloss.NewStyle().Foreground(colorGreen)
	chargeStyle = lipgloss.NewStyle().Foreground(colorCyan)
	helpStyle   = lipgloss.NewStyle().Foreground(colorGray)
	dimStyle    = lipgloss.NewStyle().Foreground(colorGray)
)

// Thresholds
const (
	batteryWarn = 30.0
	batteryCrit = 15.0
	memWarn     = 70.0
	memCrit     = 85.0
)

// batteryColor: lower is worse.
func batteryColor(b *model.Battery) lipgloss.Style {
	switch {
	case b.Charging:
		return chargeStyle
	case b.Percentage < batteryCrit:
		return critStyle
	case b.Percentage < batteryWarn:
		return warnStyle
	default:
		return okStyle
	}
}

func memColor(m *model.Memory) lipgloss.Style {
	if m.Total == 0 {
		return valueStyle
	}
	pct := float64(m.Used) / float64(m.Total) * 100
	switch {
	case pct >= memCrit:
		return critStyle
	case pct >= memWarn:
		return warnStyle
	default:
		return okStyle
	}
}

// fieldStyle picks the style of one rendered field.
func fieldStyle(f format.Field, snap *model.Snapshot) lipgloss.Style {
	if !f.OK {
		return critStyle
	}
	switch f.Label {
	case "V":
		if snap.Volume.Muted {
			return dimStyle
		}
	case "B":
		return batteryColor(snap.Battery)
	case "M":
		return memColor(snap.Memory)
	}
	return valueStyle
}

// RenderLine renders the same fields as format.Line with terminal colors.
func RenderLine(snap *model.Snapshot, now time.Time, opts format.Options) string {
	fields := format.Fields(snap, now, opts)
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = fieldStyle(f, snap).Render(f.Text)
	}
	return strings.Join(parts, dimStyle.Render(opts.Separator))
}
