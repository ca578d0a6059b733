package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ftahirops/xstatus/engine"
	"github.com/ftahirops/xstatus/format"
)

type tickMsg time.Time

type collectMsg engine.Result

// Model is the bubbletea model for the live preview.
type Model struct {
	ticker   engine.Ticker
	interval time.Duration
	opts     format.Options
	width    int

	res    *engine.Result
	cycles int

	// Auto-refresh control
	paused bool
}

// NewModel creates a preview that runs ticker every interval.
func NewModel(ticker engine.Ticker, interval time.Duration, opts format.Options) Model {
	return Model{
		ticker:   ticker,
		interval: interval,
		opts:     opts,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tick(m.interval), collectOnce(m.ticker))
}

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func collectOnce(ticker engine.Ticker) tea.Cmd {
	return func() tea.Msg {
		return collectMsg(ticker.Tick(context.Background()))
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "p", " ":
			m.paused = !m.paused
		case "r":
			return m, collectOnce(m.ticker)
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tickMsg:
		// keep ticking while paused so resuming needs no restart
		if m.paused {
			return m, tick(m.interval)
		}
		return m, tea.Batch(tick(m.interval), collectOnce(m.ticker))
	case collectMsg:
		res := engine.Result(msg)
		m.res = &res
		m.cycles++
	}
	return m, nil
}

func (m Model) View() string {
	var sb strings.Builder

	title := "xstatus"
	if m.paused {
		title += " " + warnStyle.Render("[paused]")
	}
	sb.WriteString(titleStyle.Render(title) + "\n\n")

	if m.res == nil {
		sb.WriteString(dimStyle.Render("collecting...") + "\n")
		return sb.String()
	}

	line := RenderLine(m.res.Snapshot, m.res.Snapshot.Timestamp, m.opts)
	box := panelStyle
	if m.width > 4 {
		box = box.MaxWidth(m.width)
	}
	sb.WriteString(box.Render(line) + "\n")
	sb.WriteString(dimStyle.Render("published: ") + valueStyle.Render(m.res.Line) + "\n\n")

	if len(m.res.Errors) == 0 {
		sb.WriteString(okStyle.Render("all collectors ok") + "\n")
	} else {
		for _, err := range m.res.Errors {
			sb.WriteString(critStyle.Render("✗ ") + err.Error() + "\n")
		}
	}

	sb.WriteString("\n" + helpStyle.Render(fmt.Sprintf("cycle %d · every %s · p pause · r refresh · q quit", m.cycles, m.interval)))
	return sb.String()
}
