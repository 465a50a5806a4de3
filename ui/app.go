package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ElizabethCF01/system-monitor-cli/engine"
)

type tickMsg time.Time

// Model is the bubbletea model. It owns no metrics state of its own:
// every tick it reads the refresher's current state and re-renders.
type Model struct {
	refresher *engine.Refresher
	interval  time.Duration
	barWidth  int
	width     int
	height    int
	state     engine.RefreshState
}

// NewModel creates a new TUI model around a running refresher.
func NewModel(r *engine.Refresher, interval time.Duration, barWidth int) Model {
	return Model{
		refresher: r,
		interval:  interval,
		barWidth:  barWidth,
		width:     100,
		height:    40,
		state:     r.State(),
	}
}

func (m Model) Init() tea.Cmd {
	return tick(m.interval)
}

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "Q", "ctrl+c":
			m.refresher.Stop()
			return m, tea.Quit
		}
	case tickMsg:
		m.state = m.refresher.State()
		return m, tick(m.interval)
	}
	return m, nil
}

func (m Model) View() string {
	var body string
	switch m.state.Phase {
	case engine.PhaseReady:
		body = RenderDashboard(m.state.Snapshot, m.width, m.barWidth)
	case engine.PhaseFailed:
		body = RenderError(m.state.Err)
	default:
		body = RenderPending()
	}
	return body + "\n\n" + helpStyle.Render("q: quit")
}
