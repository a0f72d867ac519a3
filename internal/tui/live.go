// Package tui provides a terminal live view of the simulation for running
// without a graphics context: asciigraph traces of the state components and
// a stats panel, updated on a fixed tick.
package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/lorenzvis/internal/app"
	"github.com/san-kum/lorenzvis/internal/lorenz"
)

const historyCapacity = 400

var (
	headerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	statsStyle       = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(0, 2)
	labelStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	valueStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	activeParamStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	graphStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model is the bubbletea model: it owns the solver and a shared state
// record, exactly like the GUI frame loop but rendered as text.
type Model struct {
	solver    *lorenz.Solver
	state     *app.State
	frameRate int
	t         float64

	xHistory []float64
	zHistory []float64

	paramKeys []string
	selected  int
}

// NewModel builds the live view around an existing solver and state record.
func NewModel(solver *lorenz.Solver, state *app.State, frameRate int) Model {
	if frameRate <= 0 {
		frameRate = 30
	}
	return Model{
		solver:    solver,
		state:     state,
		frameRate: frameRate,
		xHistory:  make([]float64, 0, historyCapacity),
		zHistory:  make([]float64, 0, historyCapacity),
		paramKeys: []string{"sigma", "rho", "beta", "dt"},
	}
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.frameRate), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.state.Running = !m.state.Running
		case "r":
			m.solver.Reset()
			m.t = 0
			m.xHistory = m.xHistory[:0]
			m.zHistory = m.zHistory[:0]
		case "tab":
			m.selected = (m.selected + 1) % len(m.paramKeys)
		case "up", "k":
			m.adjustParam(1.05)
		case "down", "j":
			m.adjustParam(0.95)
		}
	case TickMsg:
		if m.state.Running {
			m.step()
		}
		return m, m.tick()
	}
	return m, nil
}

// step mirrors one GUI frame: advance, then bound the trajectory.
func (m *Model) step() {
	m.solver.SetParameters(m.state.Params.Sigma, m.state.Params.Rho, m.state.Params.Beta)
	m.solver.Advance(m.state.Dt, m.state.StepsPerFrame)
	m.solver.ClearOldest(m.state.MaxPoints)
	m.t += m.state.Dt * float64(m.state.StepsPerFrame)

	s := m.solver.State()
	m.xHistory = append(m.xHistory, s[0])
	m.zHistory = append(m.zHistory, s[2])
	if len(m.xHistory) > historyCapacity {
		m.xHistory = m.xHistory[1:]
		m.zHistory = m.zHistory[1:]
	}
}

func (m *Model) adjustParam(factor float64) {
	switch m.paramKeys[m.selected] {
	case "sigma":
		m.state.Params.Sigma *= factor
	case "rho":
		m.state.Params.Rho *= factor
	case "beta":
		m.state.Params.Beta *= factor
	case "dt":
		m.state.Dt *= factor
	}
}

func (m Model) View() string {
	s := m.solver.State()

	header := headerStyle.Render("lorenzvis live")

	status := "PAUSED"
	if m.state.Running {
		status = "RUNNING"
	}

	rows := []string{
		statRow("status", status),
		statRow("t", fmt.Sprintf("%.2f", m.t)),
		statRow("x", fmt.Sprintf("%+.4f", s[0])),
		statRow("y", fmt.Sprintf("%+.4f", s[1])),
		statRow("z", fmt.Sprintf("%+.4f", s[2])),
		statRow("points", fmt.Sprintf("%d", len(m.solver.Trajectory()))),
		"",
	}
	params := []struct {
		key string
		val float64
	}{
		{"sigma", m.state.Params.Sigma},
		{"rho", m.state.Params.Rho},
		{"beta", m.state.Params.Beta},
		{"dt", m.state.Dt},
	}
	for i, p := range params {
		line := fmt.Sprintf("%s%s", labelStyle.Render(p.key), valueStyle.Render(fmt.Sprintf("%.4f", p.val)))
		if i == m.selected {
			line = activeParamStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		rows = append(rows, line)
	}
	stats := statsStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))

	graphs := graphStyle.Render(m.renderGraphs())

	help := helpStyle.Render("space pause · r reset · tab select param · ↑/↓ adjust · q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		lipgloss.JoinHorizontal(lipgloss.Top, graphs, stats),
		help,
	)
}

func (m Model) renderGraphs() string {
	if len(m.xHistory) < 2 {
		return "collecting samples..."
	}
	x := asciigraph.Plot(m.xHistory,
		asciigraph.Height(8), asciigraph.Width(60), asciigraph.Caption("x(t)"))
	z := asciigraph.Plot(m.zHistory,
		asciigraph.Height(8), asciigraph.Width(60), asciigraph.Caption("z(t)"))
	return lipgloss.JoinVertical(lipgloss.Left, x, "", z)
}

func statRow(label, value string) string {
	return labelStyle.Render(label) + valueStyle.Render(value)
}

// Run starts the live view and blocks until quit.
func Run(solver *lorenz.Solver, state *app.State, frameRate int) error {
	p := tea.NewProgram(NewModel(solver, state, frameRate))
	_, err := p.Run()
	return err
}
