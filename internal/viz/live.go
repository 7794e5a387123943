package viz

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/springlab/internal/analytic"
	"github.com/san-kum/springlab/internal/dynamo"
	"github.com/san-kum/springlab/internal/spring"
)

const (
	canvasWidth     = 56
	canvasHeight    = 16
	historyCapacity = 600
	graphWidth      = 70
	graphHeight     = 8
)

var (
	headerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	canvasStyle      = lipgloss.NewStyle().Padding(0, 2)
	statsStyle       = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(0, 2).Width(40)
	labelStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	activeParamStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	graphStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model drives the live spring view: fixed-dt integration decoupled
// from the frame rate, with the closed-form trajectory overlaid on the
// numeric one.
type Model struct {
	sys       dynamo.System
	integ     dynamo.Integrator
	state     dynamo.State
	initState dynamo.State
	sol       analytic.Solution
	t         float64
	dt        float64
	fps       int
	running   bool

	numeric  []float64
	closed   []float64
	canvas   *Canvas
	params   map[string]float64
	paramKey []string
	selected int
}

func NewModel(sys dynamo.System, integ dynamo.Integrator, initState []float64, dt float64, fps int) Model {
	params := make(map[string]float64)
	if cfg, ok := sys.(dynamo.Configurable); ok {
		for k, v := range cfg.GetParams() {
			params[k] = v
		}
	}
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	m := Model{
		sys:       sys,
		integ:     integ,
		state:     dynamo.State(initState).Clone(),
		initState: dynamo.State(initState).Clone(),
		t:         0,
		dt:        dt,
		fps:       fps,
		running:   true,
		numeric:   make([]float64, 0, historyCapacity),
		closed:    make([]float64, 0, historyCapacity),
		canvas:    NewCanvas(canvasWidth, canvasHeight),
		params:    params,
		paramKey:  keys,
	}
	m.resolve()
	return m
}

func (m *Model) springParams() (spring.Params, bool) {
	switch s := m.sys.(type) {
	case *spring.OneDimensional:
		return s.Params(), true
	case *spring.Vector:
		return s.Params(), true
	}
	return spring.Params{}, false
}

// resolve re-derives the closed-form descriptor from the current state.
func (m *Model) resolve() {
	if p, ok := m.springParams(); ok {
		m.sol = analytic.Solve(p, m.state)
	}
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		if m.running {
			m.advanceFrame()
		}
		return m, m.tick()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ", "space":
			m.running = !m.running
		case "r":
			m.state = m.initState.Clone()
			m.t = 0
			m.numeric = m.numeric[:0]
			m.closed = m.closed[:0]
			m.resolve()
		case "left", "h":
			if len(m.paramKey) > 0 {
				m.selected = (m.selected + len(m.paramKey) - 1) % len(m.paramKey)
			}
		case "right", "l":
			if len(m.paramKey) > 0 {
				m.selected = (m.selected + 1) % len(m.paramKey)
			}
		case "+", "=":
			m.nudgeParam(1.1)
		case "-", "_":
			m.nudgeParam(1 / 1.1)
		}
	}
	return m, nil
}

func (m *Model) advanceFrame() {
	steps := int(math.Round(1 / (m.dt * float64(m.fps))))
	if steps < 1 {
		steps = 1
	}
	for i := 0; i < steps; i++ {
		m.state = m.integ.Step(m.sys, m.state, m.t, m.dt)
		m.t += m.dt
	}

	m.numeric = append(m.numeric, m.displacement())
	m.closed = append(m.closed, m.sol.Evaluate(m.t))
	if len(m.numeric) > historyCapacity {
		m.numeric = m.numeric[1:]
		m.closed = m.closed[1:]
	}
}

// displacement is the plotted observable: x in 1D, radius in planar.
func (m *Model) displacement() float64 {
	if len(m.state) >= 4 {
		return math.Hypot(m.state[0], m.state[1])
	}
	return m.state[0]
}

func (m *Model) nudgeParam(factor float64) {
	cfg, ok := m.sys.(dynamo.Configurable)
	if !ok || len(m.paramKey) == 0 {
		return
	}
	key := m.paramKey[m.selected]
	v := m.params[key] * factor
	if v == 0 {
		v = 0.01
	}
	if err := cfg.SetParam(key, v); err != nil {
		return
	}
	m.params[key] = v
	// The closed form is only valid for the parameters it was derived
	// from; restart it from the current state.
	m.numeric = m.numeric[:0]
	m.closed = m.closed[:0]
	m.resolve()
}

func (m Model) View() string {
	m.drawSpring()

	var stats strings.Builder
	row := func(label, value string) {
		stats.WriteString(labelStyle.Render(label) + valueStyle.Render(value) + "\n")
	}
	row("t", fmt.Sprintf("%.2f s", m.t))
	row("x", fmt.Sprintf("%+.4f", m.displacement()))
	if len(m.state) >= 4 {
		row("v", fmt.Sprintf("%+.4f", math.Hypot(m.state[2], m.state[3])))
	} else {
		row("v", fmt.Sprintf("%+.4f", m.state[1]))
	}
	if h, ok := m.sys.(dynamo.Hamiltonian); ok {
		row("energy", fmt.Sprintf("%.4f", h.Energy(m.state)))
	}
	row("regime", m.sol.Regime.String())
	row("omega_n", fmt.Sprintf("%.4f", m.sol.OmegaN))
	row("zeta", fmt.Sprintf("%.4f", m.sol.Zeta))

	if len(m.paramKey) > 0 {
		stats.WriteString("\n")
		for i, k := range m.paramKey {
			line := fmt.Sprintf("%s = %.3f", k, m.params[k])
			if i == m.selected {
				stats.WriteString(activeParamStyle.Render("> "+line) + "\n")
			} else {
				stats.WriteString(valueStyle.Render("  "+line) + "\n")
			}
		}
	}

	status := "running"
	if !m.running {
		status = "paused"
	}

	top := lipgloss.JoinHorizontal(lipgloss.Top,
		canvasStyle.Render(m.canvas.String()),
		statsStyle.Render(stats.String()),
	)

	graph := ""
	if len(m.numeric) >= 2 {
		graph = asciigraph.PlotMany(
			[][]float64{m.numeric, m.closed},
			asciigraph.Height(graphHeight),
			asciigraph.Width(graphWidth),
			asciigraph.SeriesColors(asciigraph.Green, asciigraph.Red),
			asciigraph.Caption("numeric (green) vs analytic (red)"),
		)
	}

	return headerStyle.Render(fmt.Sprintf("springlab live [%s]", status)) + "\n" +
		top + "\n" +
		graphStyle.Render(graph) + "\n" +
		helpStyle.Render("space pause  r reset  ←/→ select param  +/- adjust  q quit")
}

func (m Model) drawSpring() {
	m.canvas.Clear()
	subW := canvasWidth * 2
	subH := canvasHeight * 4

	if len(m.state) >= 4 {
		// Planar: anchor at top center, +y drawn downward (gravity).
		p, _ := m.springParams()
		scale := float64(subH) / (3 * math.Max(p.NaturalLength, 0.5))
		ax, ay := subW/2, 2
		bx := ax + int(m.state[0]*scale)
		by := ay + int(m.state[1]*scale)
		m.canvas.DrawCoil(ax, ay, bx, by, 8, 3)
		m.canvas.DrawCircle(bx, by, 3)
		return
	}

	// Scalar: wall at left, displacement about the horizontal midpoint.
	mid := subW / 2
	span := float64(subW) / 4
	bx := mid + int(m.state[0]*span)
	cy := subH / 2
	m.canvas.DrawLine(2, cy-6, 2, cy+6)
	m.canvas.DrawCoil(2, cy, bx, cy, 10, 4)
	m.canvas.DrawCircle(bx, cy, 3)
}

// RunLive starts the live terminal view and blocks until it exits.
func RunLive(sys dynamo.System, integ dynamo.Integrator, initState []float64, dt float64, fps int) error {
	p := tea.NewProgram(NewModel(sys, integ, initState, dt, fps), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
