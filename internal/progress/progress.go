// Package progress renders a live status board for running simulations.
// The board shows one line per strategy with a spinner while it runs and a
// check mark once it finishes.
package progress

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

type strategyState int

const (
	statePending strategyState = iota
	stateRunning
	stateDone
)

type startedMsg struct{ name string }
type finishedMsg struct{ name string }
type doneMsg struct{}

// styles for the status board
type styles struct {
	Header  lipgloss.Style
	Pending lipgloss.Style
	Running lipgloss.Style
	Done    lipgloss.Style
	Check   lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		Header:  lipgloss.NewStyle().Bold(true),
		Pending: lipgloss.NewStyle().Foreground(lipgloss.Color("#626262")),
		Running: lipgloss.NewStyle(),
		Done:    lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")),
		Check:   lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true),
	}
}

type model struct {
	order   []string
	states  map[string]strategyState
	spinner spinner.Model
	styles  styles
	done    bool
}

func newModel(strategies []string) model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	states := make(map[string]strategyState, len(strategies))
	for _, name := range strategies {
		states[name] = statePending
	}
	return model{
		order:   strategies,
		states:  states,
		spinner: sp,
		styles:  defaultStyles(),
	}
}

func (m model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case startedMsg:
		m.states[msg.name] = stateRunning
		return m, nil
	case finishedMsg:
		m.states[msg.name] = stateDone
		return m, nil
	case doneMsg:
		m.done = true
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.done = true
			return m, tea.Quit
		}
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Header.Render("Running strategies"))
	b.WriteString("\n")
	for _, name := range m.order {
		switch m.states[name] {
		case stateDone:
			fmt.Fprintf(&b, "  %s %s\n", m.styles.Check.Render("✓"), m.styles.Done.Render(name))
		case stateRunning:
			fmt.Fprintf(&b, "  %s %s\n", m.spinner.View(), m.styles.Running.Render(name))
		default:
			fmt.Fprintf(&b, "    %s\n", m.styles.Pending.Render(name))
		}
	}
	return b.String()
}

// Board is a live terminal status board. It satisfies the simulator's
// Reporter interface; notifications may arrive from any goroutine.
type Board struct {
	program *tea.Program
}

// NewBoard creates a board for the given strategies
func NewBoard(strategies []string) *Board {
	return &Board{
		program: tea.NewProgram(newModel(strategies)),
	}
}

// Run blocks rendering the board until Done is called
func (b *Board) Run() error {
	_, err := b.program.Run()
	return err
}

// StrategyStarted marks a strategy as running
func (b *Board) StrategyStarted(name string) {
	b.program.Send(startedMsg{name: name})
}

// StrategyFinished marks a strategy as complete
func (b *Board) StrategyFinished(name string) {
	b.program.Send(finishedMsg{name: name})
}

// Done stops the board
func (b *Board) Done() {
	b.program.Send(doneMsg{})
}

// LogReporter is the plain fallback for non-interactive output. It writes
// one log line per transition instead of redrawing a board.
type LogReporter struct {
	mu     sync.Mutex
	logger *log.Logger
}

// NewLogReporter creates a reporter that logs progress transitions
func NewLogReporter(logger *log.Logger) *LogReporter {
	return &LogReporter{logger: logger}
}

func (r *LogReporter) StrategyStarted(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logger.Info("strategy started", "strategy", name)
}

func (r *LogReporter) StrategyFinished(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logger.Info("strategy finished", "strategy", name)
}
