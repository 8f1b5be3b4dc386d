package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/dynarray/internal/script"
	"github.com/san-kum/dynarray/internal/viz"
)

const maxLog = 12

type model struct {
	engine script.Engine
	theme  viz.Theme

	input    string
	history  []string
	recall   int
	log      []script.Step
	last     *script.Step
	parseErr string

	width  int
	height int
}

// NewInteractiveApp returns a REPL model that applies typed ops to engine.
func NewInteractiveApp(engine script.Engine, theme viz.Theme) *model {
	return &model{
		engine: engine,
		theme:  theme,
		log:    make([]script.Step, 0, maxLog),
		width:  80,
		height: 24,
	}
}

// Run starts the REPL on the terminal and blocks until the user quits.
func Run(engine script.Engine, theme viz.Theme) error {
	_, err := tea.NewProgram(NewInteractiveApp(engine, theme)).Run()
	return err
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyEnter:
		m.submit()
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			r := []rune(m.input)
			m.input = string(r[:len(r)-1])
		}
	case tea.KeyUp:
		if m.recall > 0 {
			m.recall--
			m.input = m.history[m.recall]
		}
	case tea.KeyDown:
		if m.recall < len(m.history)-1 {
			m.recall++
			m.input = m.history[m.recall]
		} else {
			m.recall = len(m.history)
			m.input = ""
		}
	case tea.KeySpace:
		m.input += " "
	case tea.KeyRunes:
		m.input += string(msg.Runes)
	}
	return m, nil
}

func (m *model) submit() {
	line := strings.TrimSpace(m.input)
	m.input = ""
	m.parseErr = ""
	if line == "" {
		return
	}
	m.history = append(m.history, line)
	m.recall = len(m.history)

	op, err := script.ParseOp(line)
	if err != nil {
		m.parseErr = err.Error()
		return
	}
	step := m.engine.Apply(op)
	m.last = &step
	m.log = append(m.log, step)
	if len(m.log) > maxLog {
		m.log = m.log[1:]
	}
}

func (m model) View() string {
	var b strings.Builder

	title := lipgloss.NewStyle().Bold(true).Foreground(m.theme.Secondary).
		Render(fmt.Sprintf("dynarray · list[%s]", m.engine.Element()))
	b.WriteString("\n  " + title + "\n\n")

	highlight := -1
	if m.last != nil && m.last.OK() {
		highlight = m.last.Pos
	}
	b.WriteString("  " + viz.Slots(m.engine.Snapshot(), highlight, m.theme) + "\n\n")

	for _, step := range m.log {
		b.WriteString("  " + viz.StepLine(step, m.theme) + "\n")
	}
	if len(m.log) > 0 {
		b.WriteString("\n")
	}

	if metrics := m.engine.Metrics(); len(metrics) > 0 {
		for _, line := range strings.Split(viz.Metrics(metrics, m.theme), "\n") {
			b.WriteString("  " + line + "\n")
		}
		b.WriteString("\n")
	}

	if m.parseErr != "" {
		b.WriteString("  " + lipgloss.NewStyle().Foreground(m.theme.Error).Render(m.parseErr) + "\n")
	}

	prompt := lipgloss.NewStyle().Foreground(m.theme.Accent).Bold(true).Render("› ")
	b.WriteString("  " + prompt + m.input + "█\n\n")

	hint := lipgloss.NewStyle().Foreground(m.theme.Muted).Italic(true)
	b.WriteString("  " + hint.Render("add V · insert I V · remove V · removeat I · get I · set I V · pop · clear · trim") + "\n")
	b.WriteString("  " + hint.Render("enter apply · ↑/↓ history · esc quit") + "\n")

	return b.String()
}
