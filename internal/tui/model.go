// Package tui implements the full-screen variant of the calculator session
// as a bubbletea program. It walks the same states as the line-oriented
// session: collect operands, collect operators, report, offer a repeat.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rahmanda/kalk/internal/calc"
	"github.com/rahmanda/kalk/internal/session"
	"github.com/rahmanda/kalk/internal/styles"
)

type phase int

const (
	phaseOperand phase = iota
	phaseOperator
	phaseReport
)

// Model is the bubbletea model for one calculator session.
type Model struct {
	input textinput.Model

	phase     phase
	operands  []float64
	operators []calc.Operator
	result    calc.Result
	aborted   bool
	warn      string
	quitting  bool
	err       error
}

// New returns a model ready to collect the first operand.
func New() Model {
	ti := textinput.New()
	ti.CharLimit = 32
	ti.Width = 24
	ti.Focus()
	return Model{input: ti}
}

// Err returns the internal error that terminated the program, if any.
func (m Model) Err() error {
	return m.err
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit consumes the current input line and advances the state machine.
func (m Model) submit() (tea.Model, tea.Cmd) {
	value := m.input.Value()
	m.input.Reset()

	switch m.phase {
	case phaseOperand:
		n, err := session.ParseOperand(value)
		if err != nil {
			// An unparsable operand aborts the whole round.
			m.aborted = true
			m.phase = phaseReport
			return m, nil
		}
		m.operands = append(m.operands, n)
		if len(m.operands) == calc.OperandCount {
			m.phase = phaseOperator
		}

	case phaseOperator:
		op, err := calc.ParseOperator(value)
		if err != nil {
			m.warn = session.InvalidOperatorWarning
			return m, nil
		}
		m.warn = ""
		m.operators = append(m.operators, op)
		if len(m.operators) == calc.OperatorCount {
			result, err := calc.Evaluate(m.operands, m.operators)
			if err != nil {
				m.err = err
				m.quitting = true
				return m, tea.Quit
			}
			m.result = result
			m.phase = phaseReport
		}

	case phaseReport:
		if session.WantsRepeat(value) {
			return m.reset(), nil
		}
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// reset clears round state for another evaluation, keeping the focused input.
func (m Model) reset() Model {
	m.phase = phaseOperand
	m.operands = nil
	m.operators = nil
	m.result = calc.Result{}
	m.aborted = false
	m.warn = ""
	return m
}

func (m Model) View() string {
	if m.quitting {
		return styles.FaintStyle.Render(session.Farewell) + "\n"
	}

	var b strings.Builder
	b.WriteString(styles.RenderBanner(session.Banner))
	b.WriteString("\n\n")

	switch m.phase {
	case phaseOperand:
		b.WriteString(styles.PromptStyle.Render(session.OperandPrompt(len(m.operands) + 1)))
		b.WriteString(m.input.View())

	case phaseOperator:
		b.WriteString(styles.PromptStyle.Render(session.OperatorPrompt(len(m.operators) + 1)))
		b.WriteString(m.input.View())
		if m.warn != "" {
			b.WriteString("\n")
			b.WriteString(styles.RenderWarning(m.warn))
		}

	case phaseReport:
		if m.aborted {
			b.WriteString(styles.RenderError(session.InvalidNumberMessage))
		} else {
			b.WriteString("Perhitungan: ")
			b.WriteString(calc.Expression(m.operands, m.operators))
			b.WriteString("\nHasil: ")
			b.WriteString(styles.RenderResult(m.result.String()))
		}
		b.WriteString("\n\n")
		b.WriteString(styles.PromptStyle.Render(session.RepeatPrompt))
		b.WriteString(m.input.View())
	}

	b.WriteString("\n")
	return b.String()
}
