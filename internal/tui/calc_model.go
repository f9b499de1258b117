package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/thangchung/skillbox/internal/calc"
)

// historyEntry is one evaluated expression with its outcome
type historyEntry struct {
	expr   string
	result string
	err    error
}

// CalcModel is the interactive calculator TUI state
type CalcModel struct {
	input   textinput.Model
	history []historyEntry
	width   int
}

// NewCalcModel creates the interactive calculator model
func NewCalcModel() CalcModel {
	ti := textinput.New()
	ti.Placeholder = "add 5 3"
	ti.Prompt = "> "
	ti.CharLimit = 256
	ti.Focus()

	return CalcModel{
		input: ti,
	}
}

// Init implements tea.Model
func (m CalcModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m CalcModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			expr := strings.TrimSpace(m.input.Value())
			if expr == "" {
				return m, nil
			}
			if expr == "quit" || expr == "exit" {
				return m, tea.Quit
			}
			m.history = append(m.history, evaluate(expr))
			m.input.Reset()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// evaluate parses and computes a single "operation number..." line
func evaluate(expr string) historyEntry {
	entry := historyEntry{expr: expr}

	fields := strings.Fields(expr)
	if len(fields) < 2 {
		entry.err = fmt.Errorf("usage: <operation> <number>...")
		return entry
	}

	numbers, err := calc.ParseNumbers(fields[1:])
	if err != nil {
		entry.err = err
		return entry
	}

	op, err := calc.ParseOperation(fields[0])
	if err != nil {
		entry.err = err
		return entry
	}

	result, err := calc.Evaluate(op, numbers)
	if err != nil {
		entry.err = err
		return entry
	}

	entry.result = calc.FormatResult(result)
	return entry
}

// View implements tea.Model
func (m CalcModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("skillbox calculator"))
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("operations: add, subtract, multiply, divide · esc to quit"))
	b.WriteString("\n\n")

	for _, entry := range m.history {
		b.WriteString(historyExprStyle.Render("> " + entry.expr))
		b.WriteString("\n")
		if entry.err != nil {
			b.WriteString(errorStyle.Render("Error: " + entry.err.Error()))
		} else {
			b.WriteString(resultStyle.Render(entry.result))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(promptStyle.Render(m.input.View()))
	b.WriteString("\n")

	return b.String()
}

// RunCalc starts the interactive calculator
func RunCalc() error {
	p := tea.NewProgram(NewCalcModel())
	_, err := p.Run()
	return err
}
