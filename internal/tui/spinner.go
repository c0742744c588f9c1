// Package tui показывает спиннер, пока идёт запрос на генерацию.
package tui

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrInterrupted возвращается, если пользователь прервал ожидание.
var ErrInterrupted = errors.New("interrupted")

var labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))

// Task выполняется, пока крутится спиннер.
type Task func(ctx context.Context) (string, error)

type doneMsg struct {
	result string
	err    error
}

type model struct {
	spin   spinner.Model
	label  string
	run    tea.Cmd
	cancel context.CancelFunc

	done   bool
	result string
	err    error
}

func newModel(label string, run tea.Cmd, cancel context.CancelFunc) model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#7C3AED"))

	return model{spin: sp, label: label, run: run, cancel: cancel}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.run)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case doneMsg:
		m.done = true
		m.result, m.err = msg.result, msg.err
		return m, tea.Quit

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			if m.cancel != nil {
				m.cancel()
			}
			m.done = true
			m.err = ErrInterrupted
			return m, tea.Quit
		}
		return m, nil

	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) View() string {
	if m.done {
		return ""
	}
	return m.spin.View() + " " + labelStyle.Render(m.label) + "\n"
}

// RunWithSpinner выполняет task, рисуя спиннер в out.
func RunWithSpinner(ctx context.Context, out io.Writer, label string, task Task) (string, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	run := func() tea.Msg {
		result, err := task(ctx)
		return doneMsg{result: result, err: err}
	}

	p := tea.NewProgram(newModel(label, run, cancel), tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return "", err
	}

	m, ok := final.(model)
	if !ok || !m.done {
		return "", ErrInterrupted
	}
	return m.result, m.err
}
