package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// stageMsg announces the step a running fetch has moved on to.
type stageMsg string

type fetchFinishedMsg struct {
	err error
}

// fetchProgressModel shows finished steps with a check mark and the running
// step behind a spinner. The initial label is a placeholder and is replaced,
// not checked off, by the first reported step.
type fetchProgressModel struct {
	spinner  spinner.Model
	finished []string
	current  string
	reported bool
	err      error
	done     bool

	doneStyle lipgloss.Style
}

func newFetchProgressModel(label string) fetchProgressModel {
	return fetchProgressModel{
		spinner: spinner.New(
			spinner.WithSpinner(spinner.MiniDot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("39"))),
		),
		current:   label,
		doneStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
	}
}

func (m fetchProgressModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m fetchProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stageMsg:
		if m.reported {
			m.finished = append(m.finished, m.current)
		}
		m.current = string(msg)
		m.reported = true
		return m, nil
	case fetchFinishedMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	default:
		return m, nil
	}
}

func (m fetchProgressModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	for _, step := range m.finished {
		b.WriteString(m.doneStyle.Render("✓ " + step))
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "%s %s...", m.spinner.View(), m.current)
	return b.String()
}

// runFetchProgress runs fetch in the background while rendering the steps it
// reports to output, and returns the error fetch returned.
func runFetchProgress(ctx context.Context, output io.Writer, label string, fetch func(context.Context, func(string)) error) error {
	p := tea.NewProgram(
		newFetchProgressModel(label),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	go func() {
		err := fetch(ctx, func(step string) { p.Send(stageMsg(step)) })
		p.Send(fetchFinishedMsg{err: err})
	}()

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(fetchProgressModel)
	if !ok {
		return fmt.Errorf("unexpected final progress model type %T", finalModel)
	}

	return result.err
}
