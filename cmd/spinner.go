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

// connectPhase is one step of bringing a bot online.
type connectPhase int

const (
	phaseToken connectPhase = iota
	phaseDial
	phaseHydrate
)

func (p connectPhase) String() string {
	switch p {
	case phaseToken:
		return "Loading access token"
	case phaseDial:
		return "Connecting to OneBot"
	case phaseHydrate:
		return "Loading login info and contacts"
	default:
		return "Working"
	}
}

type phaseMsg connectPhase

type connectDoneMsg struct {
	err error
}

var (
	phaseSpinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("69"))
	phaseDoneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

// connectProgressModel lists the phases a connect has passed and spins on
// the current one.
type connectProgressModel struct {
	spinner spinner.Model
	task    tea.Cmd
	passed  []connectPhase
	current connectPhase
	started bool
	err     error
	done    bool
}

func newConnectProgressModel(task tea.Cmd) connectProgressModel {
	return connectProgressModel{
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(phaseSpinnerStyle)),
		task:    task,
		current: phaseDial,
	}
}

func (m connectProgressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.task)
}

func (m connectProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case phaseMsg:
		if m.started {
			m.passed = append(m.passed, m.current)
		}
		m.current = connectPhase(msg)
		m.started = true
		return m, nil
	case connectDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m connectProgressModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	for _, phase := range m.passed {
		b.WriteString(phaseDoneStyle.Render("✓") + " " + phase.String() + "\n")
	}
	fmt.Fprintf(&b, "%s %s...", m.spinner.View(), m.current)
	return b.String()
}

// runConnectProgress renders connect progress on output while task runs and
// returns the task's error. task reports each phase as it starts.
func runConnectProgress(ctx context.Context, output io.Writer, task func(context.Context, func(connectPhase)) error) error {
	var p *tea.Program
	report := func(phase connectPhase) {
		p.Send(phaseMsg(phase))
	}
	taskCmd := func() tea.Msg {
		return connectDoneMsg{err: task(ctx, report)}
	}

	p = tea.NewProgram(
		newConnectProgressModel(taskCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(connectProgressModel)
	if !ok {
		return fmt.Errorf("unexpected final progress model type %T", finalModel)
	}

	return result.err
}
