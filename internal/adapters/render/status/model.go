package status

import (
	"errors"
	"io"

	"github.com/bnema/onebot-cli/internal/application"
	"github.com/bnema/onebot-cli/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

// botRenderedMsg carries the section rendered for statuses[index].
type botRenderedMsg struct {
	index   int
	section string
}

type renderDoneMsg struct{}

// tally counts bots by connection state for the header line.
type tally struct {
	online  int
	offline int
	closed  int
}

func (t *tally) add(status application.BotStatus) {
	switch {
	case status.Online:
		t.online++
	case status.State == domain.BotStateClosed.String():
		t.closed++
	default:
		t.offline++
	}
}

// model renders one bot per message and builds the header once every bot
// has been counted.
type model struct {
	statuses []application.BotStatus
	opts     RenderOptions
	styles   styles
	sections []string
	tally    tally
	output   string
}

func newModel(statuses []application.BotStatus, opts RenderOptions) model {
	return model{
		statuses: statuses,
		opts:     opts,
		styles:   newStyles(),
		sections: make([]string, 0, len(statuses)),
	}
}

func (m model) Init() tea.Cmd {
	return m.renderBot(0)
}

func (m model) renderBot(index int) tea.Cmd {
	if index >= len(m.statuses) {
		return func() tea.Msg {
			return renderDoneMsg{}
		}
	}

	status := m.statuses[index]
	return func() tea.Msg {
		return botRenderedMsg{
			index:   index,
			section: m.styles.section.Render(renderBot(status, m.opts, m.styles)),
		}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case botRenderedMsg:
		m.sections = append(m.sections, msg.section)
		m.tally.add(m.statuses[msg.index])
		return m, m.renderBot(msg.index + 1)
	case renderDoneMsg:
		m.output = renderView(len(m.statuses), m.tally, m.sections, m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

func Render(statuses []application.BotStatus, opts RenderOptions) (string, error) {
	p := tea.NewProgram(
		newModel(statuses, opts),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}
