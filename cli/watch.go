// Package cli provides command-line interface functionality for WARP Taskbar.
// This file contains the interactive status watcher.
package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/SurajRaika/warp-taskbar/warp"
)

// Colors using AdaptiveColor for light/dark terminal support.
var (
	colorDim    = lipgloss.AdaptiveColor{Light: "242", Dark: "240"}
	colorGreen  = lipgloss.AdaptiveColor{Light: "28", Dark: "40"}
	colorRed    = lipgloss.AdaptiveColor{Light: "160", Dark: "196"}
	colorOrange = lipgloss.AdaptiveColor{Light: "166", Dark: "208"}
)

var (
	titleStyle        = lipgloss.NewStyle().Bold(true).Foreground(colorOrange)
	connectedStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	disconnectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorRed)
	helpStyle         = lipgloss.NewStyle().Foreground(colorDim)
)

// statusMsg carries one poll result into the model.
type statusMsg struct {
	state warp.ConnectionState
	err   error
}

// tickMsg schedules the next poll.
type tickMsg time.Time

// watchModel is the Bubbletea model for the interactive watcher.
type watchModel struct {
	ctx      context.Context
	client   *warp.Client
	interval time.Duration

	spinner spinner.Model
	state   warp.ConnectionState
	polls   int
	err     error
}

func newWatchModel(ctx context.Context, client *warp.Client, interval time.Duration) watchModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(colorOrange)

	return watchModel{
		ctx:      ctx,
		client:   client,
		interval: interval,
		spinner:  s,
	}
}

// Init returns the initial commands.
func (m watchModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.pollCmd())
}

// pollCmd queries the daemon once, off the UI loop.
func (m watchModel) pollCmd() tea.Cmd {
	return func() tea.Msg {
		state, err := m.client.Status(m.ctx)
		return statusMsg{state: state, err: err}
	}
}

// tickCmd waits one interval before the next poll.
func (m watchModel) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update processes messages and returns an updated model and commands.
func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "c":
			return m, m.actionCmd(warp.ActionConnect)
		case "d":
			return m, m.actionCmd(warp.ActionDisconnect)
		}
		return m, nil

	case statusMsg:
		m.state = msg.state
		m.err = msg.err
		m.polls++
		return m, m.tickCmd()

	case tickMsg:
		return m, m.pollCmd()

	default:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
}

// actionCmd runs connect/disconnect and re-polls immediately.
func (m watchModel) actionCmd(actionID string) tea.Cmd {
	return func() tea.Msg {
		action, err := warp.Lookup(actionID)
		if err != nil {
			return statusMsg{state: m.state, err: err}
		}
		if _, err := m.client.Query(m.ctx, action.Args...); err != nil {
			return statusMsg{state: m.state, err: err}
		}
		state, err := m.client.Status(m.ctx)
		return statusMsg{state: state, err: err}
	}
}

// View renders the watcher.
func (m watchModel) View() string {
	var state string
	switch m.state {
	case warp.StateConnected:
		state = connectedStyle.Render("● Connected")
	case warp.StateDisconnected:
		state = disconnectedStyle.Render("○ Disconnected")
	default:
		state = helpStyle.Render("… Checking")
	}

	s := titleStyle.Render("Cloudflare WARP") + "\n\n"
	s += fmt.Sprintf("%s %s\n", m.spinner.View(), state)
	if m.err != nil {
		s += disconnectedStyle.Render(fmt.Sprintf("  %v", m.err)) + "\n"
	}
	s += helpStyle.Render(fmt.Sprintf("\n  polls: %d  interval: %s", m.polls, m.interval)) + "\n"
	s += helpStyle.Render("\n  c connect · d disconnect · q quit") + "\n"
	return s
}

// Watch runs the interactive status watcher until the user quits.
// It refuses to start when stdout is not a terminal.
func (c *CLI) Watch(ctx context.Context) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("watch mode requires a terminal; use -status for scripts")
	}

	model := newWatchModel(ctx, c.client, c.cfg.PollInterval())
	p := tea.NewProgram(model, tea.WithContext(ctx))

	_, err := p.Run()
	return err
}
