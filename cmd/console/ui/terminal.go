package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"droidsweep/backend/app/cmdlog"
)

const logPollInterval = 2 * time.Second

// TerminalModel is the interactive terminal panel: a command input backed by
// the gateway endpoint plus a viewport over the shared command log.
type TerminalModel struct {
	Client     *Client
	DeviceName string

	Input    textinput.Model
	Log      viewport.Model
	Total    uint64
	Hidden   int
	Notice   string
	Err      error
	entries  []cmdlog.Entry
	inFlight string // command sent but not yet settled
}

type logLoadedMsg struct {
	Log LogResponse
	Err error
}

type commandDoneMsg struct {
	Res CommandResponse
	Err error
}

type logClearedMsg struct{ Err error }

type logDownloadedMsg struct {
	Path string
	Err  error
}

type pollTickMsg struct{}

func NewTerminalModel(c *Client, deviceName string, width, height int) TerminalModel {
	ti := textinput.New()
	ti.Placeholder = "pm list packages -e"
	ti.Focus()
	ti.Width = width - 8
	ti.PromptStyle = focusedStyle
	vp := viewport.New(width-6, height-12)
	return TerminalModel{Client: c, DeviceName: deviceName, Input: ti, Log: vp}
}

func (m TerminalModel) Init() tea.Cmd {
	return tea.Batch(m.loadLog, pollTick())
}

func pollTick() tea.Cmd {
	return tea.Tick(logPollInterval, func(time.Time) tea.Msg { return pollTickMsg{} })
}

func (m TerminalModel) loadLog() tea.Msg {
	log, err := m.Client.Log()
	return logLoadedMsg{Log: log, Err: err}
}

func (m TerminalModel) Update(msg tea.Msg) (TerminalModel, tea.Cmd) {
	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case pollTickMsg:
		return m, tea.Batch(m.loadLog, pollTick())
	case logLoadedMsg:
		if msg.Err != nil {
			m.Err = msg.Err
			return m, nil
		}
		m.Err = nil
		m.entries = msg.Log.Entries
		m.Total = msg.Log.TotalCommands
		m.Hidden = msg.Log.Hidden
		m.Log.SetContent(m.renderEntries())
		return m, nil
	case commandDoneMsg:
		if msg.Err != nil {
			m.Err = msg.Err
		}
		m.inFlight = ""
		m.Log.SetContent(m.renderEntries())
		return m, m.loadLog
	case logClearedMsg:
		if msg.Err != nil {
			m.Err = msg.Err
		}
		return m, m.loadLog
	case logDownloadedMsg:
		if msg.Err != nil {
			m.Err = msg.Err
		} else {
			m.Notice = "full log saved to " + msg.Path
		}
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			raw := strings.TrimSpace(m.Input.Value())
			if raw == "" {
				return m, nil
			}
			m.Input.Reset()
			m.inFlight = raw
			m.Log.SetContent(m.renderEntries())
			client := m.Client
			return m, func() tea.Msg {
				res, err := client.Run(raw)
				return commandDoneMsg{Res: res, Err: err}
			}
		case "ctrl+l":
			client := m.Client
			return m, func() tea.Msg { return logClearedMsg{Err: client.ClearLog()} }
		case "ctrl+d":
			client := m.Client
			return m, func() tea.Msg {
				path, err := client.DownloadLog()
				return logDownloadedMsg{Path: path, Err: err}
			}
		case "up", "down", "pgup", "pgdown":
			var cmd tea.Cmd
			m.Log, cmd = m.Log.Update(msg)
			return m, cmd
		}
	}
	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m TerminalModel) renderEntries() string {
	var b strings.Builder
	// log arrives newest-first; render oldest at the top like a real terminal
	for i := len(m.entries) - 1; i >= 0; i-- {
		renderEntry(&b, m.entries[i])
	}
	if m.inFlight != "" {
		renderEntry(&b, cmdlog.Entry{Command: m.inFlight, Result: cmdlog.OutcomePending})
	}
	return b.String()
}

func renderEntry(b *strings.Builder, e cmdlog.Entry) {
	badge := pendingStyle.Render("●")
	switch e.Result {
	case cmdlog.OutcomeSuccess:
		badge = successStyle.Render("●")
	case cmdlog.OutcomeError:
		badge = errorStyle.Render("●")
	}
	fmt.Fprintf(b, "%s $ %s\n", badge, e.Command)
	if e.Message != "" {
		for _, line := range strings.Split(e.Message, "\n") {
			fmt.Fprintf(b, "    %s\n", line)
		}
	}
}

func (m TerminalModel) View() string {
	s := titleStyle.Render("terminal — "+m.DeviceName) + "\n\n"
	s += m.Log.View() + "\n"
	if m.Hidden > 0 {
		s += noticeStyle.Render(fmt.Sprintf("%d commands hidden · ctrl+d downloads the full log", m.Hidden)) + "\n"
	}
	s += m.Input.View() + "\n"
	if m.Err != nil {
		s += errorStyle.Render(m.Err.Error()) + "\n"
	}
	if m.Notice != "" {
		s += noticeStyle.Render(m.Notice) + "\n"
	}
	s += noticeStyle.Render(fmt.Sprintf("%d total · ctrl+l: clear view · esc: back · ctrl+c: quit", m.Total))
	return docStyle.Render(s)
}
