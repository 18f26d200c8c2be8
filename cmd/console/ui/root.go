package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

type state int

const (
	stateDevices state = iota
	stateTerminal
)

type RootModel struct {
	State    state
	Client   *Client
	Devices  DevicesModel
	Terminal TerminalModel
	Quitting bool
	width    int
	height   int
}

func NewRootModel(baseURL string) RootModel {
	c := NewClient(baseURL)
	return RootModel{
		State:   stateDevices,
		Client:  c,
		Devices: NewDevicesModel(c, 80, 24),
		width:   80,
		height:  24,
	}
}

func (m RootModel) Init() tea.Cmd {
	return m.Devices.Init()
}

func (m RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.Devices.Table.SetHeight(msg.Height - 10)
		m.Terminal.Log.Height = msg.Height - 12

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.Quitting = true
			return m, tea.Quit
		case "esc":
			if m.State == stateTerminal {
				m.State = stateDevices
				return m, m.Devices.Init()
			}
		}

	case DeviceSelectedMsg:
		m.State = stateTerminal
		m.Terminal = NewTerminalModel(m.Client, msg.Name, m.width, m.height)
		return m, m.Terminal.Init()
	}

	var cmd tea.Cmd
	switch m.State {
	case stateDevices:
		m.Devices, cmd = m.Devices.Update(msg)
	case stateTerminal:
		m.Terminal, cmd = m.Terminal.Update(msg)
	}
	return m, cmd
}

func (m RootModel) View() string {
	if m.Quitting {
		return ""
	}
	switch m.State {
	case stateTerminal:
		return m.Terminal.View()
	default:
		return m.Devices.View()
	}
}
