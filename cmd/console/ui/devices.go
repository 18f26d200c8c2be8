package ui

import (
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type DevicesModel struct {
	Client  *Client
	Table   table.Model
	Devices []DeviceEntry
	Err     error
}

type devicesLoadedMsg struct {
	Devices []DeviceEntry
	Err     error
}

type DeviceSelectedMsg struct {
	UUID string
	Name string
}

func NewDevicesModel(c *Client, width, height int) DevicesModel {
	columns := []table.Column{
		{Title: "Device", Width: 30},
		{Title: "Model", Width: 24},
		{Title: "Android", Width: 10},
		{Title: "UUID", Width: 36},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height-10),
	)
	sT := table.DefaultStyles()
	sT.Header = sT.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	sT.Selected = sT.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(sT)
	return DevicesModel{Client: c, Table: t}
}

func (m DevicesModel) Init() tea.Cmd { return m.load }

func (m DevicesModel) load() tea.Msg {
	devices, err := m.Client.Devices()
	return devicesLoadedMsg{Devices: devices, Err: err}
}

func (m DevicesModel) Update(msg tea.Msg) (DevicesModel, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case devicesLoadedMsg:
		m.Err = msg.Err
		m.Devices = msg.Devices
		rows := make([]table.Row, 0, len(msg.Devices))
		for _, d := range msg.Devices {
			rows = append(rows, table.Row{d.Name, d.Model, d.AndroidVersion, d.UUID})
		}
		m.Table.SetRows(rows)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			return m, m.load
		case "enter":
			i := m.Table.Cursor()
			if i >= 0 && i < len(m.Devices) {
				d := m.Devices[i]
				return m, func() tea.Msg { return DeviceSelectedMsg{UUID: d.UUID, Name: d.Name} }
			}
		}
	}
	m.Table, cmd = m.Table.Update(msg)
	return m, cmd
}

func (m DevicesModel) View() string {
	s := titleStyle.Render("droidsweep — devices") + "\n\n"
	s += m.Table.View() + "\n"
	if m.Err != nil {
		s += errorStyle.Render(m.Err.Error()) + "\n"
	}
	s += noticeStyle.Render("enter: open terminal · r: refresh · ctrl+c: quit")
	return docStyle.Render(s)
}
