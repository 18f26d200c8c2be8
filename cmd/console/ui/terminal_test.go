package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"droidsweep/backend/app/cmdlog"
)

func TestInFlightCommandRendersUntilSettled(t *testing.T) {
	m := NewTerminalModel(NewClient("http://127.0.0.1:0"), "Pixel 8", 80, 40)
	m.Input.SetValue("getprop ro.build.id")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.inFlight != "getprop ro.build.id" {
		t.Fatalf("inFlight = %q, want the issued command", m.inFlight)
	}
	if !strings.Contains(m.renderEntries(), "$ getprop ro.build.id") {
		t.Fatalf("issued command missing from rendered log:\n%s", m.renderEntries())
	}

	m, _ = m.Update(commandDoneMsg{Res: CommandResponse{Accepted: true}})
	if m.inFlight != "" {
		t.Fatalf("inFlight = %q after settlement, want empty", m.inFlight)
	}
	if got := m.renderEntries(); got != "" {
		t.Fatalf("rendered log = %q after settlement with no history, want empty", got)
	}
}

func TestRenderEntriesOrdersOldestFirst(t *testing.T) {
	m := NewTerminalModel(NewClient("http://127.0.0.1:0"), "Pixel 8", 80, 40)
	m, _ = m.Update(logLoadedMsg{Log: LogResponse{Entries: []cmdlog.Entry{
		{ID: 2, Command: "second", Result: cmdlog.OutcomeError, Message: "boom"},
		{ID: 1, Command: "first", Result: cmdlog.OutcomeSuccess},
	}}})

	got := m.renderEntries()
	if strings.Index(got, "first") > strings.Index(got, "second") {
		t.Fatalf("entries not rendered oldest first:\n%s", got)
	}
	if !strings.Contains(got, "    boom") {
		t.Fatalf("entry message not indented under its command:\n%s", got)
	}
}
