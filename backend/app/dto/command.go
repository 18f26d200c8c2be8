package dto

import "droidsweep/backend/app/cmdlog"

type TerminalCommandRequest struct {
	Command string `json:"command"`
}

type TerminalCommandResponse struct {
	Accepted bool   `json:"accepted"`
	Command  string `json:"command,omitempty"`
	Reason   string `json:"reason,omitempty"`
	Stdout   string `json:"stdout,omitempty"`
	Stderr   string `json:"stderr,omitempty"`
	ExitCode int    `json:"exit_code"`
}

type CommandLogResponse struct {
	Entries       []cmdlog.Entry `json:"entries"`
	TotalCommands uint64         `json:"total_commands"`
	Hidden        int            `json:"hidden"`
}

type ClearLogResponse struct {
	Marker uint64 `json:"marker"`
}
