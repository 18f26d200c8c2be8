package gateway

import (
	"context"
	"fmt"
	"strings"

	"droidsweep/backend/app/cmdlog"
	"droidsweep/backend/global"
	"droidsweep/backend/state"
	"droidsweep/bridge"
)

// Gateway is the single choke point for device commands. Every feature that
// needs to run something on the phone goes through Shell or TogglePackage, so
// each settled call produces exactly one command-log entry. While demo mode is
// active nothing is logged here; the demo transport owns its own entries.
type Gateway struct {
	Transport bridge.Transport
	Log       *cmdlog.Store
}

func New(t bridge.Transport, log *cmdlog.Store) *Gateway {
	return &Gateway{Transport: t, Log: log}
}

// Shell runs one already-sanitized command and logs its classified outcome.
// Callers that pre-validate log rejections themselves; a command reaching
// Shell is assumed safe to execute.
func (g *Gateway) Shell(ctx context.Context, command string) (bridge.ShellResult, error) {
	res, err := g.Transport.Shell(ctx, command)
	if err != nil {
		g.append(command, cmdlog.OutcomeError, err.Error())
		return res, err
	}
	outcome := cmdlog.OutcomeSuccess
	if res.ExitCode != 0 {
		outcome = cmdlog.OutcomeError
	}
	g.append(command, outcome, JoinOutput(res.Stdout, res.Stderr))
	return res, nil
}

// TogglePackage flips package enablement through the transport's package
// primitive and logs it like any other command.
func (g *Gateway) TogglePackage(ctx context.Context, pkg string, enable bool) error {
	verb := "disable"
	if enable {
		verb = "enable"
	}
	cmdText := fmt.Sprintf("pm %s %s", verb, pkg)
	if err := g.Transport.TogglePackage(ctx, pkg, enable); err != nil {
		g.append(cmdText, cmdlog.OutcomeError, err.Error())
		return err
	}
	g.append(cmdText, cmdlog.OutcomeSuccess, "")
	return nil
}

// LogBlocked records a sanitizer rejection as a single error entry. The
// transport is never touched for blocked commands.
func (g *Gateway) LogBlocked(raw, reason string) {
	g.append(raw, cmdlog.OutcomeError, reason)
}

func (g *Gateway) append(command string, outcome cmdlog.Outcome, message string) {
	if state.DemoMode() {
		return
	}
	e := g.Log.Add(command, outcome, message)
	global.Logger.Debug().Uint64("id", e.ID).Str("command", command).Str("result", string(outcome)).Msg("command logged")
}

// JoinOutput combines stdout and stderr into the log message: trimmed,
// newline-joined in that order, empty halves dropped.
func JoinOutput(stdout, stderr string) string {
	parts := make([]string, 0, 2)
	if s := strings.TrimSpace(stdout); s != "" {
		parts = append(parts, s)
	}
	if s := strings.TrimSpace(stderr); s != "" {
		parts = append(parts, s)
	}
	return strings.Join(parts, "\n")
}
