package bridge

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ADB drives a connected phone through the adb binary.
type ADB struct {
	Bin    string // path to adb, default "adb"
	Serial string // optional -s target
}

func NewADB(bin, serial string) *ADB {
	if bin == "" {
		bin = "adb"
	}
	return &ADB{Bin: bin, Serial: serial}
}

func (a *ADB) args(rest ...string) []string {
	var out []string
	if a.Serial != "" {
		out = append(out, "-s", a.Serial)
	}
	return append(out, rest...)
}

// Shell runs `adb shell <command>` and captures both streams. adb itself
// exits non-zero when the device is gone; that case becomes an error, while a
// device-side non-zero exit is reported through ExitCode.
func (a *ADB) Shell(ctx context.Context, command string) (ShellResult, error) {
	// `shell v2` protocol propagates the remote exit code through adb.
	cmd := exec.CommandContext(ctx, a.Bin, a.args("shell", command)...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	res := ShellResult{Stdout: stdout.String(), Stderr: stderr.String()}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			return res, nil
		}
		return res, fmt.Errorf("adb shell: %w", err)
	}
	return res, nil
}

func (a *ADB) TogglePackage(ctx context.Context, pkg string, enable bool) error {
	verb := "disable-user --user 0"
	if enable {
		verb = "enable"
	}
	res, err := a.Shell(ctx, fmt.Sprintf("pm %s %s", verb, pkg))
	if err != nil {
		return err
	}
	if res.ExitCode != 0 {
		return fmt.Errorf("pm %s %s: %s", verb, pkg, strings.TrimSpace(res.Stderr+res.Stdout))
	}
	return nil
}

// ListEnabledPackages parses `pm list packages -e` output (`package:<name>` lines).
func (a *ADB) ListEnabledPackages(ctx context.Context) ([]string, error) {
	res, err := a.Shell(ctx, "pm list packages -e")
	if err != nil {
		return nil, err
	}
	if res.ExitCode != 0 {
		return nil, fmt.Errorf("pm list packages: exit %d: %s", res.ExitCode, strings.TrimSpace(res.Stderr))
	}
	var pkgs []string
	for _, line := range strings.Split(res.Stdout, "\n") {
		line = strings.TrimSpace(line)
		if name, ok := strings.CutPrefix(line, "package:"); ok && name != "" {
			pkgs = append(pkgs, name)
		}
	}
	return pkgs, nil
}

// State asks the adb server for the device connection state.
func (a *ADB) State(ctx context.Context) DeviceState {
	out, err := exec.CommandContext(ctx, a.Bin, a.args("get-state")...).CombinedOutput()
	s := strings.TrimSpace(string(out))
	if err != nil {
		if strings.Contains(s, "unauthorized") {
			return StateUnauthorized
		}
		return StateOffline
	}
	switch s {
	case "device":
		return StateOnline
	case "offline":
		return StateOffline
	default:
		return StateUnknown
	}
}
