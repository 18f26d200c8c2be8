package bridge

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// Demo is a scripted in-memory transport so the console stays usable without
// a phone attached. It tracks a fake package set and answers a few common
// read commands.
type Demo struct {
	mu       sync.Mutex
	disabled map[string]bool
	packages []string
}

func NewDemo(packages []string) *Demo {
	return &Demo{disabled: map[string]bool{}, packages: packages}
}

func (d *Demo) Shell(_ context.Context, command string) (ShellResult, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	switch {
	case strings.HasPrefix(command, "pm list packages"):
		var b strings.Builder
		for _, p := range d.packages {
			if d.disabled[p] && strings.Contains(command, "-e") {
				continue
			}
			fmt.Fprintf(&b, "package:%s\n", p)
		}
		return ShellResult{Stdout: b.String()}, nil
	case strings.HasPrefix(command, "getprop ro.build.version.release"):
		return ShellResult{Stdout: "14\n"}, nil
	case strings.HasPrefix(command, "settings get"):
		return ShellResult{Stdout: "null\n"}, nil
	default:
		return ShellResult{Stdout: fmt.Sprintf("demo: %s\n", command)}, nil
	}
}

func (d *Demo) TogglePackage(_ context.Context, pkg string, enable bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.disabled[pkg] = !enable
	return nil
}

func (d *Demo) ListEnabledPackages(_ context.Context) ([]string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	var out []string
	for _, p := range d.packages {
		if !d.disabled[p] {
			out = append(out, p)
		}
	}
	return out, nil
}
