package gateway

import (
	"context"
	"errors"
	"testing"

	"droidsweep/backend/app/cmdlog"
	"droidsweep/backend/state"
	"droidsweep/bridge"
)

type fakeTransport struct {
	shellFn  func(command string) (bridge.ShellResult, error)
	toggleFn func(pkg string, enable bool) error
	calls    []string
}

func (f *fakeTransport) Shell(_ context.Context, command string) (bridge.ShellResult, error) {
	f.calls = append(f.calls, command)
	if f.shellFn == nil {
		return bridge.ShellResult{}, nil
	}
	return f.shellFn(command)
}

func (f *fakeTransport) TogglePackage(_ context.Context, pkg string, enable bool) error {
	f.calls = append(f.calls, pkg)
	if f.toggleFn == nil {
		return nil
	}
	return f.toggleFn(pkg, enable)
}

func (f *fakeTransport) ListEnabledPackages(context.Context) ([]string, error) { return nil, nil }

func TestShellClassification(t *testing.T) {
	cases := []struct {
		name    string
		res     bridge.ShellResult
		err     error
		want    cmdlog.Outcome
		wantMsg string
	}{
		{"exit zero is success", bridge.ShellResult{Stdout: "a", ExitCode: 0}, nil, cmdlog.OutcomeSuccess, "a"},
		{"nonzero exit is error", bridge.ShellResult{Stderr: "denied", ExitCode: 1}, nil, cmdlog.OutcomeError, "denied"},
		{"transport failure is error", bridge.ShellResult{}, errors.New("device offline"), cmdlog.OutcomeError, "device offline"},
		{"both streams joined", bridge.ShellResult{Stdout: "out", Stderr: "err", ExitCode: 0}, nil, cmdlog.OutcomeSuccess, "out\nerr"},
		{"empty output drops message", bridge.ShellResult{ExitCode: 0}, nil, cmdlog.OutcomeSuccess, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := cmdlog.NewStore(10)
			ft := &fakeTransport{shellFn: func(string) (bridge.ShellResult, error) { return tc.res, tc.err }}
			g := New(ft, store)
			_, err := g.Shell(context.Background(), "getprop ro.product.model")
			if (err != nil) != (tc.err != nil) {
				t.Fatalf("Shell error = %v, transport error = %v", err, tc.err)
			}
			entries := store.All()
			if len(entries) != 1 {
				t.Fatalf("logged %d entries, want exactly 1", len(entries))
			}
			if entries[0].Result != tc.want {
				t.Errorf("result = %q, want %q", entries[0].Result, tc.want)
			}
			if entries[0].Message != tc.wantMsg {
				t.Errorf("message = %q, want %q", entries[0].Message, tc.wantMsg)
			}
		})
	}
}

func TestJoinOutput(t *testing.T) {
	if got := JoinOutput("a", ""); got != "a" {
		t.Errorf("JoinOutput(a, empty) = %q, want %q", got, "a")
	}
	if got := JoinOutput("", ""); got != "" {
		t.Errorf("JoinOutput(empty, empty) = %q, want empty", got)
	}
	if got := JoinOutput(" out \n", "err\n"); got != "out\nerr" {
		t.Errorf("JoinOutput = %q, want %q", got, "out\nerr")
	}
}

func TestDemoModeSuppressesLogging(t *testing.T) {
	store := cmdlog.NewStore(10)
	g := New(&fakeTransport{}, store)
	state.SetDemoMode(true)
	defer state.SetDemoMode(false)
	if _, err := g.Shell(context.Background(), "pm list packages"); err != nil {
		t.Fatalf("Shell: %v", err)
	}
	g.LogBlocked("rm -rf /", "unrecognized command")
	if n := store.Retained(); n != 0 {
		t.Fatalf("demo mode logged %d entries, want 0", n)
	}
}

func TestBlockedCommandNeverReachesTransport(t *testing.T) {
	store := cmdlog.NewStore(10)
	ft := &fakeTransport{}
	g := New(ft, store)
	g.LogBlocked("rm -rf /", "unrecognized command")
	if len(ft.calls) != 0 {
		t.Fatalf("transport saw %d calls, want 0", len(ft.calls))
	}
	entries := store.All()
	if len(entries) != 1 || entries[0].Result != cmdlog.OutcomeError {
		t.Fatalf("blocked command not logged as single error entry: %+v", entries)
	}
}

func TestTogglePackageLogsOnce(t *testing.T) {
	store := cmdlog.NewStore(10)
	g := New(&fakeTransport{toggleFn: func(pkg string, enable bool) error {
		if pkg == "com.bad" {
			return errors.New("not found")
		}
		return nil
	}}, store)

	if err := g.TogglePackage(context.Background(), "com.vendor.bloat", false); err != nil {
		t.Fatalf("TogglePackage: %v", err)
	}
	if err := g.TogglePackage(context.Background(), "com.bad", true); err == nil {
		t.Fatal("TogglePackage(com.bad) succeeded, want error")
	}
	entries := store.All()
	if len(entries) != 2 {
		t.Fatalf("logged %d entries, want 2", len(entries))
	}
	if entries[0].Result != cmdlog.OutcomeError || entries[1].Result != cmdlog.OutcomeSuccess {
		t.Fatalf("unexpected classification: %+v", entries)
	}
}
