package bridge

import "context"

// ShellResult is the raw outcome of one shell command on the device.
type ShellResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Transport is the device-side command channel. Implementations accept one
// in-flight command at a time; callers running batches must await each call
// before issuing the next.
type Transport interface {
	// Shell runs a single shell command on the device and returns its
	// captured output. A non-nil error means the command never ran
	// (disconnected device, dead bridge), not a non-zero exit.
	Shell(ctx context.Context, command string) (ShellResult, error)
	// TogglePackage enables or disables a package for the current user.
	TogglePackage(ctx context.Context, pkg string, enable bool) error
	// ListEnabledPackages returns package names currently enabled on the device.
	ListEnabledPackages(ctx context.Context) ([]string, error)
}

type DeviceState string

const (
	StateOnline       DeviceState = "online"
	StateOffline      DeviceState = "offline"
	StateUnauthorized DeviceState = "unauthorized"
	StateUnknown      DeviceState = "unknown"
)
