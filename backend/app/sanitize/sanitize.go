package sanitize

import (
	"fmt"
	"regexp"
	"strings"
)

// Result of validating one terminal command. When OK is false, Reason is a
// user-facing explanation safe to render straight into the command log.
type Result struct {
	OK        bool
	Sanitized string
	Reason    string
}

// allowed maps a command verb to the subcommands accepted after it. An empty
// set means any (already metacharacter-free) arguments are accepted.
var allowed = map[string]map[string]bool{
	"pm":       {"list": true, "disable-user": true, "enable": true, "uninstall": true, "install-existing": true, "path": true, "dump": true},
	"settings": {"get": true, "put": true, "delete": true, "list": true},
	"dumpsys":  {},
	"getprop":  {},
	"am":       {"force-stop": true},
	"cmd":      {},
	"wm":       {"size": true, "density": true},
	"svc":      {"wifi": true, "bluetooth": true, "data": true},
	"input":    {"keyevent": true},
}

// metachars are shell characters usable for chaining or substitution. The
// whole command is rejected when any appears, regardless of the verb.
var metachars = regexp.MustCompile("[;|&$><`()\\\\\"'{}\\[\\]*?~\n\r]")

// argPattern is the conservative shape every token after the verb must match.
var argPattern = regexp.MustCompile(`^[A-Za-z0-9._:/@=,+-]+$`)

// ValidateTerminalCommand accepts a free-text command typed into the terminal
// and either rejects it or returns a normalized form that is safe to hand to
// the device shell. Unknown verbs are rejected by default; this is a
// whitelist, not a filter.
func ValidateTerminalCommand(raw string) Result {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Result{Reason: "empty command"}
	}
	if loc := metachars.FindString(trimmed); loc != "" {
		return Result{Reason: fmt.Sprintf("command contains forbidden character %q", loc)}
	}
	fields := strings.Fields(trimmed)
	verb := fields[0]
	subs, ok := allowed[verb]
	if !ok {
		return Result{Reason: fmt.Sprintf("unrecognized command %q; only device settings and package commands are allowed", verb)}
	}
	if len(subs) > 0 {
		if len(fields) < 2 {
			return Result{Reason: fmt.Sprintf("%s requires a subcommand", verb)}
		}
		if !subs[fields[1]] {
			return Result{Reason: fmt.Sprintf("%s %s is not an allowed operation", verb, fields[1])}
		}
	}
	for _, f := range fields[1:] {
		if !argPattern.MatchString(f) {
			return Result{Reason: fmt.Sprintf("argument %q contains characters outside the allowed set", f)}
		}
	}
	// normalized whitespace is the only rewrite applied
	return Result{OK: true, Sanitized: strings.Join(fields, " ")}
}

var hostnameLabel = regexp.MustCompile(`^[A-Za-z0-9]([A-Za-z0-9-]{0,61}[A-Za-z0-9])?$`)

// ValidateDNSHostname checks that h is a syntactically valid hostname before
// it is spliced into a `settings put` command, so a settings value can never
// smuggle shell syntax onto the device.
func ValidateDNSHostname(h string) (string, error) {
	h = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(h), "."))
	if h == "" {
		return "", fmt.Errorf("hostname is empty")
	}
	if len(h) > 253 {
		return "", fmt.Errorf("hostname exceeds 253 characters")
	}
	for _, label := range strings.Split(h, ".") {
		if !hostnameLabel.MatchString(label) {
			return "", fmt.Errorf("invalid hostname label %q", label)
		}
	}
	return h, nil
}
