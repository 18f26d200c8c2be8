package sanitize

import "testing"

func TestValidateTerminalCommand(t *testing.T) {
	cases := []struct {
		name string
		in   string
		ok   bool
		want string
	}{
		{"plain settings read", "settings get global adb_wifi_enabled", true, "settings get global adb_wifi_enabled"},
		{"whitespace normalized", "  pm   list   packages  -e ", true, "pm list packages -e"},
		{"disable with user flag", "pm disable-user --user 0 com.vendor.bloat", true, "pm disable-user --user 0 com.vendor.bloat"},
		{"chaining after allowed verb", "settings get global x; rm -rf /", false, ""},
		{"pipe", "pm list packages | grep vendor", false, ""},
		{"substitution", "getprop $(cat /etc/passwd)", false, ""},
		{"redirection", "dumpsys battery > /sdcard/x", false, ""},
		{"backtick", "getprop `id`", false, ""},
		{"unknown verb", "rm -rf /data", false, ""},
		{"reboot not allowed", "reboot", false, ""},
		{"pm without allowed subcommand", "pm clear com.android.settings", false, ""},
		{"empty", "   ", false, ""},
		{"newline smuggling", "getprop ro.product.model\nreboot", false, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := ValidateTerminalCommand(tc.in)
			if res.OK != tc.ok {
				t.Fatalf("ValidateTerminalCommand(%q) ok = %v, want %v (reason %q)", tc.in, res.OK, tc.ok, res.Reason)
			}
			if tc.ok && res.Sanitized != tc.want {
				t.Fatalf("sanitized = %q, want %q", res.Sanitized, tc.want)
			}
			if !tc.ok && res.Reason == "" {
				t.Fatalf("rejection for %q carries no reason", tc.in)
			}
		})
	}
}

func TestValidateDNSHostname(t *testing.T) {
	valid := []string{"dns.google", "one.one.one.one", "dot.my-dns.example.com", "dns.google."}
	for _, h := range valid {
		if _, err := ValidateDNSHostname(h); err != nil {
			t.Errorf("ValidateDNSHostname(%q) = %v, want ok", h, err)
		}
	}
	invalid := []string{"", "dns google", "dns.google;reboot", "-leading.example", "trailing-.example", "a..b"}
	for _, h := range invalid {
		if _, err := ValidateDNSHostname(h); err == nil {
			t.Errorf("ValidateDNSHostname(%q) accepted, want error", h)
		}
	}
}
