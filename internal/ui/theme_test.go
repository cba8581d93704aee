package ui

import "testing"

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) != 3 {
		t.Fatalf("ThemeNames() returned %d names, want 3", len(names))
	}
	if names[0] != "Dracula" {
		t.Fatalf("ThemeNames()[0] = %q, want Dracula", names[0])
	}
}

func TestNextTheme(t *testing.T) {
	seen := map[string]bool{}
	name := "Dracula"
	for range ThemeNames() {
		seen[name] = true
		name = NextTheme(name)
	}
	if name != "Dracula" {
		t.Fatalf("cycle did not return to Dracula, ended at %q", name)
	}
	if len(seen) != len(ThemeNames()) {
		t.Fatalf("cycle visited %d themes, want %d", len(seen), len(ThemeNames()))
	}
	if got := NextTheme("unknown"); got != "Dracula" {
		t.Fatalf("NextTheme(unknown) = %q, want Dracula", got)
	}
}

func TestGetThemeFallback(t *testing.T) {
	if got := GetTheme("Slate").Name; got != "Slate" {
		t.Fatalf("GetTheme(Slate).Name = %q", got)
	}
	if got := GetTheme("missing").Name; got != "Dracula" {
		t.Fatalf("GetTheme(missing).Name = %q, want Dracula", got)
	}
}

func TestThemesDefineEveryColor(t *testing.T) {
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		colors := map[string]string{
			"Background": th.Background, "Surface": th.Surface, "SelectionBg": th.SelectionBg,
			"Text": th.Text, "Muted": th.Muted, "Accent": th.Accent, "Danger": th.Danger, "Info": th.Info,
		}
		for field, value := range colors {
			if value == "" {
				t.Fatalf("%s: %s is empty", name, field)
			}
		}
	}
}

func TestTruncateMiddle(t *testing.T) {
	tests := []struct {
		in    string
		limit int
		want  string
	}{
		{"short", 10, "short"},
		{"Toronto Maple Leafs", 10, "Tor… Leafs"},
		{"abcdefgh", 4, "abcd"},
		{"anything", 0, ""},
	}
	for _, tt := range tests {
		if got := truncateMiddle(tt.in, tt.limit); got != tt.want {
			t.Fatalf("truncateMiddle(%q, %d) = %q, want %q", tt.in, tt.limit, got, tt.want)
		}
	}
}

func TestClassifyConnectionError(t *testing.T) {
	tests := []struct {
		msg  string
		want string
	}{
		{"dial tcp: connect: connection refused", "OFFLINE"},
		{"lookup api-web.nhle.com: no such host", "HOST NOT FOUND"},
		{"context deadline exceeded", "TIMEOUT"},
		{"api /v1/score/now returned status 503", "API ERROR"},
		{"weird", "ERROR"},
	}
	for _, tt := range tests {
		if got := classifyConnectionError(errString(tt.msg)); got != tt.want {
			t.Fatalf("classifyConnectionError(%q) = %q, want %q", tt.msg, got, tt.want)
		}
	}
	if got := classifyConnectionError(nil); got != "" {
		t.Fatalf("classifyConnectionError(nil) = %q", got)
	}
}

type errString string

func (e errString) Error() string { return string(e) }
