package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestGetTheme(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Nightfox", "Nightfox"},
		{"Kanagawa", "Kanagawa"},
		{"Slate", "Slate"},
		{"Dracula", "Nightfox"},
		{"", "Nightfox"},
	}
	for _, tt := range tests {
		if got := GetTheme(tt.name).Name; got != tt.want {
			t.Errorf("GetTheme(%q).Name = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestNextThemeCycles(t *testing.T) {
	names := ThemeNames()
	current := names[0]
	for i := 1; i <= len(names); i++ {
		current = NextTheme(current)
		if want := names[i%len(names)]; current != want {
			t.Fatalf("step %d: NextTheme = %q, want %q", i, current, want)
		}
	}
	if got := NextTheme("unknown"); got != names[0] {
		t.Errorf("NextTheme(unknown) = %q, want %q", got, names[0])
	}
}

func TestThemesDefineEveryLevel(t *testing.T) {
	for _, name := range ThemeNames() {
		theme := GetTheme(name)
		for _, level := range []string{"TRACE", "DEBUG", "INFO", "WARN", "ERROR", "FATAL"} {
			if theme.LevelColors[level] == "" {
				t.Errorf("%s: no color for %s", name, level)
			}
		}
	}
}

func TestLevelStyleAliases(t *testing.T) {
	theme := GetTheme("Nightfox")
	styles := theme.Styles()

	tests := []struct {
		level string
		want  string
	}{
		{"warn", theme.LevelColors["WARN"]},
		{"WARNING", theme.LevelColors["WARN"]},
		{"err", theme.LevelColors["ERROR"]},
		{" critical ", theme.LevelColors["FATAL"]},
		{"crit", theme.LevelColors["FATAL"]},
		{"NOTICE", theme.Text},
	}
	for _, tt := range tests {
		style := styles.LevelStyle(tt.level)
		if got := style.GetForeground(); got != lipgloss.Color(tt.want) {
			t.Errorf("LevelStyle(%q) foreground = %v, want %v", tt.level, got, tt.want)
		}
		if !style.GetBold() {
			t.Errorf("LevelStyle(%q) is not bold", tt.level)
		}
	}

	// Level colors survive the header background.
	onSurface := styles.WithBackground(theme.Surface)
	if got := onSurface.LevelStyle("info").GetForeground(); got != lipgloss.Color(theme.LevelColors["INFO"]) {
		t.Errorf("WithBackground lost level colors: %v", got)
	}
}
