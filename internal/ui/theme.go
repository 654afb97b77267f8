package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines colors for the UI.
type Theme struct {
	Name string

	// Base colors
	Background string // Outermost background
	Surface    string // Header and status bars
	FocusBg    string // Log pane

	// Search highlight
	MatchBg     string
	MatchText   string
	PassiveText string

	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string
	Info    string

	// LevelColors maps an upper-case log level to its color.
	LevelColors map[string]string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)).
			Bold(true),

		Match: lipgloss.NewStyle().
			Background(lipgloss.Color(t.MatchBg)).
			Foreground(lipgloss.Color(t.MatchText)),

		PassiveMatch: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.PassiveText)),

		levelColors: t.LevelColors,
		text:        t.Text,
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style

	Header       lipgloss.Style
	Logo         lipgloss.Style
	Match        lipgloss.Style
	PassiveMatch lipgloss.Style

	levelColors map[string]string
	text        string
}

var levelAliases = map[string]string{
	"WARNING":  "WARN",
	"ERR":      "ERROR",
	"CRITICAL": "FATAL",
	"CRIT":     "FATAL",
}

// LevelStyle returns a bold style for a log level. Unknown levels use the
// plain text color.
func (s Styles) LevelStyle(level string) lipgloss.Style {
	level = strings.ToUpper(strings.TrimSpace(level))
	if alias, ok := levelAliases[level]; ok {
		level = alias
	}
	color := s.levelColors[level]
	if color == "" {
		color = s.text
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(true)
}

// WithBackground returns a copy of Styles with every text style painted on
// bgColor, so segments joined by BgStyle leave no gaps.
func (s Styles) WithBackground(bgColor string) Styles {
	bg := lipgloss.Color(bgColor)
	return Styles{
		Text:         s.Text.Background(bg),
		MutedText:    s.MutedText.Background(bg),
		FaintText:    s.FaintText.Background(bg),
		AccentText:   s.AccentText.Background(bg),
		SuccessText:  s.SuccessText.Background(bg),
		WarningText:  s.WarningText.Background(bg),
		DangerText:   s.DangerText.Background(bg),
		Header:       s.Header.Background(bg),
		Logo:         s.Logo.Background(bg),
		Match:        s.Match,
		PassiveMatch: s.PassiveMatch.Background(bg),
		levelColors:  s.levelColors,
		text:         s.text,
	}
}

// Theme definitions

var themes = map[string]Theme{
	"Nightfox": nightfoxTheme(),
	"Kanagawa": kanagawaTheme(),
	"Slate":    slateTheme(),
}

var themeOrder = []string{"Nightfox", "Kanagawa", "Slate"}

// GetTheme returns a theme by name, falling back to Nightfox.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return nightfoxTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func nightfoxTheme() Theme {
	// Nightfox palette: https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name: "Nightfox",

		Background: "#131a24", // bg0
		Surface:    "#192330", // bg1
		FocusBg:    "#212e3f", // bg2

		MatchBg:     "#dbc074", // yellow
		MatchText:   "#131a24", // bg0
		PassiveText: "#719cd6", // blue

		Text:    "#cdcecf", // fg1
		Muted:   "#738091", // comment
		Faint:   "#71839b", // fg3
		Accent:  "#719cd6", // blue
		Success: "#81b29a", // green
		Warning: "#dbc074", // yellow
		Danger:  "#c94f6d", // red
		Info:    "#63cdcf", // cyan

		LevelColors: map[string]string{
			"TRACE": "#71839b", // fg3
			"DEBUG": "#63cdcf", // cyan
			"INFO":  "#81b29a", // green
			"WARN":  "#dbc074", // yellow
			"ERROR": "#c94f6d", // red
			"FATAL": "#d16983", // red bright
		},
	}
}

func kanagawaTheme() Theme {
	// Kanagawa palette: https://github.com/rebelot/kanagawa.nvim
	return Theme{
		Name: "Kanagawa",

		Background: "#16161D", // sumiInk0
		Surface:    "#1F1F28", // sumiInk3
		FocusBg:    "#2A2A37", // sumiInk4

		MatchBg:     "#E6C384", // carpYellow
		MatchText:   "#16161D", // sumiInk0
		PassiveText: "#7E9CD8", // crystalBlue

		Text:    "#DCD7BA", // fujiWhite
		Muted:   "#C8C093", // oldWhite
		Faint:   "#727169", // fujiGray
		Accent:  "#7E9CD8", // crystalBlue
		Success: "#98BB6C", // springGreen
		Warning: "#E6C384", // carpYellow
		Danger:  "#E46876", // waveRed
		Info:    "#7FB4CA", // springBlue

		LevelColors: map[string]string{
			"TRACE": "#727169", // fujiGray
			"DEBUG": "#7FB4CA", // springBlue
			"INFO":  "#98BB6C", // springGreen
			"WARN":  "#E6C384", // carpYellow
			"ERROR": "#E46876", // waveRed
			"FATAL": "#FF5D62", // peachRed
		},
	}
}

func slateTheme() Theme {
	// Tailwind CSS Slate/Sky palette: https://tailwindcss.com/docs/colors
	return Theme{
		Name: "Slate",

		Background: "#020617", // slate-950
		Surface:    "#0f172a", // slate-900
		FocusBg:    "#1e293b", // slate-800

		MatchBg:     "#f59e0b", // amber-500
		MatchText:   "#020617", // slate-950
		PassiveText: "#38bdf8", // sky-400

		Text:    "#f1f5f9", // slate-100
		Muted:   "#94a3b8", // slate-400
		Faint:   "#64748b", // slate-500
		Accent:  "#38bdf8", // sky-400
		Success: "#22c55e", // green-500
		Warning: "#f59e0b", // amber-500
		Danger:  "#ef4444", // red-500
		Info:    "#06b6d4", // cyan-500

		LevelColors: map[string]string{
			"TRACE": "#64748b", // slate-500
			"DEBUG": "#06b6d4", // cyan-500
			"INFO":  "#22c55e", // green-500
			"WARN":  "#f59e0b", // amber-500
			"ERROR": "#ef4444", // red-500
			"FATAL": "#dc2626", // red-600
		},
	}
}
