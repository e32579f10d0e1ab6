// Package tui implements the terminal front end: one page per view
// (search, results, report, history, assistant) behind a navigation
// shell, each page talking to the backend through the api client.
package tui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Semantic colors, shared by both themes.
	colorDanger  = lipgloss.Color("#e53935") // red
	colorSuccess = lipgloss.Color("#26a69a") // teal
	colorWarning = lipgloss.Color("#FFC107") // amber
	colorInfo    = lipgloss.Color("#2196F3") // blue

	// Risk meter bands, low to critical.
	bandLow      = lipgloss.Color("#4db6ac") // teal
	bandMedium   = lipgloss.Color("#ffd54f") // amber
	bandHigh     = lipgloss.Color("#ff8a65") // orange-red
	bandCritical = colorDanger
)

// RiskBandColor maps a 0-100 risk score onto its meter color. Pure
// function; the band cutoffs are part of the UI contract.
func RiskBandColor(score int) lipgloss.Color {
	switch {
	case score >= 70:
		return bandCritical
	case score >= 45:
		return bandHigh
	case score >= 25:
		return bandMedium
	default:
		return bandLow
	}
}

// Theme holds the current color scheme.
type Theme struct {
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	IsDark     bool
}

func LightTheme() Theme {
	return Theme{
		Foreground: lipgloss.Color("#101F38"),
		Primary:    lipgloss.Color("#101F38"),
		Accent:     lipgloss.Color("#00897b"),
		Muted:      lipgloss.Color("#8a93a3"),
		Border:     lipgloss.Color("#dce0e5"),
		IsDark:     false,
	}
}

func DarkTheme() Theme {
	return Theme{
		Foreground: lipgloss.Color("#f2f2f2"),
		Primary:    lipgloss.Color("#4db6ac"),
		Accent:     lipgloss.Color("#4db6ac"),
		Muted:      lipgloss.Color("#6b7789"),
		Border:     lipgloss.Color("#2a3850"),
		IsDark:     true,
	}
}

// DetectTheme picks a theme from the terminal background. COLORFGBG is
// "foreground;background"; ANSI background indexes 0-6 and 8 read as
// dark.
func DetectTheme() Theme {
	if colorTerm := os.Getenv("COLORFGBG"); colorTerm != "" {
		parts := strings.Split(colorTerm, ";")
		if len(parts) == 2 {
			if bgIdx, err := strconv.Atoi(parts[1]); err == nil {
				if (bgIdx >= 0 && bgIdx <= 6) || bgIdx == 8 {
					return DarkTheme()
				}
			}
		}
	}
	if os.Getenv("TRACER_DARK_MODE") == "1" {
		return DarkTheme()
	}
	return LightTheme()
}

// Styles holds the styled components shared by all pages.
type Styles struct {
	Theme Theme

	Header  lipgloss.Style
	Content lipgloss.Style
	Footer  lipgloss.Style

	Title lipgloss.Style
	Body  lipgloss.Style
	Muted lipgloss.Style
	Bold  lipgloss.Style
	Label lipgloss.Style
	Value lipgloss.Style

	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	Badge    lipgloss.Style
	NavItem  lipgloss.Style
	NavSel   lipgloss.Style
	Card     lipgloss.Style
	Divider  lipgloss.Style
	Spinner  lipgloss.Style
	InputBox lipgloss.Style
}

func NewStyles(theme Theme) Styles {
	return Styles{
		Theme: theme,

		Header: lipgloss.NewStyle().
			Background(theme.Primary).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 2).
			Bold(true),

		Content: lipgloss.NewStyle().
			Padding(1, 2),

		Footer: lipgloss.NewStyle().
			Foreground(theme.Muted).
			MarginTop(1),

		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			MarginBottom(1),

		Body: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Bold: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),

		Label: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Width(16),

		Value: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Success: lipgloss.NewStyle().
			Foreground(colorSuccess).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(colorDanger).
			Bold(true),

		Warning: lipgloss.NewStyle().
			Foreground(colorWarning).
			Bold(true),

		Info: lipgloss.NewStyle().
			Foreground(colorInfo),

		Badge: lipgloss.NewStyle().
			Background(theme.Accent).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 1).
			Bold(true),

		NavItem: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 1),

		NavSel: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(theme.Accent).
			Padding(0, 1).
			Bold(true),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		Divider: lipgloss.NewStyle().
			Foreground(theme.Border),

		Spinner: lipgloss.NewStyle().
			Foreground(theme.Accent),

		InputBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Accent).
			Padding(0, 1),
	}
}

func DefaultStyles() Styles {
	return NewStyles(DetectTheme())
}

// RenderDivider returns a horizontal rule of the given width.
func (s Styles) RenderDivider(width int) string {
	if width <= 0 {
		width = 40
	}
	return s.Divider.Render(strings.Repeat("─", width))
}

// RenderRiskMeter draws the 0-100 risk meter with the band color.
func (s Styles) RenderRiskMeter(score, width int) string {
	if width < 10 {
		width = 10
	}
	// Scores outside 0-100 would under/overflow the bar.
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	filled := score * width / 100
	color := RiskBandColor(score)
	bar := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled)) +
		s.Muted.Render(strings.Repeat("░", width-filled))
	label := lipgloss.NewStyle().Foreground(color).Bold(true).Render(strconv.Itoa(score) + "/100")
	return bar + " " + label
}
