// Package render draws the list, detail and not-found views for the
// terminal, switching between a light and a dark colour theme.
package render

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour palette used by the views.
type Theme struct {
	Primary    lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
	Badge      lipgloss.Color
}

// DarkTheme returns the palette for dark terminals.
func DarkTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#60A5FA"),
		Foreground: lipgloss.Color("#E5E7EB"),
		Muted:      lipgloss.Color("#9CA3AF"),
		Success:    lipgloss.Color("#86EFAC"),
		Warning:    lipgloss.Color("#FDE68A"),
		Error:      lipgloss.Color("#FCA5A5"),
		Badge:      lipgloss.Color("#1E3A8A"),
	}
}

// LightTheme returns the palette for light terminals.
func LightTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#2563EB"),
		Foreground: lipgloss.Color("#111827"),
		Muted:      lipgloss.Color("#6B7280"),
		Success:    lipgloss.Color("#15803D"),
		Warning:    lipgloss.Color("#A16207"),
		Error:      lipgloss.Color("#B91C1C"),
		Badge:      lipgloss.Color("#DBEAFE"),
	}
}

// Styles contains the pre-configured lipgloss styles built from a theme.
type Styles struct {
	theme *Theme

	Title    lipgloss.Style
	Header   lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Skill    lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style
	Error    lipgloss.Style
	NotFound lipgloss.Style
}

// NewStyles creates styles from a theme. A nil theme falls back to the
// light palette.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = LightTheme()
	}

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Muted),

		Normal: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Skill: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Background(theme.Badge).
			Padding(0, 1),

		Success: lipgloss.NewStyle().
			Foreground(theme.Success),

		Warning: lipgloss.NewStyle().
			Foreground(theme.Warning),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),

		NotFound: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Error),
	}
}

// Theme returns the theme the styles were built from.
func (s *Styles) Theme() *Theme {
	return s.theme
}
