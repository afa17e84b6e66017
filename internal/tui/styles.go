package tui

import (
	"github.com/charmbracelet/lipgloss"

	"lazytree/internal/config"
)

// Styles bundles the lipgloss styles used by the browser view. Colors
// come from the configured theme.
type Styles struct {
	Title       lipgloss.Style
	Cursor      lipgloss.Style
	Folder      lipgloss.Style
	File        lipgloss.Style
	Error       lipgloss.Style
	Selected    lipgloss.Style
	Placeholder lipgloss.Style
	Status      lipgloss.Style
	Help        lipgloss.Style
}

// NewStyles builds the style set from the config theme colors.
func NewStyles(cfg *config.Config) Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#4F4FB7")).
			Padding(0, 1),
		Cursor: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#6B5ECD")).
			Bold(true),
		Folder: lipgloss.NewStyle().
			Foreground(lipgloss.Color(cfg.Theme.Folder)).
			Bold(true),
		File: lipgloss.NewStyle().
			Foreground(lipgloss.Color(cfg.Theme.File)),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(cfg.Theme.Error)),
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color(cfg.Theme.Selected)),
		Placeholder: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#959595")),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")),
	}
}
