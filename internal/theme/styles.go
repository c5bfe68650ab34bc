package theme

import (
	"github.com/charmbracelet/lipgloss"

	"keystrokes/internal/domain"
)

// Styles is the complete set of lipgloss styles for one scheme. The UI
// rebuilds it whenever the actual scheme changes.
type Styles struct {
	Scheme domain.ColorScheme

	// Chrome
	AppName  lipgloss.Style
	Subtitle lipgloss.Style
	Tagline  lipgloss.Style
	Title    lipgloss.Style

	// Text
	Error     lipgloss.Style
	Highlight lipgloss.Style
	Muted     lipgloss.Style
	Normal    lipgloss.Style
	Subtle    lipgloss.Style

	// Content
	Bookmark   lipgloss.Style
	Breadcrumb lipgloss.Style
	KeyCap     lipgloss.Style

	// Sidebar
	SectionHeader lipgloss.Style
	SelectedRow   lipgloss.Style
	SidebarBorder lipgloss.Style

	// Help screen
	HelpDesc  lipgloss.Style
	HelpGroup lipgloss.Style
	HelpKey   lipgloss.Style
}

// NewStyles builds the style set for a concrete color scheme
func NewStyles(scheme domain.ColorScheme) Styles {
	p := PaletteFor(scheme)

	return Styles{
		Scheme: scheme,

		AppName: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary),

		Subtitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Secondary),

		Tagline: lipgloss.NewStyle().
			Foreground(p.Normal),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary).
			Padding(1, 0),

		Error: lipgloss.NewStyle().
			Foreground(p.Error).
			Bold(true),

		Highlight: lipgloss.NewStyle().
			Foreground(p.Highlight).
			Bold(true),

		Muted: lipgloss.NewStyle().
			Foreground(p.Muted),

		Normal: lipgloss.NewStyle().
			Foreground(p.Normal),

		Subtle: lipgloss.NewStyle().
			Foreground(p.Subtle),

		Bookmark: lipgloss.NewStyle().
			Foreground(p.Bookmark),

		Breadcrumb: lipgloss.NewStyle().
			Foreground(p.Secondary),

		KeyCap: lipgloss.NewStyle().
			Foreground(p.KeyCap).
			Bold(true),

		SectionHeader: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Secondary),

		SelectedRow: lipgloss.NewStyle().
			Foreground(p.Highlight).
			Background(p.Selected).
			Bold(true),

		SidebarBorder: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(p.Muted),

		HelpDesc: lipgloss.NewStyle().
			Foreground(p.Subtle),

		HelpGroup: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary).
			MarginTop(1),

		HelpKey: lipgloss.NewStyle().
			Foreground(p.Highlight).
			Bold(true).
			Width(25),
	}
}
