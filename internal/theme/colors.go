package theme

import (
	"github.com/charmbracelet/lipgloss"

	"keystrokes/internal/domain"
)

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Palette holds the colors for one rendering scheme
type Palette struct {
	Primary   Color // App name, titles
	Secondary Color // Subtitles, breadcrumb

	Error     Color
	Highlight Color // Emphasis
	Muted     Color // Secondary text
	Normal    Color // Default text
	Subtle    Color // Labels

	Bookmark Color // Bookmark markers
	KeyCap   Color // Rendered key sequences
	Selected Color // Cursor row background
}

// DarkPalette is the palette for dark terminal backgrounds
var DarkPalette = Palette{
	Primary:   "99",  // Purple
	Secondary: "86",  // Cyan
	Error:     "196", // Bright red
	Highlight: "255", // White
	Muted:     "241", // Gray
	Normal:    "250",
	Subtle:    "245",
	Bookmark:  "220", // Yellow
	KeyCap:    "213", // Pink
	Selected:  "237", // Dark gray
}

// LightPalette is the palette for light terminal backgrounds
var LightPalette = Palette{
	Primary:   "55",  // Purple
	Secondary: "30",  // Teal
	Error:     "160", // Red
	Highlight: "232", // Near black
	Muted:     "246", // Gray
	Normal:    "235",
	Subtle:    "242",
	Bookmark:  "130", // Brown-gold
	KeyCap:    "126", // Magenta
	Selected:  "253", // Light gray
}

// PaletteFor returns the palette for a concrete color scheme
func PaletteFor(scheme domain.ColorScheme) Palette {
	if scheme == domain.SchemeLight {
		return LightPalette
	}
	return DarkPalette
}
