package ui

import (
	"keystrokes/internal/domain"
	"keystrokes/internal/theme"
)

// VersionInfo holds version information for display in UI headers.
// Populated by the cmd layer from ldflags-injected values.
type VersionInfo struct {
	Tagline string
	Version string
}

// versionInfo holds the global version info set by SetVersionInfo
var versionInfo = VersionInfo{
	Tagline: "Keyboard shortcut reference browser for your terminal",
	Version: "dev",
}

// SetVersionInfo sets the global version info
func SetVersionInfo(info VersionInfo) {
	versionInfo = info
}

// headerStyles is the style set dialog headers render with. Model keeps it
// in sync with the active color scheme.
var headerStyles = theme.NewStyles(domain.SchemeDark)

// setHeaderStyles updates the styles used by dialog headers
func setHeaderStyles(styles theme.Styles) {
	headerStyles = styles
}

// renderDialogHeader creates a consistent header for dialogs: app name,
// tagline, and the dialog title.
//
// Only the Dialog wrapper in dialog.go should call this; form components
// get the header by being wrapped in a Dialog.
func renderDialogHeader(title string) string {
	result := headerStyles.AppName.Render("KeyStrokes")
	result += "\n"
	result += headerStyles.Tagline.Render(versionInfo.Tagline)
	if title != "" {
		result += "\n\n" + headerStyles.Subtitle.Render(title)
	}
	result += "\n"
	return result
}
