package ui

import "keystrokes/internal/domain"

// Action messages. Each type represents one user intention; Model handles
// them in updateBrowse() and performs the state change.

// QuitMsg requests quitting the application
type QuitMsg struct{}

// ShowHelpMsg requests showing the help screen
type ShowHelpMsg struct{}

// ShowSettingsMsg requests showing the settings dialog
type ShowSettingsMsg struct{}

// ShowLoginMsg requests showing the login dialog
type ShowLoginMsg struct{}

// ToggleThemeMsg requests switching to the opposite color scheme
type ToggleThemeMsg struct{}

// FocusSearchMsg requests moving focus to the sidebar search box
type FocusSearchMsg struct{}

// GoHomeMsg requests navigating to the welcome view
type GoHomeMsg struct{}

// BackMsg requests the escape cascade: hide the sidebar on narrow
// terminals, otherwise go home. Dialog states close themselves.
type BackMsg struct{}

// ToggleSidebarMsg requests showing or hiding the sidebar
type ToggleSidebarMsg struct{}

// ToggleBookmarkMsg requests toggling the bookmark on the shortcut
// currently shown in detail. Ignored outside the shortcut view.
type ToggleBookmarkMsg struct{}

// NavigateMsg requests showing a view in the content pane
type NavigateMsg struct {
	View domain.View
}

// EnableAppMsg requests enabling a disabled application
type EnableAppMsg struct {
	Slug string
}

// ToggleAppMsg requests toggling an application's enablement
type ToggleAppMsg struct {
	Slug string
}

// LogoutMsg requests logging the current user out
type LogoutMsg struct{}

// ClearAllDataMsg requests removing every persisted preference
type ClearAllDataMsg struct{}

// SchemeChangedMsg reports that the host environment's color scheme flipped
// while the theme preference follows it
type SchemeChangedMsg struct {
	Scheme domain.ColorScheme
}

// focusContentMsg moves keyboard focus to the content pane. It is scheduled
// through the command queue when navigating home so it lands after the view
// has rendered.
type focusContentMsg struct{}
