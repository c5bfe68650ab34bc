package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"keystrokes/internal/config"
)

// KeyMap contains all keyboard shortcuts organized by context
type KeyMap struct {
	Application ApplicationKeys
	Navigation  NavigationKeys
}

// NewKeyMap creates a new KeyMap with all key bindings initialized.
// Pass nil for keysConfig to use default bindings.
func NewKeyMap(keysConfig config.KeyBindingsConfig) KeyMap {
	defaults := GetDefaultKeyBindings()
	return KeyMap{
		Application: newApplicationKeys(defaults, keysConfig),
		Navigation:  newNavigationKeys(defaults, keysConfig),
	}
}

// ShortHelp returns a curated list of key bindings for the bottom bar
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Navigation.FocusSearch.Binding,
		k.Navigation.Bookmark.Binding,
		k.Application.ToggleTheme.Binding,
		k.Application.Settings.Binding,
		k.Application.Help.Binding,
		k.Application.Quit.Binding,
	}
}
