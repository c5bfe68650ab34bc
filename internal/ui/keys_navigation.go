package ui

import "keystrokes/internal/config"

// NavigationKeys defines key bindings for moving around the catalogue
type NavigationKeys struct {
	Back        KeyWithTip
	Bookmark    KeyWithTip
	Down        KeyWithTip
	FocusSearch KeyWithTip
	Home        KeyWithTip
	Select      KeyWithTip
	Sidebar     KeyWithTip
	Up          KeyWithTip
}

// newNavigationKeys creates navigation key bindings
func newNavigationKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) NavigationKeys {
	return NavigationKeys{
		Back:        buildBinding("back", defaults, customKeys),
		Bookmark:    buildBinding("bookmark", defaults, customKeys),
		Down:        buildBinding("down", defaults, customKeys),
		FocusSearch: buildBinding("focus_search", defaults, customKeys),
		Home:        buildBinding("home", defaults, customKeys),
		Select:      buildBinding("select", defaults, customKeys),
		Sidebar:     buildBinding("sidebar", defaults, customKeys),
		Up:          buildBinding("up", defaults, customKeys),
	}
}
