package ui

import (
	"sort"
	"sync"
)

// KeyDefinition defines the metadata for a configurable key binding.
// All key bindings are defined here as the single source of truth.
type KeyDefinition struct {
	Defaults  []string
	Help      string
	Name      string
	TipFormat string
}

// AllKeyDefinitions contains all configurable key bindings.
// This is the single source of truth for key names, defaults, help text,
// and tips.
var AllKeyDefinitions = []KeyDefinition{
	// Application keys
	{Name: "force_quit", Defaults: []string{"ctrl+c"}, Help: "force quit"},
	{Name: "help", Defaults: []string{"?"}, Help: "show keyboard shortcuts", TipFormat: "press %s to see all shortcuts"},
	{Name: "quit", Defaults: []string{"q"}, Help: "exit application"},
	{Name: "settings", Defaults: []string{"ctrl+,"}, Help: "open settings", TipFormat: "press %s to open settings"},
	{Name: "toggle_theme", Defaults: []string{"ctrl+d"}, Help: "toggle light/dark theme", TipFormat: "press %s to switch the color theme"},

	// Navigation keys
	{Name: "back", Defaults: []string{"esc"}, Help: "back / close"},
	{Name: "down", Defaults: []string{"down", "j"}, Help: "select next entry"},
	{Name: "focus_search", Defaults: []string{"ctrl+k", "/"}, Help: "search shortcuts", TipFormat: "press %s to search across all shortcuts"},
	{Name: "home", Defaults: []string{"ctrl+h"}, Help: "go to welcome view"},
	{Name: "select", Defaults: []string{"enter"}, Help: "open selected entry"},
	{Name: "sidebar", Defaults: []string{"alt+s"}, Help: "toggle sidebar", TipFormat: "press %s to hide or show the sidebar"},
	{Name: "up", Defaults: []string{"up", "k"}, Help: "select previous entry"},

	// Shortcut view keys
	{Name: "bookmark", Defaults: []string{"ctrl+b"}, Help: "bookmark shortcut", TipFormat: "press %s to bookmark the shown shortcut"},
}

var (
	defaultBindingsCache map[string][]string
	defaultBindingsOnce  sync.Once

	keyDefinitionsMap     map[string]KeyDefinition
	keyDefinitionsMapOnce sync.Once

	validKeyNames     []string
	validKeyNamesOnce sync.Once
)

// GetDefaultKeyBindings returns the default key bindings as a map.
// The result is cached after the first call.
func GetDefaultKeyBindings() map[string][]string {
	defaultBindingsOnce.Do(func() {
		defaultBindingsCache = make(map[string][]string, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			defaultBindingsCache[def.Name] = def.Defaults
		}
	})
	return defaultBindingsCache
}

// GetKeyDefinition returns the definition for a key by name.
// Returns nil if not found.
func GetKeyDefinition(name string) *KeyDefinition {
	keyDefinitionsMapOnce.Do(func() {
		keyDefinitionsMap = make(map[string]KeyDefinition, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			keyDefinitionsMap[def.Name] = def
		}
	})
	if def, ok := keyDefinitionsMap[name]; ok {
		return &def
	}
	return nil
}

// GetValidKeyNames returns all valid key binding names in sorted order.
// The result is cached after the first call.
func GetValidKeyNames() []string {
	validKeyNamesOnce.Do(func() {
		validKeyNames = make([]string, len(AllKeyDefinitions))
		for i, def := range AllKeyDefinitions {
			validKeyNames[i] = def.Name
		}
		sort.Strings(validKeyNames)
	})
	return validKeyNames
}

// IsValidKeyName checks if a name is a valid key binding name.
func IsValidKeyName(name string) bool {
	return GetKeyDefinition(name) != nil
}
