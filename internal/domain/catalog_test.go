package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShortcutID_Lowercases(t *testing.T) {
	tests := []struct {
		name     string
		appSlug  string
		category string
		action   string
		expected string
	}{
		{"all lowercase", "vscode", "editing", "copy", "vscode-editing-copy"},
		{"mixed case", "VSCode", "Editing", "Copy Line", "vscode-editing-copy-line"},
		{"upper action", "chrome", "tabs", "NEW TAB", "chrome-tabs-new-tab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ShortcutID(tt.appSlug, tt.category, tt.action)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestShortcutID_CollapsesWhitespaceRuns(t *testing.T) {
	tests := []struct {
		name     string
		appSlug  string
		category string
		action   string
		expected string
	}{
		{"single spaces", "vscode", "basic editing", "move line up", "vscode-basic-editing-move-line-up"},
		{"double spaces", "vscode", "basic  editing", "copy", "vscode-basic-editing-copy"},
		{"tab", "vscode", "basic\tediting", "copy", "vscode-basic-editing-copy"},
		{"mixed run", "vscode", "basic \t editing", "copy", "vscode-basic-editing-copy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ShortcutID(tt.appSlug, tt.category, tt.action)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestShortcutID_Deterministic(t *testing.T) {
	first := ShortcutID("slack", "Messages", "Mark All Read")
	second := ShortcutID("slack", "Messages", "Mark All Read")
	assert.Equal(t, first, second)
}

func TestShortcut_HasVariants(t *testing.T) {
	plain := Shortcut{Action: "copy", Keys: "ctrl+c"}
	assert.False(t, plain.HasVariants())

	varied := Shortcut{Action: "copy", Variants: []KeyVariant{
		{OS: "windows", Keys: "ctrl+c"},
		{OS: "macos", Keys: "cmd+c"},
	}}
	assert.True(t, varied.HasVariants())
}
