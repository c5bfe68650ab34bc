package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"keystrokes/internal/theme"
)

// Tip holds a tip format string and the keys to highlight
type Tip struct {
	Format string
	Keys   []string
}

// tips is the private collection of all tips, populated by newTip()
var tips []Tip

// newTip registers a tip with format string and keys to highlight
// Format uses %s placeholders for keys, e.g. newTip("press %s to search", "/")
func newTip(format string, keys ...string) string {
	tips = append(tips, Tip{Format: format, Keys: keys})
	// Return plain text for the Tip field
	args := make([]any, len(keys))
	for i, k := range keys {
		args[i] = k
	}
	return fmt.Sprintf(format, args...)
}

// GetTips returns all registered tips
func GetTips() []Tip {
	return tips
}

// RenderTip renders a tip with its keys highlighted
func RenderTip(tip Tip, styles theme.Styles) string {
	// Split format by %s to get text segments
	parts := strings.Split(tip.Format, "%s")
	var result string
	result += styles.Muted.Render("tip: ")
	for i, part := range parts {
		result += styles.Subtle.Render(part)
		if i < len(tip.Keys) {
			result += styles.KeyCap.Render(tip.Keys[i])
		}
	}
	return result
}

// KeyWithTip wraps a key.Binding with an optional tip for footer display.
type KeyWithTip struct {
	Binding key.Binding
	Tip     string
}
