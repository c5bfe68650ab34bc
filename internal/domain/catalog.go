package domain

import (
	"regexp"
	"strings"
)

// Application is one documented application in the shortcut catalogue
type Application struct {
	Name        string     `json:"name"`
	Slug        string     `json:"slug"`
	Description string     `json:"description,omitempty"`
	Icon        string     `json:"icon,omitempty"`
	Platforms   []string   `json:"platforms,omitempty"`
	Categories  []Category `json:"categories"`
}

// Category groups related shortcuts within an application
type Category struct {
	Name      string     `json:"name"`
	Shortcuts []Shortcut `json:"shortcuts"`
}

// Shortcut documents a single keyboard shortcut. Either Keys or Variants is
// set, never both: Variants lists per-platform key sequences for shortcuts
// that differ between operating systems. Context names where the shortcut
// applies; Notes carries caveats worth calling out.
type Shortcut struct {
	Action      string       `json:"action"`
	Keys        string       `json:"keys,omitempty"`
	Variants    []KeyVariant `json:"variants,omitempty"`
	Description string       `json:"description,omitempty"`
	Context     string       `json:"context,omitempty"`
	Notes       string       `json:"notes,omitempty"`
}

// KeyVariant is a platform-specific key sequence for a shortcut
type KeyVariant struct {
	OS   string `json:"os"`
	Keys string `json:"keys"`
}

// HasVariants reports whether the shortcut uses per-platform key sequences
func (s Shortcut) HasVariants() bool {
	return len(s.Variants) > 0
}

var whitespaceRuns = regexp.MustCompile(`\s+`)

// ShortcutID derives the stable identifier for a shortcut from its position
// in the catalogue. The identifier is the lowercased concatenation of app
// slug, category name, and action joined by hyphens, with every run of
// whitespace collapsed to a single hyphen. All bookmark bookkeeping and
// lookups use this derivation, so it must stay deterministic.
func ShortcutID(appSlug, categoryName, action string) string {
	id := strings.ToLower(appSlug + "-" + categoryName + "-" + action)
	return whitespaceRuns.ReplaceAllString(id, "-")
}
