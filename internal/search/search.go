// Package search implements substring search over the shortcut catalogue.
package search

import (
	"strings"

	"keystrokes/internal/catalog"
	"keystrokes/internal/domain"
)

// MinQueryLength is the minimum number of characters before a query runs.
// Shorter queries always return no results.
const MinQueryLength = 2

// MatchType labels which field of a shortcut matched the query
type MatchType string

const (
	MatchAction      MatchType = "action"
	MatchDescription MatchType = "description"
	MatchCategory    MatchType = "category"
	MatchKeys        MatchType = "keys"
)

// Result is one matching shortcut with its catalogue context
type Result struct {
	Entry     catalog.Entry
	MatchType MatchType
}

// Engine searches the catalogue. It holds no mutable state and is safe for
// concurrent use.
type Engine struct {
	index *catalog.Index
}

// NewEngine creates a search engine over the given catalogue index
func NewEngine(index *catalog.Index) *Engine {
	return &Engine{index: index}
}

// Search returns every shortcut of the enabled applications matching the
// query, in catalogue traversal order. Matching is case-insensitive
// substring matching. Each result is labeled with the first field that
// matched, checked in the order action, description, category, keys.
func (e *Engine) Search(query string, enabledSlugs []string) []Result {
	query = strings.ToLower(strings.TrimSpace(query))
	if len(query) < MinQueryLength {
		return nil
	}

	enabled := make(map[string]bool, len(enabledSlugs))
	for _, slug := range enabledSlugs {
		enabled[slug] = true
	}

	var results []Result
	for _, app := range e.index.Apps() {
		if !enabled[app.Slug] {
			continue
		}
		for _, category := range app.Categories {
			categoryMatches := strings.Contains(strings.ToLower(category.Name), query)
			for _, shortcut := range category.Shortcuts {
				matchType, ok := classify(shortcut, categoryMatches, query)
				if !ok {
					continue
				}
				id := domain.ShortcutID(app.Slug, category.Name, shortcut.Action)
				entry, found := e.index.Entry(id)
				if !found {
					continue
				}
				results = append(results, Result{Entry: entry, MatchType: matchType})
			}
		}
	}
	return results
}

// classify reports whether the shortcut matches and which field matched
// first. The key sequences of every platform variant participate in key
// matching alongside the plain keys field.
func classify(shortcut domain.Shortcut, categoryMatches bool, query string) (MatchType, bool) {
	if strings.Contains(strings.ToLower(shortcut.Action), query) {
		return MatchAction, true
	}
	if strings.Contains(strings.ToLower(shortcut.Description), query) {
		return MatchDescription, true
	}
	if categoryMatches {
		return MatchCategory, true
	}
	if shortcut.Keys != "" && strings.Contains(strings.ToLower(shortcut.Keys), query) {
		return MatchKeys, true
	}
	for _, variant := range shortcut.Variants {
		if strings.Contains(strings.ToLower(variant.Keys), query) {
			return MatchKeys, true
		}
	}
	return "", false
}
