package domain

// BookmarkSet holds bookmarked shortcut identifiers grouped by application
// slug. The per-app slices keep insertion order, which is the order the
// identifiers serialize in. Presentation order comes from the catalogue, not
// from this structure.
type BookmarkSet map[string][]string

// Toggle adds the identifier under the app slug if absent, removes it if
// present. Returns true when the identifier is bookmarked after the call.
func (b BookmarkSet) Toggle(appSlug, shortcutID string) bool {
	ids := b[appSlug]
	for i, id := range ids {
		if id == shortcutID {
			b[appSlug] = append(ids[:i], ids[i+1:]...)
			if len(b[appSlug]) == 0 {
				delete(b, appSlug)
			}
			return false
		}
	}
	b[appSlug] = append(ids, shortcutID)
	return true
}

// Contains reports whether the identifier is bookmarked under the app slug.
// Unknown app slugs report false.
func (b BookmarkSet) Contains(appSlug, shortcutID string) bool {
	for _, id := range b[appSlug] {
		if id == shortcutID {
			return true
		}
	}
	return false
}

// CountForApp returns the number of bookmarks stored under the app slug
func (b BookmarkSet) CountForApp(appSlug string) int {
	return len(b[appSlug])
}

// Total returns the number of bookmarks across all applications
func (b BookmarkSet) Total() int {
	total := 0
	for _, ids := range b {
		total += len(ids)
	}
	return total
}
