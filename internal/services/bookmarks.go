package services

import (
	"context"

	"keystrokes/internal/catalog"
	"keystrokes/internal/domain"
	"keystrokes/internal/logging"
)

// BookmarksService manages the user's bookmarked shortcuts. The in-memory
// set is authoritative; every mutation is persisted best-effort and a failed
// write never rolls the mutation back.
type BookmarksService struct {
	bookmarks domain.BookmarkSet
	index     *catalog.Index
	prefs     *PreferencesService
}

// NewBookmarksService creates a BookmarksService seeded from the persisted
// bookmark set
func NewBookmarksService(ctx context.Context, prefs *PreferencesService, index *catalog.Index) *BookmarksService {
	return &BookmarksService{
		bookmarks: prefs.LoadBookmarks(ctx),
		index:     index,
		prefs:     prefs,
	}
}

// Toggle flips the bookmark state of a shortcut and persists the result.
// It returns whether the shortcut is bookmarked after the call and whether
// persisting succeeded.
func (s *BookmarksService) Toggle(ctx context.Context, appSlug, shortcutID string) (bookmarked, persisted bool) {
	bookmarked = s.bookmarks.Toggle(appSlug, shortcutID)
	persisted = s.prefs.SaveBookmarks(ctx, s.bookmarks)
	logging.Logger.Debug("Bookmark toggled",
		"app", appSlug,
		"shortcut", shortcutID,
		"bookmarked", bookmarked,
		"persisted", persisted)
	return bookmarked, persisted
}

// IsBookmarked reports whether a shortcut is bookmarked. Unknown app slugs
// report false.
func (s *BookmarksService) IsBookmarked(appSlug, shortcutID string) bool {
	return s.bookmarks.Contains(appSlug, shortcutID)
}

// AppBookmarks returns the bookmarked shortcuts of one application in
// catalogue order, regardless of the order the bookmarks were added in.
func (s *BookmarksService) AppBookmarks(appSlug string) []catalog.Entry {
	app, ok := s.index.App(appSlug)
	if !ok {
		return nil
	}

	var entries []catalog.Entry
	for _, category := range app.Categories {
		for _, shortcut := range category.Shortcuts {
			id := domain.ShortcutID(app.Slug, category.Name, shortcut.Action)
			if !s.bookmarks.Contains(appSlug, id) {
				continue
			}
			if entry, found := s.index.Entry(id); found {
				entries = append(entries, entry)
			}
		}
	}
	return entries
}

// CountForApp returns the number of bookmarks for one application
func (s *BookmarksService) CountForApp(appSlug string) int {
	return s.bookmarks.CountForApp(appSlug)
}

// Total returns the number of bookmarks across all applications
func (s *BookmarksService) Total() int {
	return s.bookmarks.Total()
}

// All returns a copy of the current bookmark set
func (s *BookmarksService) All() domain.BookmarkSet {
	out := domain.BookmarkSet{}
	for slug, ids := range s.bookmarks {
		out[slug] = append([]string(nil), ids...)
	}
	return out
}

// Clear removes every bookmark and persists the empty set
func (s *BookmarksService) Clear(ctx context.Context) (persisted bool) {
	s.bookmarks = domain.BookmarkSet{}
	persisted = s.prefs.SaveBookmarks(ctx, s.bookmarks)
	logging.Logger.Debug("Bookmarks cleared", "persisted", persisted)
	return persisted
}

// Reset replaces the in-memory set with the persisted one. Used after
// clearing all data.
func (s *BookmarksService) Reset(ctx context.Context) {
	s.bookmarks = s.prefs.LoadBookmarks(ctx)
}
