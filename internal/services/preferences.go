package services

import (
	"context"
	"encoding/json"

	"keystrokes/internal/domain"
	"keystrokes/internal/logging"
	"keystrokes/internal/ports"
)

// Persistence keys. These are part of the on-disk contract and must not
// change between releases.
const (
	KeyBookmarks   = "bookmarks"
	KeyEnabledApps = "enabledApps"
	KeyTheme       = "theme"
	KeyUser        = "user"
)

// DefaultEnabledApps is the enablement list used when nothing is persisted
// yet. New installations start with a single app enabled.
var DefaultEnabledApps = []string{"adobe-acrobat-reader"}

// PreferencesService loads and saves typed preference values on top of the
// raw key-value store. Loads never fail: malformed or missing values degrade
// to defaults. Saves report success as a boolean so callers can keep their
// in-memory state authoritative and surface a warning instead of aborting.
type PreferencesService struct {
	store ports.PreferenceStore
}

// NewPreferencesService creates a new PreferencesService
func NewPreferencesService(store ports.PreferenceStore) *PreferencesService {
	return &PreferencesService{store: store}
}

// LoadBookmarks returns the persisted bookmark set, or an empty set
func (s *PreferencesService) LoadBookmarks(ctx context.Context) domain.BookmarkSet {
	bookmarks := domain.BookmarkSet{}
	s.loadJSON(ctx, KeyBookmarks, &bookmarks)
	if bookmarks == nil {
		bookmarks = domain.BookmarkSet{}
	}
	return bookmarks
}

// SaveBookmarks persists the bookmark set
func (s *PreferencesService) SaveBookmarks(ctx context.Context, bookmarks domain.BookmarkSet) bool {
	return s.saveJSON(ctx, KeyBookmarks, bookmarks)
}

// LoadEnabledApps returns the persisted enabled app slugs in order, or the
// default enablement list
func (s *PreferencesService) LoadEnabledApps(ctx context.Context) []string {
	var slugs []string
	if !s.loadJSON(ctx, KeyEnabledApps, &slugs) || slugs == nil {
		return append([]string(nil), DefaultEnabledApps...)
	}
	return slugs
}

// SaveEnabledApps persists the ordered enabled app slugs
func (s *PreferencesService) SaveEnabledApps(ctx context.Context, slugs []string) bool {
	return s.saveJSON(ctx, KeyEnabledApps, slugs)
}

// LoadTheme returns the persisted theme preference, or the system default.
// Unknown stored values also degrade to system.
func (s *PreferencesService) LoadTheme(ctx context.Context) domain.ThemePreference {
	value, found, err := s.store.Get(ctx, KeyTheme)
	if err != nil {
		logging.Logger.Warn("Failed to load theme preference, using default", "error", err)
		return domain.ThemeSystem
	}
	if !found {
		return domain.ThemeSystem
	}
	pref := domain.ThemePreference(value)
	if !pref.IsValid() {
		logging.Logger.Warn("Ignoring unknown persisted theme preference", "value", value)
		return domain.ThemeSystem
	}
	return pref
}

// SaveTheme persists the theme preference
func (s *PreferencesService) SaveTheme(ctx context.Context, pref domain.ThemePreference) bool {
	if err := s.store.Set(ctx, KeyTheme, string(pref)); err != nil {
		logging.Logger.Warn("Failed to save theme preference", "error", err)
		return false
	}
	return true
}

// LoadUser returns the persisted user, or nil when nobody is logged in or
// the stored value is unreadable
func (s *PreferencesService) LoadUser(ctx context.Context) *domain.User {
	var user domain.User
	if !s.loadJSON(ctx, KeyUser, &user) || user.Username == "" {
		return nil
	}
	return &user
}

// SaveUser persists the logged-in user
func (s *PreferencesService) SaveUser(ctx context.Context, user domain.User) bool {
	return s.saveJSON(ctx, KeyUser, user)
}

// DeleteUser removes the persisted user
func (s *PreferencesService) DeleteUser(ctx context.Context) bool {
	if err := s.store.Delete(ctx, KeyUser); err != nil {
		logging.Logger.Warn("Failed to delete user", "error", err)
		return false
	}
	return true
}

// ClearAll removes every persisted preference. Returns false if any delete
// failed; remaining deletes still run.
func (s *PreferencesService) ClearAll(ctx context.Context) bool {
	ok := true
	for _, key := range []string{KeyBookmarks, KeyEnabledApps, KeyTheme, KeyUser} {
		if err := s.store.Delete(ctx, key); err != nil {
			logging.Logger.Warn("Failed to clear preference", "key", key, "error", err)
			ok = false
		}
	}
	return ok
}

// loadJSON decodes the stored value for a key into out. Returns false when
// the key is absent or the value is unreadable; out is left untouched on
// decode failure only if unmarshaling fails before any write, so callers
// must treat a false return as "use the default".
func (s *PreferencesService) loadJSON(ctx context.Context, key string, out any) bool {
	value, found, err := s.store.Get(ctx, key)
	if err != nil {
		logging.Logger.Warn("Failed to load preference, using default", "key", key, "error", err)
		return false
	}
	if !found {
		return false
	}
	if err := json.Unmarshal([]byte(value), out); err != nil {
		logging.Logger.Warn("Malformed persisted preference, using default", "key", key, "error", err)
		return false
	}
	return true
}

// saveJSON encodes and stores a value under a key
func (s *PreferencesService) saveJSON(ctx context.Context, key string, value any) bool {
	data, err := json.Marshal(value)
	if err != nil {
		logging.Logger.Warn("Failed to encode preference", "key", key, "error", err)
		return false
	}
	if err := s.store.Set(ctx, key, string(data)); err != nil {
		logging.Logger.Warn("Failed to save preference", "key", key, "error", err)
		return false
	}
	return true
}
