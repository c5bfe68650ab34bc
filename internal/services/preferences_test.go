package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keystrokes/internal/domain"
)

func TestPreferences_LoadBookmarksDefaults(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*fakeStore)
	}{
		{"missing key", func(*fakeStore) {}},
		{"malformed json", func(f *fakeStore) { f.values[KeyBookmarks] = "{not json" }},
		{"read failure", func(f *fakeStore) { f.failGet = true }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore()
			tt.setup(store)
			prefs := NewPreferencesService(store)

			bookmarks := prefs.LoadBookmarks(context.Background())
			require.NotNil(t, bookmarks)
			assert.Equal(t, 0, bookmarks.Total())
		})
	}
}

func TestPreferences_BookmarksRoundTrip(t *testing.T) {
	store := newFakeStore()
	prefs := NewPreferencesService(store)
	ctx := context.Background()

	saved := domain.BookmarkSet{"vscode": {"vscode-navigation-go-to-file"}}
	assert.True(t, prefs.SaveBookmarks(ctx, saved))

	loaded := prefs.LoadBookmarks(ctx)
	assert.Equal(t, saved, loaded)
}

func TestPreferences_LoadEnabledAppsDefaultsToSeedList(t *testing.T) {
	prefs := NewPreferencesService(newFakeStore())

	slugs := prefs.LoadEnabledApps(context.Background())
	assert.Equal(t, DefaultEnabledApps, slugs)
}

func TestPreferences_LoadEnabledAppsMalformedFallsBack(t *testing.T) {
	store := newFakeStore()
	store.values[KeyEnabledApps] = `"not an array`
	prefs := NewPreferencesService(store)

	slugs := prefs.LoadEnabledApps(context.Background())
	assert.Equal(t, DefaultEnabledApps, slugs)
}

func TestPreferences_EnabledAppsPreserveOrder(t *testing.T) {
	store := newFakeStore()
	prefs := NewPreferencesService(store)
	ctx := context.Background()

	assert.True(t, prefs.SaveEnabledApps(ctx, []string{"slack", "chrome", "vscode"}))
	assert.Equal(t, []string{"slack", "chrome", "vscode"}, prefs.LoadEnabledApps(ctx))
}

func TestPreferences_ThemeDefaultsAndValidation(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(*fakeStore)
		expected domain.ThemePreference
	}{
		{"missing key", func(*fakeStore) {}, domain.ThemeSystem},
		{"unknown value", func(f *fakeStore) { f.values[KeyTheme] = "solarized" }, domain.ThemeSystem},
		{"read failure", func(f *fakeStore) { f.failGet = true }, domain.ThemeSystem},
		{"stored dark", func(f *fakeStore) { f.values[KeyTheme] = "dark" }, domain.ThemeDark},
		{"stored light", func(f *fakeStore) { f.values[KeyTheme] = "light" }, domain.ThemeLight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore()
			tt.setup(store)
			prefs := NewPreferencesService(store)

			assert.Equal(t, tt.expected, prefs.LoadTheme(context.Background()))
		})
	}
}

func TestPreferences_SaveReportsFailure(t *testing.T) {
	store := newFakeStore()
	store.failSet = true
	prefs := NewPreferencesService(store)
	ctx := context.Background()

	assert.False(t, prefs.SaveBookmarks(ctx, domain.BookmarkSet{}))
	assert.False(t, prefs.SaveEnabledApps(ctx, []string{"vscode"}))
	assert.False(t, prefs.SaveTheme(ctx, domain.ThemeDark))
	assert.False(t, prefs.SaveUser(ctx, domain.User{ID: 1, Username: "ada"}))
}

func TestPreferences_UserRoundTrip(t *testing.T) {
	store := newFakeStore()
	prefs := NewPreferencesService(store)
	ctx := context.Background()

	assert.Nil(t, prefs.LoadUser(ctx))

	user := domain.User{ID: 1700000000000, Username: "ada"}
	assert.True(t, prefs.SaveUser(ctx, user))

	loaded := prefs.LoadUser(ctx)
	require.NotNil(t, loaded)
	assert.Equal(t, user, *loaded)

	assert.True(t, prefs.DeleteUser(ctx))
	assert.Nil(t, prefs.LoadUser(ctx))
}

func TestPreferences_UserStoredShape(t *testing.T) {
	store := newFakeStore()
	prefs := NewPreferencesService(store)
	ctx := context.Background()

	prefs.SaveUser(ctx, domain.User{ID: 1700000000000, Username: "ada"})

	// The persisted field names are an on-disk contract
	assert.JSONEq(t, `{"id":1700000000000,"name":"ada"}`, store.values[KeyUser])
}

func TestPreferences_ClearAllRemovesEveryKey(t *testing.T) {
	store := newFakeStore()
	prefs := NewPreferencesService(store)
	ctx := context.Background()

	prefs.SaveBookmarks(ctx, domain.BookmarkSet{"vscode": {"id"}})
	prefs.SaveEnabledApps(ctx, []string{"vscode"})
	prefs.SaveTheme(ctx, domain.ThemeDark)
	prefs.SaveUser(ctx, domain.User{ID: 1, Username: "ada"})

	assert.True(t, prefs.ClearAll(ctx))
	assert.Empty(t, store.values)
}

func TestPreferences_PersistenceKeys(t *testing.T) {
	// The stored key names are an on-disk contract
	assert.Equal(t, "bookmarks", KeyBookmarks)
	assert.Equal(t, "enabledApps", KeyEnabledApps)
	assert.Equal(t, "theme", KeyTheme)
	assert.Equal(t, "user", KeyUser)
}
