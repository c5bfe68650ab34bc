package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keystrokes/internal/domain"
)

func TestLoad_IndexesAllDatasets(t *testing.T) {
	idx, err := Load()
	require.NoError(t, err)

	apps := idx.Apps()
	require.NotEmpty(t, apps)

	slugs := make([]string, len(apps))
	for i, app := range apps {
		slugs[i] = app.Slug
	}
	assert.Contains(t, slugs, "vscode")
	assert.Contains(t, slugs, "chrome")
	assert.Contains(t, slugs, "adobe-acrobat-reader")
}

func TestLoad_StableApplicationOrder(t *testing.T) {
	first, err := Load()
	require.NoError(t, err)
	second, err := Load()
	require.NoError(t, err)

	assert.Equal(t, first.Apps(), second.Apps())
}

func TestIndex_AppLookup(t *testing.T) {
	idx, err := Load()
	require.NoError(t, err)

	app, ok := idx.App("vscode")
	require.True(t, ok)
	assert.Equal(t, "Visual Studio Code", app.Name)
	assert.NotEmpty(t, app.Categories)

	_, ok = idx.App("notepad")
	assert.False(t, ok)
}

func TestIndex_CategoryLookup(t *testing.T) {
	idx, err := Load()
	require.NoError(t, err)

	category, ok := idx.Category("chrome", "Tabs")
	require.True(t, ok)
	assert.NotEmpty(t, category.Shortcuts)

	_, ok = idx.Category("chrome", "Windows")
	assert.False(t, ok)

	_, ok = idx.Category("notepad", "Tabs")
	assert.False(t, ok)
}

func TestIndex_EntryLookupUsesDerivedIdentifier(t *testing.T) {
	idx, err := Load()
	require.NoError(t, err)

	id := domain.ShortcutID("chrome", "Tabs", "New Tab")
	entry, ok := idx.Entry(id)
	require.True(t, ok)
	assert.Equal(t, "chrome-tabs-new-tab", entry.ID)
	assert.Equal(t, "New Tab", entry.Shortcut.Action)
	assert.Equal(t, "Tabs", entry.Category.Name)
	assert.Equal(t, "chrome", entry.App.Slug)
}

func TestLoad_DecodesApplicationMetadata(t *testing.T) {
	idx, err := Load()
	require.NoError(t, err)

	app, ok := idx.App("vscode")
	require.True(t, ok)
	assert.NotEmpty(t, app.Description)
	assert.Contains(t, app.Platforms, "Linux")

	// Context and notes are optional annotations on individual shortcuts
	entry, ok := idx.Entry(domain.ShortcutID("slack", "Messages", "Edit Last Message"))
	require.True(t, ok)
	assert.Equal(t, "Message box empty", entry.Shortcut.Context)
	assert.NotEmpty(t, entry.Shortcut.Notes)
}

func TestIndex_EveryShortcutHasKeysOrVariants(t *testing.T) {
	idx, err := Load()
	require.NoError(t, err)

	for _, app := range idx.Apps() {
		for _, category := range app.Categories {
			for _, shortcut := range category.Shortcuts {
				hasKeys := shortcut.Keys != ""
				hasVariants := shortcut.HasVariants()
				assert.True(t, hasKeys != hasVariants,
					"shortcut %s/%s/%s must have exactly one of keys or variants",
					app.Slug, category.Name, shortcut.Action)
			}
		}
	}
}
