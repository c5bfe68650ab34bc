package ui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keystrokes/internal/domain"
	"keystrokes/internal/services"
)

func TestNavigateSetsViewAndExpandsApp(t *testing.T) {
	h := newTestModel(t)

	h.update(NavigateMsg{View: domain.AppView{AppSlug: "vscode"}})

	assert.Equal(t, domain.AppView{AppSlug: "vscode"}, h.model.view)
	assert.True(t, h.model.sidebar.expanded["vscode"])
}

func TestBackReturnsHomeFromAnyView(t *testing.T) {
	h := newTestModel(t)

	deepViews := []domain.View{
		domain.ShortcutView{
			AppSlug:    "vscode",
			Category:   "Navigation",
			ShortcutID: "vscode-navigation-go-to-file",
		},
		domain.CategoryView{AppSlug: "vscode", Category: "Navigation"},
		domain.AppView{AppSlug: "vscode"},
		domain.GuideView{},
	}
	for _, view := range deepViews {
		h.update(NavigateMsg{View: view})

		cmd := h.update(BackMsg{})
		assert.Equal(t, domain.HomeView{}, h.model.view)

		// Home navigation carries the deferred content focus
		require.NotNil(t, cmd)
		h.drain(cmd)
		assert.True(t, h.model.contentFocused)
	}

	// Already home, back is a no-op
	h.update(BackMsg{})
	assert.Equal(t, domain.HomeView{}, h.model.view)
}

func TestBackHidesDrawerOnNarrowTerminals(t *testing.T) {
	h := newTestModel(t)
	h.update(tea.WindowSizeMsg{Width: 60, Height: 24})
	h.update(NavigateMsg{View: domain.AppView{AppSlug: "vscode"}})
	require.True(t, h.model.sidebarVisible)

	// First esc closes the drawer, only the second one navigates
	h.update(BackMsg{})
	assert.False(t, h.model.sidebarVisible)
	assert.Equal(t, domain.AppView{AppSlug: "vscode"}, h.model.view)

	h.drain(h.update(BackMsg{}))
	assert.Equal(t, domain.HomeView{}, h.model.view)
}

func TestGoHomeFocusesContentThroughCommandQueue(t *testing.T) {
	h := newTestModel(t)
	h.update(NavigateMsg{View: domain.AppView{AppSlug: "chrome"}})

	cmd := h.update(GoHomeMsg{})
	require.NotNil(t, cmd)
	assert.Equal(t, domain.HomeView{}, h.model.view)
	assert.False(t, h.model.contentFocused, "focus lands through the queue, not synchronously")

	h.drain(cmd)
	assert.True(t, h.model.contentFocused)

	// Using the sidebar returns focus to it
	h.update(tea.KeyMsg{Type: tea.KeyDown})
	assert.False(t, h.model.contentFocused)
}

func TestToggleBookmarkPersists(t *testing.T) {
	h := newTestModel(t)
	view := domain.ShortcutView{
		AppSlug:    "chrome",
		Category:   "Tabs",
		ShortcutID: "chrome-tabs-new-tab",
	}
	h.update(NavigateMsg{View: view})

	h.update(ToggleBookmarkMsg{})
	assert.True(t, h.model.bookmarks.IsBookmarked("chrome", "chrome-tabs-new-tab"))
	assert.Contains(t, h.store.values, services.KeyBookmarks)

	h.update(ToggleBookmarkMsg{})
	assert.False(t, h.model.bookmarks.IsBookmarked("chrome", "chrome-tabs-new-tab"))
}

func TestToggleBookmarkSurfacesPersistFailure(t *testing.T) {
	h := newTestModel(t)
	h.update(NavigateMsg{View: domain.ShortcutView{
		AppSlug:    "chrome",
		Category:   "Tabs",
		ShortcutID: "chrome-tabs-new-tab",
	}})

	h.store.failSet = true
	cmd := h.update(ToggleBookmarkMsg{})

	// The in-memory toggle survives, the failure is shown and auto-clears
	assert.True(t, h.model.bookmarks.IsBookmarked("chrome", "chrome-tabs-new-tab"))
	require.True(t, h.model.errorManager.HasError())
	require.NotNil(t, cmd)

	h.drain(cmd)
	assert.False(t, h.model.errorManager.HasError())
}

func TestToggleThemeLeavesSystemMode(t *testing.T) {
	h := newTestModel(t)
	require.Equal(t, domain.ThemeSystem, h.themes.Preference())
	require.Equal(t, domain.SchemeDark, h.themes.Actual())

	h.update(ToggleThemeMsg{})

	assert.Equal(t, domain.ThemeLight, h.themes.Preference())
	assert.Equal(t, domain.SchemeLight, h.model.styles.Scheme)
}

func TestSchemeChangeRebuildsStyles(t *testing.T) {
	h := newTestModel(t)
	require.Equal(t, domain.SchemeDark, h.model.styles.Scheme)

	h.signal.scheme = domain.SchemeLight
	if h.signal.subscriber != nil {
		h.signal.subscriber(domain.SchemeLight)
	}
	h.update(SchemeChangedMsg{Scheme: domain.SchemeLight})

	assert.Equal(t, domain.SchemeLight, h.model.styles.Scheme)
}

func TestEnableApp(t *testing.T) {
	h := newTestModel(t)
	require.False(t, h.model.apps.IsEnabled("vscode"))

	h.update(EnableAppMsg{Slug: "vscode"})

	assert.True(t, h.model.apps.IsEnabled("vscode"))
	assert.Contains(t, h.store.values, services.KeyEnabledApps)
}

func TestDisablingCurrentAppGoesHome(t *testing.T) {
	h := newTestModel(t)
	h.update(EnableAppMsg{Slug: "vscode"})
	h.update(NavigateMsg{View: domain.AppView{AppSlug: "vscode"}})

	h.update(ToggleAppMsg{Slug: "vscode"})

	assert.False(t, h.model.apps.IsEnabled("vscode"))
	assert.Equal(t, domain.HomeView{}, h.model.view)
}

func TestClearAllDataResetsEverything(t *testing.T) {
	h := newTestModel(t)
	ctx := context.Background()

	h.update(EnableAppMsg{Slug: "vscode"})
	h.update(NavigateMsg{View: domain.ShortcutView{
		AppSlug:    "chrome",
		Category:   "Tabs",
		ShortcutID: "chrome-tabs-new-tab",
	}})
	h.update(ToggleBookmarkMsg{})
	user, err := h.model.auth.Login(ctx, "renato", "ignored")
	require.NoError(t, err)
	h.model.user = user

	h.drain(h.update(ClearAllDataMsg{}))

	assert.Empty(t, h.store.values)
	assert.Zero(t, h.model.bookmarks.Total())
	assert.Equal(t, services.DefaultEnabledApps, h.model.apps.Enabled())
	assert.Nil(t, h.model.user)
	assert.Equal(t, domain.HomeView{}, h.model.view)
}

func TestHelpScreenOpensAndCloses(t *testing.T) {
	h := newTestModel(t)

	h.drain(h.update(ShowHelpMsg{}))
	require.Equal(t, stateHelp, h.model.state)
	require.NotNil(t, h.model.helpScreen)

	h.update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, stateBrowse, h.model.state)
	assert.Nil(t, h.model.helpScreen)
}

func TestLoginFlow(t *testing.T) {
	h := newTestModel(t)

	h.update(ShowLoginMsg{})
	require.Equal(t, stateLogin, h.model.state)

	// Cancel with esc returns to browsing without a user
	h.update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, stateBrowse, h.model.state)
	assert.Nil(t, h.model.user)
}

func TestLogout(t *testing.T) {
	h := newTestModel(t)
	ctx := context.Background()
	user, err := h.model.auth.Login(ctx, "renato", "ignored")
	require.NoError(t, err)
	h.model.user = user
	h.model.sidebar.SetUser(user)

	h.update(LogoutMsg{})

	assert.Nil(t, h.model.user)
	assert.NotContains(t, h.store.values, services.KeyUser)
}

func TestApplySettings(t *testing.T) {
	h := newTestModel(t)

	updated, _ := h.model.applySettings(SettingsFormResult{
		EnabledApps: []string{"adobe-acrobat-reader", "vscode", "chrome"},
		Theme:       domain.ThemeDark,
	})
	m := updated.(*Model)

	assert.Equal(t, domain.ThemeDark, h.themes.Preference())
	assert.Equal(t, []string{"adobe-acrobat-reader", "vscode", "chrome"}, m.apps.Enabled())
	assert.False(t, m.errorManager.HasError())
}

func TestToggleSidebar(t *testing.T) {
	h := newTestModel(t)
	require.True(t, h.model.sidebarVisible)

	h.update(ToggleSidebarMsg{})
	assert.False(t, h.model.sidebarVisible)

	h.update(ToggleSidebarMsg{})
	assert.True(t, h.model.sidebarVisible)
}

func TestAppViewShowsDescriptionAndPlatforms(t *testing.T) {
	h := newTestModel(t)
	h.update(NavigateMsg{View: domain.AppView{AppSlug: "vscode"}})

	rendered := h.model.renderContent()
	assert.Contains(t, rendered, "Visual Studio Code")
	assert.Contains(t, rendered, "Linux")
	assert.Contains(t, rendered, "source code editor")
}

func TestShortcutViewShowsContextAndNotes(t *testing.T) {
	h := newTestModel(t)
	h.update(NavigateMsg{View: domain.ShortcutView{
		AppSlug:    "slack",
		Category:   "Messages",
		ShortcutID: "slack-messages-edit-last-message",
	}})

	rendered := h.model.renderContent()
	assert.Contains(t, rendered, "Context: Message box empty")
	assert.Contains(t, rendered, "Note: ")
}

func TestHomeViewShowsRotatingTip(t *testing.T) {
	h := newTestModel(t)
	assert.Contains(t, h.model.renderContent(), "tip: ")

	before := h.model.tipIndex
	h.update(NavigateMsg{View: domain.AppView{AppSlug: "chrome"}})
	h.drain(h.update(GoHomeMsg{}))

	assert.NotEqual(t, before, h.model.tipIndex)
	assert.Contains(t, h.model.renderContent(), "tip: ")
}

func TestViewRendersWithoutPanicking(t *testing.T) {
	h := newTestModel(t)

	views := []domain.View{
		domain.HomeView{},
		domain.AppView{AppSlug: "chrome"},
		domain.CategoryView{AppSlug: "chrome", Category: "Tabs"},
		domain.ShortcutView{AppSlug: "chrome", Category: "Tabs", ShortcutID: "chrome-tabs-new-tab"},
		domain.GuideView{},
		domain.AboutView{},
	}
	for _, view := range views {
		h.update(NavigateMsg{View: view})
		assert.NotEmpty(t, h.model.View())
	}
}
