package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"keystrokes/internal/catalog"
	"keystrokes/internal/config"
	"keystrokes/internal/domain"
	"keystrokes/internal/logging"
	"keystrokes/internal/search"
	"keystrokes/internal/services"
	"keystrokes/internal/theme"
)

type uiState int

const (
	stateBrowse uiState = iota
	stateHelp
	stateLogin
	stateSettings
)

// narrowWidthThreshold is the terminal width below which the sidebar
// becomes a full-width drawer instead of a fixed column
const narrowWidthThreshold = 80

type Model struct {
	apps           *services.AppsService        // Application enablement service
	auth           *services.AuthService        // Local login stub
	bookmarks      *services.BookmarksService   // Bookmark service
	catalog        *catalog.Index               // Shortcut catalogue
	contentFocused bool                         // True after navigating home until the sidebar is used again
	errorManager   *ErrorManager                // Error display and auto-clearing
	height         int
	helpScreen     *Dialog                      // Help screen dialog
	keys           KeyMap                       // Keyboard shortcuts
	loginForm      *Dialog                      // Login dialog
	prefs          *services.PreferencesService // Typed preference access
	settingsForm   *Dialog                      // Settings dialog
	sidebar        *Sidebar                     // Sidebar component
	sidebarVisible bool
	sidebarWidth   int
	state          uiState
	styles         theme.Styles
	themes         *services.ThemeService // Theme preference and live scheme
	tipIndex       int                    // Rotates through the registered tips on each return home
	user           *domain.User           // Logged-in user, nil when anonymous
	view           domain.View            // Current content view
	width          int
}

func NewModel(
	errorClearDelay time.Duration,
	sidebarWidth int,
	keysConfig config.KeyBindingsConfig,
	index *catalog.Index,
	engine *search.Engine,
	prefs *services.PreferencesService,
	bookmarks *services.BookmarksService,
	apps *services.AppsService,
	themes *services.ThemeService,
	auth *services.AuthService,
) *Model {
	keys := NewKeyMap(keysConfig)
	styles := theme.NewStyles(themes.Actual())
	setHeaderStyles(styles)

	user := auth.CurrentUser(context.Background())

	sidebar := NewSidebar(apps, bookmarks, engine, styles)
	sidebar.SetUser(user)

	return &Model{
		apps:           apps,
		auth:           auth,
		bookmarks:      bookmarks,
		catalog:        index,
		errorManager:   NewErrorManager(errorClearDelay),
		keys:           keys,
		prefs:          prefs,
		sidebar:        sidebar,
		sidebarVisible: true,
		sidebarWidth:   sidebarWidth,
		state:          stateBrowse,
		styles:         styles,
		themes:         themes,
		user:           user,
		view:           domain.HomeView{},
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Track terminal size regardless of state so dialogs open at the
	// right dimensions
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
		m.height = size.Height
		m.resize()
	}

	switch m.state {
	case stateBrowse:
		return m.updateBrowse(msg)
	case stateHelp:
		return m.updateHelp(msg)
	case stateLogin:
		return m.updateLogin(msg)
	case stateSettings:
		return m.updateSettings(msg)
	}
	return m, nil
}

func (m *Model) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	ctx := context.Background()

	switch msg := msg.(type) {
	case QuitMsg:
		return m, tea.Quit

	case ShowHelpMsg:
		contentForm := NewHelpScreen(&m.keys, m.styles)
		m.helpScreen = NewDialog("Help", contentForm)
		m.state = stateHelp
		// Send initial WindowSizeMsg so viewport can initialize
		initCmd := m.helpScreen.Init()
		updatedDialog, sizeCmd := m.helpScreen.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
		m.helpScreen = updatedDialog.(*Dialog)
		return m, tea.Batch(initCmd, sizeCmd)

	case ShowSettingsMsg:
		contentForm := NewSettingsForm(m.catalog, m.apps.Enabled(), m.themes.Preference())
		m.settingsForm = NewDialog("Settings", contentForm)
		m.state = stateSettings
		return m, m.settingsForm.Init()

	case ShowLoginMsg:
		contentForm := NewLoginForm()
		m.loginForm = NewDialog("Sign In", contentForm)
		m.state = stateLogin
		return m, m.loginForm.Init()

	case ToggleThemeMsg:
		persisted := m.themes.Toggle(ctx)
		m.applyScheme()
		if !persisted {
			m.errorManager.SetError(fmt.Errorf("failed to save theme preference"))
			return m, m.errorManager.ClearAfterDelay()
		}
		return m, nil

	case SchemeChangedMsg:
		m.applyScheme()
		return m, nil

	case FocusSearchMsg:
		m.contentFocused = false
		m.sidebarVisible = true
		m.resize()
		return m, m.sidebar.FocusSearch()

	case GoHomeMsg:
		m.setView(domain.HomeView{})
		return m, focusContentCmd

	case BackMsg:
		return m.handleBack()

	case ToggleSidebarMsg:
		m.sidebarVisible = !m.sidebarVisible
		if !m.sidebarVisible {
			m.sidebar.BlurSearch()
		}
		m.resize()
		return m, nil

	case ToggleBookmarkMsg:
		return m.handleToggleBookmark(ctx)

	case NavigateMsg:
		m.setView(msg.View)
		if _, ok := msg.View.(domain.HomeView); ok {
			return m, focusContentCmd
		}
		return m, nil

	case EnableAppMsg:
		persisted := m.apps.Enable(ctx, msg.Slug)
		m.sidebar.Refresh()
		if !persisted {
			m.errorManager.SetError(fmt.Errorf("failed to save enabled applications"))
			return m, m.errorManager.ClearAfterDelay()
		}
		return m, nil

	case ToggleAppMsg:
		enabled, persisted := m.apps.Toggle(ctx, msg.Slug)
		m.sidebar.Refresh()
		if !enabled && m.viewBelongsTo(msg.Slug) {
			m.setView(domain.HomeView{})
		}
		if !persisted {
			m.errorManager.SetError(fmt.Errorf("failed to save enabled applications"))
			return m, m.errorManager.ClearAfterDelay()
		}
		return m, nil

	case LogoutMsg:
		ok := m.auth.Logout(ctx)
		m.user = nil
		m.sidebar.SetUser(nil)
		if !ok {
			m.errorManager.SetError(fmt.Errorf("failed to remove login"))
			return m, m.errorManager.ClearAfterDelay()
		}
		return m, nil

	case ClearAllDataMsg:
		return m.handleClearAllData(ctx)

	case focusContentMsg:
		m.contentFocused = true
		m.sidebar.BlurSearch()
		return m, nil

	case clearErrorMsg:
		m.errorManager.ClearError()
		return m, nil

	case tea.KeyMsg:
		return m.handleBrowseKey(msg)
	}

	return m, nil
}

// handleBrowseKey routes a key press: search blur first, then the global
// dispatch table, then the sidebar
func (m *Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Esc while typing a query only leaves the search box
	if m.sidebar.SearchFocused() && msg.String() == "esc" {
		m.sidebar.BlurSearch()
		return m, nil
	}

	if actionMsg, matched := m.dispatchGlobalKey(msg); matched {
		return m.updateBrowse(actionMsg)
	}

	m.contentFocused = false
	cmd, action := m.sidebar.HandleKey(msg, &m.keys)
	if action != nil {
		updated, actionCmd := m.updateBrowse(action)
		return updated, tea.Batch(cmd, actionCmd)
	}
	return m, cmd
}

// handleBack walks the escape cascade: close the drawer on narrow
// terminals, otherwise return to the welcome view
func (m *Model) handleBack() (tea.Model, tea.Cmd) {
	if m.narrow() && m.sidebarVisible {
		m.sidebarVisible = false
		m.resize()
		return m, nil
	}

	if _, ok := m.view.(domain.HomeView); ok {
		return m, nil
	}
	m.setView(domain.HomeView{})
	return m, focusContentCmd
}

func (m *Model) handleToggleBookmark(ctx context.Context) (tea.Model, tea.Cmd) {
	view, ok := m.view.(domain.ShortcutView)
	if !ok {
		return m, nil
	}

	bookmarked, persisted := m.bookmarks.Toggle(ctx, view.AppSlug, view.ShortcutID)
	m.sidebar.Refresh()
	logging.Logger.Debug("Bookmark toggled from shortcut view",
		"shortcut", view.ShortcutID,
		"bookmarked", bookmarked)

	if !persisted {
		m.errorManager.SetError(fmt.Errorf("failed to save bookmarks"))
		return m, m.errorManager.ClearAfterDelay()
	}
	return m, nil
}

func (m *Model) handleClearAllData(ctx context.Context) (tea.Model, tea.Cmd) {
	ok := m.prefs.ClearAll(ctx)
	m.bookmarks.Reset(ctx)
	m.apps.Reset(ctx)
	m.themes.Reset(ctx)
	m.user = nil
	m.sidebar.SetUser(nil)
	m.applyScheme()
	m.setView(domain.HomeView{})

	if !ok {
		m.errorManager.SetError(fmt.Errorf("failed to clear some stored data"))
		return m, tea.Batch(focusContentCmd, m.errorManager.ClearAfterDelay())
	}
	return m, focusContentCmd
}

func (m *Model) updateHelp(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.helpScreen.Update(msg)
	m.helpScreen = updated.(*Dialog)

	if content, ok := m.helpScreen.Content().(*HelpScreen); ok && content.Completed {
		m.state = stateBrowse
		m.helpScreen = nil
		return m, nil
	}
	return m, cmd
}

func (m *Model) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.loginForm.Update(msg)
	m.loginForm = updated.(*Dialog)

	if content, ok := m.loginForm.Content().(*LoginForm); ok && content.Completed {
		result := content.Result()
		m.state = stateBrowse
		m.loginForm = nil

		if result.Cancelled {
			return m, nil
		}

		user, err := m.auth.Login(context.Background(), result.Username, result.Password)
		if err != nil {
			m.errorManager.SetError(fmt.Errorf("failed to sign in: %w", err))
			return m, m.errorManager.ClearAfterDelay()
		}
		m.user = user
		m.sidebar.SetUser(user)
		return m, nil
	}
	return m, cmd
}

func (m *Model) updateSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.settingsForm.Update(msg)
	m.settingsForm = updated.(*Dialog)

	if content, ok := m.settingsForm.Content().(*SettingsForm); ok && content.Completed {
		result := content.Result()
		m.state = stateBrowse
		m.settingsForm = nil

		if result.Cancelled {
			return m, nil
		}
		return m.applySettings(result)
	}
	return m, cmd
}

// applySettings commits a completed settings form: clear-all wins over the
// other edits because it resets everything anyway
func (m *Model) applySettings(result SettingsFormResult) (tea.Model, tea.Cmd) {
	ctx := context.Background()

	if result.ClearAllData {
		return m.handleClearAllData(ctx)
	}

	persisted := true
	if result.Theme != m.themes.Preference() {
		persisted = m.themes.SetPreference(ctx, result.Theme) && persisted
		m.applyScheme()
	}
	persisted = m.apps.SetEnabled(ctx, result.EnabledApps) && persisted

	m.sidebar.Refresh()
	if slug, ok := m.viewAppSlug(); ok && !m.apps.IsEnabled(slug) {
		m.setView(domain.HomeView{})
	}

	if !persisted {
		m.errorManager.SetError(fmt.Errorf("failed to save some settings"))
		return m, m.errorManager.ClearAfterDelay()
	}
	return m, nil
}

// setView switches the content pane and keeps the sidebar in sync with the
// application the view belongs to. Returning home advances the rotating tip.
func (m *Model) setView(view domain.View) {
	if _, ok := view.(domain.HomeView); ok {
		if count := len(GetTips()); count > 0 {
			m.tipIndex = (m.tipIndex + 1) % count
		}
	}
	m.view = view
	m.contentFocused = false
	if slug, ok := viewAppSlugOf(view); ok {
		m.sidebar.Expand(slug)
	}
}

// viewAppSlug returns the application the current view belongs to
func (m *Model) viewAppSlug() (string, bool) {
	return viewAppSlugOf(m.view)
}

func (m *Model) viewBelongsTo(slug string) bool {
	current, ok := m.viewAppSlug()
	return ok && current == slug
}

func viewAppSlugOf(view domain.View) (string, bool) {
	switch view := view.(type) {
	case domain.AppView:
		return view.AppSlug, true
	case domain.CategoryView:
		return view.AppSlug, true
	case domain.ShortcutView:
		return view.AppSlug, true
	}
	return "", false
}

// applyScheme rebuilds every style set from the currently rendered scheme
func (m *Model) applyScheme() {
	m.styles = theme.NewStyles(m.themes.Actual())
	setHeaderStyles(m.styles)
	m.sidebar.SetStyles(m.styles)
}

// narrow reports whether the terminal is too narrow for a fixed sidebar
// column
func (m *Model) narrow() bool {
	return m.width > 0 && m.width < narrowWidthThreshold
}

// resize recalculates component dimensions from the terminal size
func (m *Model) resize() {
	// Footer takes 2 lines
	contentHeight := m.height - 2
	if contentHeight < 1 {
		contentHeight = 1
	}
	if m.narrow() {
		m.sidebar.SetSize(m.width, contentHeight)
	} else {
		m.sidebar.SetSize(m.sidebarWidth, contentHeight)
	}
}

// focusContentCmd schedules the content focus through the command queue so
// it lands after the new view has rendered
func focusContentCmd() tea.Msg {
	return focusContentMsg{}
}

func (m *Model) View() string {
	switch m.state {
	case stateHelp:
		return m.helpScreen.View()
	case stateLogin:
		return m.loginForm.View()
	case stateSettings:
		return m.settingsForm.View()
	}

	main := m.renderContent()
	if m.sidebarVisible {
		if m.narrow() {
			// The drawer takes the whole width on narrow terminals
			main = m.sidebar.View()
		} else {
			main = lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar.View(), "  ", main)
		}
	}

	return main + "\n" + m.renderFooter()
}

// renderFooter shows the current error when there is one, the short help
// line otherwise
func (m *Model) renderFooter() string {
	if m.errorManager.HasError() {
		return m.styles.Error.Render(formatErrorForDisplay(m.errorManager.GetError(), m.width))
	}

	parts := make([]string, 0, len(m.keys.ShortHelp()))
	for _, binding := range m.keys.ShortHelp() {
		help := binding.Help()
		parts = append(parts, m.styles.HelpKey.Render(help.Key)+" "+m.styles.HelpDesc.Render(help.Desc))
	}
	return strings.Join(parts, m.styles.Muted.Render(" • "))
}
