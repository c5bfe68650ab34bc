package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"keystrokes/internal/domain"
	"keystrokes/internal/search"
	"keystrokes/internal/services"
	"keystrokes/internal/theme"
)

type rowKind int

const (
	rowSection rowKind = iota // Non-selectable section header
	rowApp
	rowBookmarkEntry
	rowCategory
	rowDisabledApp
	rowSearchResult
	rowStatic // Guide / About
)

// sidebarRow is one rendered line of the sidebar
type sidebarRow struct {
	annotation string
	indent     int
	kind       rowKind
	label      string
	msg        tea.Msg // Action emitted on select, nil for section headers
	slug       string  // App slug for expansion handling
}

func (r sidebarRow) selectable() bool {
	return r.kind != rowSection
}

// Sidebar lists enabled applications with their categories and bookmarks, a
// search box, the disabled applications, and the static pages. It emits
// action messages on selection; all state mutation happens in Model.
type Sidebar struct {
	apps      *services.AppsService
	bookmarks *services.BookmarksService
	cursor    int
	engine    *search.Engine
	expanded  map[string]bool
	height    int
	input     textinput.Model
	rows      []sidebarRow
	styles    theme.Styles
	user      *domain.User
	width     int
}

// NewSidebar creates the sidebar component
func NewSidebar(apps *services.AppsService, bookmarks *services.BookmarksService, engine *search.Engine, styles theme.Styles) *Sidebar {
	input := textinput.New()
	input.Placeholder = "Search shortcuts..."
	input.Prompt = "/ "
	input.CharLimit = 64

	s := &Sidebar{
		apps:      apps,
		bookmarks: bookmarks,
		engine:    engine,
		expanded:  make(map[string]bool),
		input:     input,
		styles:    styles,
	}
	s.rebuild()
	return s
}

// SetSize updates the sidebar dimensions
func (s *Sidebar) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.input.Width = width - 6
}

// SetStyles swaps the style set after a scheme change
func (s *Sidebar) SetStyles(styles theme.Styles) {
	s.styles = styles
}

// FocusSearch moves keyboard focus to the search box
func (s *Sidebar) FocusSearch() tea.Cmd {
	return s.input.Focus()
}

// BlurSearch removes focus from the search box
func (s *Sidebar) BlurSearch() {
	s.input.Blur()
}

// SearchFocused reports whether the search box has focus
func (s *Sidebar) SearchFocused() bool {
	return s.input.Focused()
}

// Query returns the current search query
func (s *Sidebar) Query() string {
	return s.input.Value()
}

// ClearSearch empties the query and rebuilds the row list
func (s *Sidebar) ClearSearch() {
	s.input.SetValue("")
	s.rebuild()
}

// Expand marks an application entry as expanded. Used when navigation
// selects content belonging to the app from elsewhere.
func (s *Sidebar) Expand(slug string) {
	s.expanded[slug] = true
	s.rebuild()
}

// SetUser updates the account shown in the More section and rebuilds
func (s *Sidebar) SetUser(user *domain.User) {
	s.user = user
	s.rebuild()
}

// Refresh rebuilds the row list after bookmarks or enablement changed
func (s *Sidebar) Refresh() {
	s.rebuild()
}

// HandleKey processes a key press while the sidebar owns input focus.
// Returns a command for the text input and an action message when a row
// was selected.
func (s *Sidebar) HandleKey(msg tea.KeyMsg, keys *KeyMap) (tea.Cmd, tea.Msg) {
	if s.input.Focused() {
		switch msg.String() {
		case "esc":
			s.input.Blur()
			return nil, nil
		case "enter", "down":
			// Hand focus to the result list
			s.input.Blur()
			s.snapCursor()
			return nil, nil
		default:
			var cmd tea.Cmd
			s.input, cmd = s.input.Update(msg)
			s.rebuild()
			return cmd, nil
		}
	}

	switch {
	case key.Matches(msg, keys.Navigation.Up.Binding):
		s.move(-1)
	case key.Matches(msg, keys.Navigation.Down.Binding):
		s.move(1)
	case key.Matches(msg, keys.Navigation.Select.Binding):
		return nil, s.selectCurrent()
	}
	return nil, nil
}

// selectCurrent emits the action of the row under the cursor
func (s *Sidebar) selectCurrent() tea.Msg {
	if s.cursor < 0 || s.cursor >= len(s.rows) {
		return nil
	}
	row := s.rows[s.cursor]
	if row.kind == rowApp {
		// Selecting an app both navigates to it and expands its entry
		s.expanded[row.slug] = !s.expanded[row.slug]
		s.rebuild()
	}
	return row.msg
}

// move advances the cursor to the next selectable row in the direction
func (s *Sidebar) move(delta int) {
	if len(s.rows) == 0 {
		return
	}
	i := s.cursor
	for {
		i += delta
		if i < 0 || i >= len(s.rows) {
			return
		}
		if s.rows[i].selectable() {
			s.cursor = i
			return
		}
	}
}

// snapCursor clamps the cursor onto a selectable row after a rebuild
func (s *Sidebar) snapCursor() {
	if s.cursor >= len(s.rows) {
		s.cursor = len(s.rows) - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
	for s.cursor < len(s.rows) && !s.rows[s.cursor].selectable() {
		s.cursor++
	}
	if s.cursor >= len(s.rows) {
		s.cursor = 0
	}
}

// rebuild regenerates the row list from the services and the query
func (s *Sidebar) rebuild() {
	if len(strings.TrimSpace(s.input.Value())) >= search.MinQueryLength {
		s.rows = s.buildSearchRows()
	} else {
		s.rows = s.buildBrowseRows()
	}
	s.snapCursor()
}

func (s *Sidebar) buildSearchRows() []sidebarRow {
	results := s.engine.Search(s.input.Value(), s.apps.Enabled())

	rows := []sidebarRow{{kind: rowSection, label: fmt.Sprintf("Results (%d)", len(results))}}
	if len(results) == 0 {
		rows = append(rows, sidebarRow{kind: rowSection, label: "No shortcuts found"})
		return rows
	}

	for _, result := range results {
		entry := result.Entry
		rows = append(rows, sidebarRow{
			annotation: fmt.Sprintf("%s • %s", entry.App.Name, entry.Category.Name),
			indent:     1,
			kind:       rowSearchResult,
			label:      entry.Shortcut.Action,
			msg: NavigateMsg{View: domain.ShortcutView{
				AppSlug:    entry.App.Slug,
				Category:   entry.Category.Name,
				ShortcutID: entry.ID,
			}},
			slug: entry.App.Slug,
		})
	}
	return rows
}

func (s *Sidebar) buildBrowseRows() []sidebarRow {
	rows := []sidebarRow{{kind: rowSection, label: "Applications"}}

	for _, app := range s.apps.EnabledApps() {
		marker := "▸"
		if s.expanded[app.Slug] {
			marker = "▾"
		}
		rows = append(rows, sidebarRow{
			kind:  rowApp,
			label: fmt.Sprintf("%s %s", marker, app.Name),
			msg:   NavigateMsg{View: domain.AppView{AppSlug: app.Slug}},
			slug:  app.Slug,
		})
		if !s.expanded[app.Slug] {
			continue
		}

		if count := s.bookmarks.CountForApp(app.Slug); count > 0 {
			rows = append(rows, sidebarRow{
				indent: 1,
				kind:   rowSection,
				label:  fmt.Sprintf("Bookmarked (%d)", count),
			})
			for _, entry := range s.bookmarks.AppBookmarks(app.Slug) {
				rows = append(rows, sidebarRow{
					indent: 2,
					kind:   rowBookmarkEntry,
					label:  "★ " + entry.Shortcut.Action,
					msg: NavigateMsg{View: domain.ShortcutView{
						AppSlug:    app.Slug,
						Category:   entry.Category.Name,
						ShortcutID: entry.ID,
					}},
					slug: app.Slug,
				})
			}
		}

		for _, category := range app.Categories {
			rows = append(rows, sidebarRow{
				annotation: fmt.Sprintf("%d", len(category.Shortcuts)),
				indent:     1,
				kind:       rowCategory,
				label:      category.Name,
				msg: NavigateMsg{View: domain.CategoryView{
					AppSlug:  app.Slug,
					Category: category.Name,
				}},
				slug: app.Slug,
			})
		}
	}

	if disabled := s.apps.DisabledApps(); len(disabled) > 0 {
		rows = append(rows, sidebarRow{kind: rowSection, label: "Disabled Applications"})
		for _, app := range disabled {
			rows = append(rows, sidebarRow{
				annotation: "enable",
				indent:     1,
				kind:       rowDisabledApp,
				label:      app.Name,
				msg:        EnableAppMsg{Slug: app.Slug},
				slug:       app.Slug,
			})
		}
	}

	rows = append(rows,
		sidebarRow{kind: rowSection, label: "More"},
		sidebarRow{indent: 1, kind: rowStatic, label: "Guide", msg: NavigateMsg{View: domain.GuideView{}}},
		sidebarRow{indent: 1, kind: rowStatic, label: "About", msg: NavigateMsg{View: domain.AboutView{}}},
		sidebarRow{indent: 1, kind: rowStatic, label: "Settings", msg: ShowSettingsMsg{}},
	)
	if s.user != nil {
		rows = append(rows, sidebarRow{
			annotation: s.user.Username,
			indent:     1,
			kind:       rowStatic,
			label:      "Sign out",
			msg:        LogoutMsg{},
		})
	} else {
		rows = append(rows, sidebarRow{indent: 1, kind: rowStatic, label: "Sign in", msg: ShowLoginMsg{}})
	}
	return rows
}

// View renders the sidebar
func (s *Sidebar) View() string {
	var b strings.Builder

	b.WriteString(s.styles.AppName.Render("KeyStrokes"))
	b.WriteString("\n")
	b.WriteString(s.input.View())
	b.WriteString("\n\n")

	start, end := s.visibleRange()
	for i := start; i < end; i++ {
		row := s.rows[i]
		line := strings.Repeat("  ", row.indent) + row.label
		if row.annotation != "" {
			line += " " + s.styles.Muted.Render(row.annotation)
		}

		switch {
		case i == s.cursor && row.selectable():
			line = s.styles.SelectedRow.Render(line)
		case row.kind == rowSection:
			line = s.styles.SectionHeader.Render(line)
		case row.kind == rowBookmarkEntry:
			line = s.styles.Bookmark.Render(line)
		case row.kind == rowDisabledApp:
			line = s.styles.Muted.Render(line)
		default:
			line = s.styles.Normal.Render(line)
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	content := b.String()
	if s.width > 0 {
		return s.styles.SidebarBorder.Width(s.width).Render(content)
	}
	return content
}

// visibleRange crops the row list to the available height, keeping the
// cursor in view
func (s *Sidebar) visibleRange() (int, int) {
	// Header and search box take 3 lines
	avail := s.height - 3
	if avail <= 0 || len(s.rows) <= avail {
		return 0, len(s.rows)
	}
	start := s.cursor - avail/2
	if start < 0 {
		start = 0
	}
	end := start + avail
	if end > len(s.rows) {
		end = len(s.rows)
		start = end - avail
	}
	return start, end
}
