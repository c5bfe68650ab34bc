package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"keystrokes/internal/theme"
)

// HelpScreen displays keyboard shortcuts organized by category
type HelpScreen struct {
	Completed   bool
	content     string         // Pre-built help content
	height      int            // Terminal height
	initialized bool           // Track if viewport has been sized
	keys        *KeyMap        // Key bindings to display
	styles      theme.Styles
	viewport    viewport.Model // Scrollable viewport
	width       int            // Terminal width
}

// buildHelpContent builds the complete help text content using key bindings
func buildHelpContent(keys *KeyMap, styles theme.Styles) string {
	var content string

	renderShortcut := func(key, description string) string {
		return styles.HelpKey.Render(key) + styles.HelpDesc.Render(description) + "\n"
	}
	renderBinding := func(binding key.Binding) string {
		help := binding.Help()
		return renderShortcut(help.Key, help.Desc)
	}

	// Navigation
	content += styles.HelpGroup.Render("Navigation") + "\n"
	content += renderBinding(keys.Navigation.Up.Binding)
	content += renderBinding(keys.Navigation.Down.Binding)
	content += renderBinding(keys.Navigation.Select.Binding)
	content += renderBinding(keys.Navigation.Back.Binding)
	content += renderBinding(keys.Navigation.Home.Binding)
	content += renderBinding(keys.Navigation.Sidebar.Binding)

	// Search
	content += "\n" + styles.HelpGroup.Render("Search") + "\n"
	content += renderBinding(keys.Navigation.FocusSearch.Binding)
	content += renderShortcut("esc", "leave the search box")

	// Shortcut view
	content += "\n" + styles.HelpGroup.Render("Shortcut View") + "\n"
	content += renderBinding(keys.Navigation.Bookmark.Binding)

	// Application
	content += "\n" + styles.HelpGroup.Render("Application") + "\n"
	content += renderBinding(keys.Application.ToggleTheme.Binding)
	content += renderBinding(keys.Application.Settings.Binding)
	content += renderBinding(keys.Application.Help.Binding)
	content += renderBinding(keys.Application.Quit.Binding)
	content += renderBinding(keys.Application.ForceQuit.Binding)

	// Sidebar Markers
	content += "\n" + styles.HelpGroup.Render("Sidebar Markers (read-only)") + "\n"
	content += renderShortcut("▸ / ▾", "application collapsed / expanded")
	content += renderShortcut("★", "bookmarked shortcut")

	return content
}

// NewHelpScreen creates a new help screen component
func NewHelpScreen(keys *KeyMap, styles theme.Styles) *HelpScreen {
	content := buildHelpContent(keys, styles)
	return &HelpScreen{
		Completed:   false,
		content:     content,
		initialized: false,
		keys:        keys,
		styles:      styles,
		viewport:    viewport.New(0, 0),
	}
}

// Init implements tea.Model
func (h *HelpScreen) Init() tea.Cmd {
	h.viewport.KeyMap.Up.SetKeys("up", "k")
	h.viewport.KeyMap.Down.SetKeys("down", "j")
	return nil
}

// Update implements tea.Model
func (h *HelpScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h.width = msg.Width
		h.height = msg.Height

		// Dialog header: 4 lines, Footer: 2 lines
		viewportHeight := msg.Height - 6
		if viewportHeight < 5 {
			viewportHeight = 5
		}

		h.viewport.Width = msg.Width
		h.viewport.Height = viewportHeight
		h.viewport.SetContent(h.content)
		h.initialized = true
		return h, nil

	case tea.KeyMsg:
		if msg.String() == "esc" || key.Matches(msg, h.keys.Application.Quit.Binding, h.keys.Application.Help.Binding) {
			h.Completed = true
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.viewport, cmd = h.viewport.Update(msg)
	return h, cmd
}

// View implements tea.Model
func (h *HelpScreen) View() string {
	if !h.initialized {
		return "Loading help..."
	}

	footer := h.styles.Muted.Render("Press esc, q, or ? to close • ↑↓/jk/PgUp/PgDn to scroll")
	return h.viewport.View() + "\n\n" + footer
}
