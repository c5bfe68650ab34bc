package ui

import (
	"fmt"
	"strings"

	"keystrokes/internal/domain"
)

// renderContent renders the current navigation view for the content pane
func (m *Model) renderContent() string {
	switch view := m.view.(type) {
	case domain.HomeView:
		return m.renderHome()
	case domain.AppView:
		return m.renderApp(view)
	case domain.CategoryView:
		return m.renderCategory(view)
	case domain.ShortcutView:
		return m.renderShortcut(view)
	case domain.GuideView:
		return m.renderGuide()
	case domain.AboutView:
		return m.renderAbout()
	default:
		return m.styles.Error.Render("unknown view")
	}
}

func (m *Model) renderHome() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Welcome to KeyStrokes"))
	b.WriteString("\n")
	b.WriteString(m.styles.Normal.Render("Your keyboard shortcut reference, one keystroke away."))
	b.WriteString("\n\n")

	if user := m.user; user != nil {
		b.WriteString(m.styles.Subtle.Render(fmt.Sprintf("Signed in as %s", user.Username)))
		b.WriteString("\n\n")
	}

	b.WriteString(m.styles.Subtitle.Render("Getting started"))
	b.WriteString("\n")
	for _, line := range []string{
		"Pick an application in the sidebar to browse its shortcuts",
		"Press " + m.keys.Navigation.FocusSearch.Binding.Help().Key + " to search across all enabled applications",
		"Press " + m.keys.Navigation.Bookmark.Binding.Help().Key + " on a shortcut to bookmark it",
		"Press " + m.keys.Application.Settings.Binding.Help().Key + " to enable more applications",
	} {
		b.WriteString(m.styles.Normal.Render("  • " + line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render(fmt.Sprintf("%d shortcuts across %d applications in the catalogue",
		m.catalog.Len(), len(m.catalog.Apps()))))

	if allTips := GetTips(); len(allTips) > 0 {
		b.WriteString("\n\n")
		b.WriteString(RenderTip(allTips[m.tipIndex%len(allTips)], m.styles))
	}
	return b.String()
}

func (m *Model) renderApp(view domain.AppView) string {
	app, ok := m.catalog.App(view.AppSlug)
	if !ok {
		return m.styles.Error.Render("unknown application")
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render(app.Name))
	b.WriteString("\n")
	if len(app.Platforms) > 0 {
		badges := make([]string, len(app.Platforms))
		for i, platform := range app.Platforms {
			badges[i] = m.styles.KeyCap.Render(platform)
		}
		b.WriteString(strings.Join(badges, " "))
		b.WriteString("\n")
	}
	if app.Description != "" {
		b.WriteString(m.styles.Normal.Render(app.Description))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	for _, category := range app.Categories {
		b.WriteString(m.styles.Subtitle.Render(category.Name))
		b.WriteString(m.styles.Muted.Render(fmt.Sprintf("  %d shortcuts", len(category.Shortcuts))))
		b.WriteString("\n")
	}
	if count := m.bookmarks.CountForApp(app.Slug); count > 0 {
		b.WriteString("\n")
		b.WriteString(m.styles.Bookmark.Render(fmt.Sprintf("★ %d bookmarked", count)))
	}
	return b.String()
}

func (m *Model) renderCategory(view domain.CategoryView) string {
	app, ok := m.catalog.App(view.AppSlug)
	if !ok {
		return m.styles.Error.Render("unknown application")
	}
	category, ok := m.catalog.Category(view.AppSlug, view.Category)
	if !ok {
		return m.styles.Error.Render("unknown category")
	}

	var b strings.Builder
	b.WriteString(m.styles.Breadcrumb.Render(app.Name + " › " + category.Name))
	b.WriteString("\n\n")
	for _, shortcut := range category.Shortcuts {
		id := domain.ShortcutID(app.Slug, category.Name, shortcut.Action)
		marker := "  "
		if m.bookmarks.IsBookmarked(app.Slug, id) {
			marker = m.styles.Bookmark.Render("★ ")
		}
		b.WriteString(marker)
		b.WriteString(m.styles.Highlight.Render(shortcut.Action))
		b.WriteString("  ")
		b.WriteString(m.renderKeys(shortcut))
		b.WriteString("\n")
		if shortcut.Description != "" {
			b.WriteString(m.styles.Subtle.Render("    " + shortcut.Description))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m *Model) renderShortcut(view domain.ShortcutView) string {
	entry, ok := m.catalog.Entry(view.ShortcutID)
	if !ok {
		return m.styles.Error.Render("unknown shortcut")
	}

	var b strings.Builder
	b.WriteString(m.styles.Breadcrumb.Render(
		entry.App.Name + " › " + entry.Category.Name + " › " + entry.Shortcut.Action))
	b.WriteString("\n\n")

	b.WriteString(m.styles.Title.Render(entry.Shortcut.Action))
	b.WriteString("\n")

	if entry.Shortcut.HasVariants() {
		for _, variant := range entry.Shortcut.Variants {
			b.WriteString(m.styles.Subtle.Render(fmt.Sprintf("%-10s", variant.OS)))
			b.WriteString(m.styles.KeyCap.Render(variant.Keys))
			b.WriteString("\n")
		}
	} else {
		b.WriteString(m.styles.KeyCap.Render(entry.Shortcut.Keys))
		b.WriteString("\n")
	}

	if entry.Shortcut.Context != "" {
		b.WriteString(m.styles.Subtle.Render("Context: " + entry.Shortcut.Context))
		b.WriteString("\n")
	}

	if entry.Shortcut.Description != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Normal.Render(entry.Shortcut.Description))
		b.WriteString("\n")
	}

	if entry.Shortcut.Notes != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Subtle.Render("Note: " + entry.Shortcut.Notes))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.bookmarks.IsBookmarked(entry.App.Slug, entry.ID) {
		b.WriteString(m.styles.Bookmark.Render("★ Bookmarked"))
		b.WriteString(m.styles.Muted.Render("  press " + m.keys.Navigation.Bookmark.Binding.Help().Key + " to remove"))
	} else {
		b.WriteString(m.styles.Muted.Render("press " + m.keys.Navigation.Bookmark.Binding.Help().Key + " to bookmark"))
	}
	return b.String()
}

// renderKeys renders a shortcut's key sequence, or its per-platform
// variants on one line
func (m *Model) renderKeys(shortcut domain.Shortcut) string {
	if !shortcut.HasVariants() {
		return m.styles.KeyCap.Render(shortcut.Keys)
	}
	parts := make([]string, len(shortcut.Variants))
	for i, variant := range shortcut.Variants {
		parts[i] = m.styles.Subtle.Render(variant.OS+": ") + m.styles.KeyCap.Render(variant.Keys)
	}
	return strings.Join(parts, m.styles.Muted.Render(" | "))
}

func (m *Model) renderGuide() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Guide"))
	b.WriteString("\n")
	sections := []struct {
		title string
		body  string
	}{
		{"Browsing", "Applications live in the sidebar. Select one to see its categories, select a category to list its shortcuts, and select a shortcut for the full detail view."},
		{"Searching", "The search box matches shortcut names, descriptions, categories, and key sequences of every enabled application. Queries shorter than two characters are ignored."},
		{"Bookmarks", "Bookmark shortcuts you use often. They appear under their application in the sidebar and survive restarts."},
		{"Applications", "Only enabled applications appear in browsing and search. Enable more from the sidebar's disabled section or the settings dialog."},
		{"Themes", "KeyStrokes follows your terminal's scheme by default. Toggle an explicit light or dark theme at any time."},
	}
	for _, section := range sections {
		b.WriteString(m.styles.Subtitle.Render(section.title))
		b.WriteString("\n")
		b.WriteString(m.styles.Normal.Render(section.body))
		b.WriteString("\n\n")
	}
	return b.String()
}

func (m *Model) renderAbout() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("About KeyStrokes"))
	b.WriteString("\n")
	b.WriteString(m.styles.Normal.Render("A keyboard shortcut reference browser for people who would rather not leave the terminal."))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Subtle.Render("Catalogue data is bundled with the application. Preferences are stored locally and never leave your machine."))
	return b.String()
}
