package cmd

import (
	"context"
	"encoding/json"
	"fmt"
)

// BookmarksCmd manages bookmarked shortcuts
type BookmarksCmd struct {
	Clear  BookmarksClearCmd  `cmd:"clear" help:"Remove all bookmarks"`
	List   BookmarksListCmd   `cmd:"list" help:"List all bookmarked shortcuts" default:"1"`
	Toggle BookmarksToggleCmd `cmd:"toggle" help:"Bookmark or unbookmark a shortcut by ID"`
}

// BookmarksListCmd lists bookmarked shortcuts grouped by application
type BookmarksListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the list command
func (b *BookmarksListCmd) Run(cli *CLI) error {
	defer cli.Close()

	type bookmarkRow struct {
		Action string `json:"action"`
		App    string `json:"app"`
		ID     string `json:"id"`
		Keys   string `json:"keys"`
	}

	var rows []bookmarkRow
	for _, app := range cli.Container.Catalog.Apps() {
		for _, entry := range cli.Container.BookmarksService.AppBookmarks(app.Slug) {
			keys := entry.Shortcut.Keys
			if entry.Shortcut.HasVariants() {
				keys = entry.Shortcut.Variants[0].Keys
			}
			rows = append(rows, bookmarkRow{
				Action: entry.Shortcut.Action,
				App:    entry.App.Name,
				ID:     entry.ID,
				Keys:   keys,
			})
		}
	}

	if b.Format == "json" {
		data, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	if len(rows) == 0 {
		fmt.Println("No bookmarks yet")
		return nil
	}
	for _, row := range rows {
		fmt.Printf("%-20s %-36s %-20s %s\n", row.App, row.Action, row.Keys, row.ID)
	}
	return nil
}

// BookmarksClearCmd removes every bookmark
type BookmarksClearCmd struct{}

// Run executes the clear command
func (b *BookmarksClearCmd) Run(cli *CLI) error {
	defer cli.Close()

	count := cli.Container.BookmarksService.Total()
	if !cli.Container.BookmarksService.Clear(context.Background()) {
		return fmt.Errorf("failed to save bookmarks")
	}
	fmt.Printf("Removed %d bookmarks\n", count)
	return nil
}

// BookmarksToggleCmd toggles the bookmark on one shortcut
type BookmarksToggleCmd struct {
	ID string `arg:"" help:"Shortcut ID, e.g. vscode-navigation-go-to-file"`
}

// Run executes the toggle command
func (b *BookmarksToggleCmd) Run(cli *CLI) error {
	defer cli.Close()

	entry, ok := cli.Container.Catalog.Entry(b.ID)
	if !ok {
		return fmt.Errorf("unknown shortcut '%s'", b.ID)
	}

	bookmarked, persisted := cli.Container.BookmarksService.Toggle(context.Background(), entry.App.Slug, entry.ID)
	if !persisted {
		return fmt.Errorf("failed to save bookmarks")
	}
	if bookmarked {
		fmt.Printf("Bookmarked %s\n", entry.Shortcut.Action)
	} else {
		fmt.Printf("Removed bookmark from %s\n", entry.Shortcut.Action)
	}
	return nil
}
