package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"keystrokes/internal/search"
)

// SearchCmd searches shortcuts from the command line
type SearchCmd struct {
	All    bool     `help:"Search all applications, not just enabled ones"`
	Format string   `help:"Output format: table or json" enum:"table,json" default:"table"`
	Query  []string `arg:"" help:"Search query"`
}

// Run executes the search command
func (s *SearchCmd) Run(cli *CLI) error {
	defer cli.Close()

	query := strings.Join(s.Query, " ")
	if len(strings.TrimSpace(query)) < search.MinQueryLength {
		return fmt.Errorf("query must be at least %d characters", search.MinQueryLength)
	}

	enabled := cli.Container.AppsService.Enabled()
	if s.All {
		enabled = nil
		for _, app := range cli.Container.Catalog.Apps() {
			enabled = append(enabled, app.Slug)
		}
	}

	results := cli.Container.SearchEngine.Search(query, enabled)

	if s.Format == "json" {
		type resultRow struct {
			Action    string `json:"action"`
			App       string `json:"app"`
			Category  string `json:"category"`
			ID        string `json:"id"`
			Keys      string `json:"keys"`
			MatchType string `json:"match_type"`
		}
		rows := make([]resultRow, 0, len(results))
		for _, result := range results {
			keys := result.Entry.Shortcut.Keys
			if result.Entry.Shortcut.HasVariants() {
				keys = result.Entry.Shortcut.Variants[0].Keys
			}
			rows = append(rows, resultRow{
				Action:    result.Entry.Shortcut.Action,
				App:       result.Entry.App.Name,
				Category:  result.Entry.Category.Name,
				ID:        result.Entry.ID,
				Keys:      keys,
				MatchType: string(result.MatchType),
			})
		}
		data, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	if len(results) == 0 {
		fmt.Println("No shortcuts found")
		return nil
	}
	for _, result := range results {
		entry := result.Entry
		keys := entry.Shortcut.Keys
		if entry.Shortcut.HasVariants() {
			parts := make([]string, len(entry.Shortcut.Variants))
			for i, variant := range entry.Shortcut.Variants {
				parts[i] = fmt.Sprintf("%s: %s", variant.OS, variant.Keys)
			}
			keys = strings.Join(parts, " | ")
		}
		fmt.Printf("%-20s %-20s %-36s %s\n", entry.App.Name, entry.Category.Name, entry.Shortcut.Action, keys)
	}
	return nil
}
