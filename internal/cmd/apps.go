package cmd

import (
	"context"
	"encoding/json"
	"fmt"
)

// AppsCmd manages application enablement
type AppsCmd struct {
	Disable AppsDisableCmd `cmd:"disable" help:"Disable an application"`
	Enable  AppsEnableCmd  `cmd:"enable" help:"Enable an application"`
	List    AppsListCmd    `cmd:"list" help:"List all catalogue applications" default:"1"`
}

// AppsListCmd lists catalogue applications and their enablement
type AppsListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the list command
func (a *AppsListCmd) Run(cli *CLI) error {
	defer cli.Close()

	type appRow struct {
		Categories int    `json:"categories"`
		Enabled    bool   `json:"enabled"`
		Name       string `json:"name"`
		Shortcuts  int    `json:"shortcuts"`
		Slug       string `json:"slug"`
	}

	var rows []appRow
	for _, app := range cli.Container.Catalog.Apps() {
		shortcuts := 0
		for _, category := range app.Categories {
			shortcuts += len(category.Shortcuts)
		}
		rows = append(rows, appRow{
			Categories: len(app.Categories),
			Enabled:    cli.Container.AppsService.IsEnabled(app.Slug),
			Name:       app.Name,
			Shortcuts:  shortcuts,
			Slug:       app.Slug,
		})
	}

	if a.Format == "json" {
		data, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("%-24s %-24s %-10s %-11s %s\n", "NAME", "SLUG", "CATEGORIES", "SHORTCUTS", "ENABLED")
	for _, row := range rows {
		enabled := "no"
		if row.Enabled {
			enabled = "yes"
		}
		fmt.Printf("%-24s %-24s %-10d %-11d %s\n", row.Name, row.Slug, row.Categories, row.Shortcuts, enabled)
	}
	return nil
}

// AppsEnableCmd enables an application
type AppsEnableCmd struct {
	Slug string `arg:"" help:"Application slug to enable"`
}

// Run executes the enable command
func (a *AppsEnableCmd) Run(cli *CLI) error {
	defer cli.Close()

	if _, ok := cli.Container.Catalog.App(a.Slug); !ok {
		return fmt.Errorf("unknown application '%s'", a.Slug)
	}
	if !cli.Container.AppsService.Enable(context.Background(), a.Slug) {
		return fmt.Errorf("failed to save enabled applications")
	}
	fmt.Printf("Enabled %s\n", a.Slug)
	return nil
}

// AppsDisableCmd disables an application
type AppsDisableCmd struct {
	Slug string `arg:"" help:"Application slug to disable"`
}

// Run executes the disable command
func (a *AppsDisableCmd) Run(cli *CLI) error {
	defer cli.Close()

	if !cli.Container.AppsService.IsEnabled(a.Slug) {
		return fmt.Errorf("application '%s' is not enabled", a.Slug)
	}
	if _, persisted := cli.Container.AppsService.Toggle(context.Background(), a.Slug); !persisted {
		return fmt.Errorf("failed to save enabled applications")
	}
	fmt.Printf("Disabled %s\n", a.Slug)
	return nil
}
