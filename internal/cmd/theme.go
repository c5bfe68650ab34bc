package cmd

import (
	"context"
	"fmt"

	"keystrokes/internal/domain"
)

// ThemeCmd shows or sets the theme preference
type ThemeCmd struct {
	Set  ThemeSetCmd  `cmd:"set" help:"Set the theme preference"`
	Show ThemeShowCmd `cmd:"show" help:"Show the current theme preference" default:"1"`
}

// ThemeShowCmd shows the stored preference and the scheme it resolves to
type ThemeShowCmd struct{}

// Run executes the show command
func (t *ThemeShowCmd) Run(cli *CLI) error {
	defer cli.Close()

	fmt.Printf("Preference: %s\n", cli.Container.ThemeService.Preference())
	fmt.Printf("Rendering:  %s\n", cli.Container.ThemeService.Actual())
	return nil
}

// ThemeSetCmd sets the theme preference
type ThemeSetCmd struct {
	Preference string `arg:"" help:"Theme preference" enum:"system,light,dark"`
}

// Run executes the set command
func (t *ThemeSetCmd) Run(cli *CLI) error {
	defer cli.Close()

	pref := domain.ThemePreference(t.Preference)
	if !cli.Container.ThemeService.SetPreference(context.Background(), pref) {
		return fmt.Errorf("failed to save theme preference")
	}
	fmt.Printf("Theme set to %s\n", pref)
	return nil
}
