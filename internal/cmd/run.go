package cmd

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"keystrokes/internal/config"
	"keystrokes/internal/domain"
	"keystrokes/internal/logging"
	"keystrokes/internal/ui"
)

// RunCmd starts the TUI application
type RunCmd struct {
	ErrorClearDelay int `help:"Seconds before error messages auto-clear" default:"10"`
	SidebarWidth    int `help:"Width of the sidebar column in characters" default:"32"`
}

// Run executes the TUI
func (r *RunCmd) Run(cli *CLI) error {
	defer cli.Close()

	// Apply RunCmd-specific settings with proper precedence
	// Only apply if flag is at default value

	if cli.settings != nil {
		if r.ErrorClearDelay == 10 {
			if cli.settings.ErrorClearDelay != nil {
				r.ErrorClearDelay = *cli.settings.ErrorClearDelay
			}
		}
		if r.SidebarWidth == 32 {
			if cli.settings.SidebarWidth != nil {
				r.SidebarWidth = *cli.settings.SidebarWidth
			}
		}
	}

	// Validate key bindings if configured
	var keysConfig config.KeyBindingsConfig
	if cli.settings != nil && cli.settings.Keys != nil {
		if err := cli.settings.Keys.Validate(ui.GetValidKeyNames()); err != nil {
			return fmt.Errorf("invalid key bindings in settings.json: %w", err)
		}
		keysConfig = cli.settings.Keys
		logging.Logger.Debug("Custom key bindings loaded and validated")
	}

	ui.SetVersionInfo(ui.VersionInfo{
		Tagline: buildTagline,
		Version: buildVersion,
	})

	logging.Logger.Info("Starting keystrokes TUI",
		"apps", len(cli.Container.Catalog.Apps()),
		"shortcuts", cli.Container.Catalog.Len())

	errorClearDelay := time.Duration(r.ErrorClearDelay) * time.Second
	model := ui.NewModel(
		errorClearDelay,
		r.SidebarWidth,
		keysConfig,
		cli.Container.Catalog,
		cli.Container.SearchEngine,
		cli.Container.PreferencesService,
		cli.Container.BookmarksService,
		cli.Container.AppsService,
		cli.Container.ThemeService,
		cli.Container.AuthService,
	)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	// Forward live terminal scheme flips into the running program. The
	// subscription only fires while the preference is "system".
	cli.Container.ThemeService.SetOnChange(func(scheme domain.ColorScheme) {
		p.Send(ui.SchemeChangedMsg{Scheme: scheme})
	})

	logging.Logger.Info("Starting TUI program")
	if _, err := p.Run(); err != nil {
		logging.Logger.Error("TUI program error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}

	logging.Logger.Info("TUI program exited normally")
	return nil
}
