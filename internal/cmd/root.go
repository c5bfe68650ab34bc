package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"keystrokes/internal/config"
	"keystrokes/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	Run       RunCmd       `cmd:"" help:"Start the keystrokes TUI (default)" default:"1"`
	Apps      AppsCmd      `cmd:"apps" help:"Manage application enablement (list, enable, disable)"`
	Bookmarks BookmarksCmd `cmd:"bookmarks" help:"Manage bookmarked shortcuts (list, toggle)"`
	Search    SearchCmd    `cmd:"search" help:"Search shortcuts from the command line"`
	Theme     ThemeCmd     `cmd:"theme" help:"Show or set the theme preference"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// Build identification, overridable from main via SetBuildInfo
var (
	buildTagline = "Keyboard shortcut reference browser for your terminal"
	buildVersion = "dev"
)

// SetBuildInfo records the version information injected at build time so
// the UI can display it
func SetBuildInfo(version, tagline string) {
	if version != "" {
		buildVersion = version
	}
	if tagline != "" {
		buildTagline = tagline
	}
}

// SetSettings sets the settings on the CLI struct. Used by tests; normal
// runs load settings in AfterApply.
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Load settings.json unless a test injected settings already
	if c.settings == nil {
		settings, err := config.LoadSettings()
		if err != nil {
			return err
		}
		c.settings = settings
	}

	// Apply settings with proper precedence: CLI flags > env vars > settings.json > defaults
	// Only apply if flag is at default value and env var is not set

	if c.MaxLogFiles == 1000 {
		if _, hasEnv := os.LookupEnv("KEYSTROKES_MAX_LOG_FILES"); !hasEnv {
			if c.settings.MaxLogFiles != nil {
				c.MaxLogFiles = *c.settings.MaxLogFiles
			}
		}
	}

	if !c.Debug {
		if _, hasEnv := os.LookupEnv("KEYSTROKES_DEBUG"); !hasEnv {
			if c.settings.Debug != nil && *c.settings.Debug {
				c.Debug = true
			}
		}
	}

	// Initialize logging first and get the log file path
	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Set environment variables AFTER initialization so child processes
	// inherit debug settings and use the SAME log file
	if c.Debug || c.DebugFile != "" {
		os.Setenv("KEYSTROKES_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("KEYSTROKES_DEBUG_FILE", logFilePath)
		}
	}
	if c.MaxLogFiles != 1000 {
		os.Setenv("KEYSTROKES_MAX_LOG_FILES", fmt.Sprintf("%d", c.MaxLogFiles))
	}

	// Create container AFTER logging is initialized so the storage layer
	// can log through logging.Logger
	container, err := NewContainer()
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}
