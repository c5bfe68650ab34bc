package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"keystrokes/internal/cmd"
)

func main() {
	// Make the build version available to the UI before parsing
	cmd.SetBuildInfo(Version, Tagline)

	// Parse CLI arguments with Kong
	var cli cmd.CLI
	ctx := kong.Parse(&cli,
		kong.Name("keystrokes"),
		kong.Description(Tagline),
		kong.UsageOnError(),
		kong.Vars{"version": Version},
	)

	// Execute the selected command
	if err := ctx.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
