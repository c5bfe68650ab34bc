package main

// Version is the application version, overridden at build time via ldflags
var Version = "dev"

// Tagline is the one-line description shown in CLI help
const Tagline = "Keyboard shortcut reference browser for your terminal"
