package ui

import (
	"strings"
	"unicode/utf8"
)

const (
	maxErrorLines  = 2
	errorPrefix    = "Error: "
	truncationMark = "..."
)

// formatErrorForDisplay renders an error for the footer: at most two lines,
// word-wrapped to the terminal width, truncated with "..." when longer.
func formatErrorForDisplay(err error, maxWidth int) string {
	if err == nil {
		return ""
	}
	message := err.Error()
	if message == "" {
		return errorPrefix + "unknown error"
	}

	width := maxWidth
	if width < 20 {
		width = 20
	}

	words := strings.Fields(message)
	var lines []string
	line := errorPrefix
	for _, word := range words {
		if line != "" && utf8.RuneCountInString(line)+1+utf8.RuneCountInString(word) > width {
			lines = append(lines, line)
			if len(lines) == maxErrorLines {
				break
			}
			line = word
			continue
		}
		if line == "" || line == errorPrefix {
			line += word
		} else {
			line += " " + word
		}
	}
	if len(lines) < maxErrorLines && line != "" && line != errorPrefix {
		lines = append(lines, line)
	} else if len(lines) == maxErrorLines {
		// Truncate the last visible line to make room for the mark
		last := lines[maxErrorLines-1]
		maxRunes := width - utf8.RuneCountInString(truncationMark)
		if runes := []rune(last); len(runes) > maxRunes && maxRunes > 0 {
			last = string(runes[:maxRunes])
		}
		lines[maxErrorLines-1] = last + truncationMark
	}

	if len(lines) == 0 {
		return errorPrefix + message
	}
	return strings.Join(lines, "\n")
}
