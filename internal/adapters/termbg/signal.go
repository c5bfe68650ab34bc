// Package termbg reports the terminal's color scheme by inspecting its
// background color.
package termbg

import (
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"

	"keystrokes/internal/domain"
	"keystrokes/internal/logging"
	"keystrokes/internal/ports"
)

// defaultPollInterval is how often subscribers re-check the terminal
// background. Terminals emit no event on palette changes, so polling is the
// only portable detection.
const defaultPollInterval = 5 * time.Second

// Signal implements ports.ColorSchemeSignal for the local terminal
type Signal struct {
	pollInterval time.Duration

	mu   sync.Mutex
	last domain.ColorScheme
}

// Verify interface compliance at compile time
var _ ports.ColorSchemeSignal = (*Signal)(nil)

// NewSignal creates a terminal background signal with the default poll
// interval
func NewSignal() *Signal {
	s := &Signal{pollInterval: defaultPollInterval}
	s.last = s.Current()
	return s
}

// Current returns the scheme the terminal background implies right now
func (s *Signal) Current() domain.ColorScheme {
	if lipgloss.HasDarkBackground() {
		return domain.SchemeDark
	}
	return domain.SchemeLight
}

// Subscribe starts polling the terminal background and invokes onChange
// whenever the detected scheme flips. The returned cancel function stops the
// polling goroutine and may be called multiple times.
func (s *Signal) Subscribe(onChange func(domain.ColorScheme)) func() {
	stop := make(chan struct{})
	var once sync.Once

	go func() {
		ticker := time.NewTicker(s.pollInterval)
		defer ticker.Stop()

		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				current := s.Current()
				s.mu.Lock()
				changed := current != s.last
				s.last = current
				s.mu.Unlock()
				if changed {
					logging.Logger.Debug("Terminal color scheme changed", "scheme", current)
					onChange(current)
				}
			}
		}
	}()

	return func() {
		once.Do(func() { close(stop) })
	}
}
