package ports

import "keystrokes/internal/domain"

// ColorSchemeSignal exposes the host environment's current color scheme and
// change notifications for it.
type ColorSchemeSignal interface {
	// Current returns the scheme the host environment reports right now
	Current() domain.ColorScheme

	// Subscribe registers a callback invoked on every scheme change. The
	// returned function cancels the subscription; it is safe to call more
	// than once.
	Subscribe(onChange func(domain.ColorScheme)) (cancel func())
}
