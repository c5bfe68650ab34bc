package services

import (
	"context"
	"sync"

	"keystrokes/internal/domain"
	"keystrokes/internal/logging"
	"keystrokes/internal/ports"
)

// ThemeService owns the theme preference and the live system-scheme
// subscription. A subscription to the host signal exists only while the
// preference is "system"; switching to an explicit scheme tears it down.
// The signal invokes its callback from its own goroutine, so all state is
// guarded by a mutex.
type ThemeService struct {
	mu       sync.Mutex
	cancel   func()
	onChange func(domain.ColorScheme)
	pref     domain.ThemePreference
	prefs    *PreferencesService
	signal   ports.ColorSchemeSignal
	system   domain.ColorScheme
}

// NewThemeService creates a ThemeService seeded from the persisted
// preference. The onChange callback fires whenever the actual scheme may
// have changed because the host scheme flipped while following it.
func NewThemeService(ctx context.Context, prefs *PreferencesService, signal ports.ColorSchemeSignal, onChange func(domain.ColorScheme)) *ThemeService {
	s := &ThemeService{
		onChange: onChange,
		pref:     prefs.LoadTheme(ctx),
		prefs:    prefs,
		signal:   signal,
		system:   signal.Current(),
	}
	if s.pref == domain.ThemeSystem {
		s.subscribe()
	}
	return s
}

// SetOnChange replaces the change callback. Used when the consumer that
// needs notifications is constructed after the service.
func (s *ThemeService) SetOnChange(onChange func(domain.ColorScheme)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = onChange
}

// Preference returns the stored theme preference
func (s *ThemeService) Preference() domain.ThemePreference {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pref
}

// Actual returns the concrete scheme to render with
func (s *ThemeService) Actual() domain.ColorScheme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.ResolveScheme(s.pref, s.system)
}

// SetPreference updates and persists the preference, managing the system
// subscription lifecycle. Returns whether persisting succeeded.
func (s *ThemeService) SetPreference(ctx context.Context, pref domain.ThemePreference) (persisted bool) {
	if !pref.IsValid() {
		logging.Logger.Warn("Ignoring invalid theme preference", "value", pref)
		return false
	}

	s.mu.Lock()
	wasSystem := s.pref == domain.ThemeSystem
	s.pref = pref
	isSystem := pref == domain.ThemeSystem

	switch {
	case isSystem && !wasSystem:
		s.system = s.signal.Current()
		s.subscribeLocked()
	case !isSystem && wasSystem:
		s.unsubscribeLocked()
	}
	s.mu.Unlock()

	persisted = s.prefs.SaveTheme(ctx, pref)
	logging.Logger.Debug("Theme preference set", "preference", pref, "persisted", persisted)
	return persisted
}

// Toggle switches to the concrete opposite of the currently rendered
// scheme. Toggling while following the system scheme deliberately leaves
// system mode.
func (s *ThemeService) Toggle(ctx context.Context) (persisted bool) {
	next := domain.ThemePreference(s.Actual().Opposite())
	return s.SetPreference(ctx, next)
}

// Reset reloads the preference from the store without writing anything
// back, managing the subscription lifecycle. Used after clearing all data.
func (s *ThemeService) Reset(ctx context.Context) {
	pref := s.prefs.LoadTheme(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	wasSystem := s.pref == domain.ThemeSystem
	s.pref = pref
	isSystem := pref == domain.ThemeSystem

	switch {
	case isSystem && !wasSystem:
		s.system = s.signal.Current()
		s.subscribeLocked()
	case !isSystem && wasSystem:
		s.unsubscribeLocked()
	}
}

// Close tears down any live subscription
func (s *ThemeService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unsubscribeLocked()
}

func (s *ThemeService) subscribe() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribeLocked()
}

// subscribeLocked requires s.mu to be held. The callback runs on the
// signal's goroutine and takes the lock itself, which is safe because
// Subscribe only registers it.
func (s *ThemeService) subscribeLocked() {
	s.unsubscribeLocked()
	s.cancel = s.signal.Subscribe(func(scheme domain.ColorScheme) {
		s.mu.Lock()
		s.system = scheme
		onChange := s.onChange
		s.mu.Unlock()

		if onChange != nil {
			onChange(scheme)
		}
	})
}

// unsubscribeLocked requires s.mu to be held
func (s *ThemeService) unsubscribeLocked() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}
