package services

import (
	"context"

	"keystrokes/internal/catalog"
	"keystrokes/internal/domain"
	"keystrokes/internal/logging"
)

// AppsService manages which catalogue applications are enabled. Only the
// ordered enabled list is stored; the disabled list is always derived from
// the catalogue so the two can never disagree.
type AppsService struct {
	enabled []string
	index   *catalog.Index
	prefs   *PreferencesService
}

// NewAppsService creates an AppsService seeded from the persisted
// enablement list
func NewAppsService(ctx context.Context, prefs *PreferencesService, index *catalog.Index) *AppsService {
	return &AppsService{
		enabled: prefs.LoadEnabledApps(ctx),
		index:   index,
		prefs:   prefs,
	}
}

// Enabled returns the enabled app slugs in enablement order
func (s *AppsService) Enabled() []string {
	return append([]string(nil), s.enabled...)
}

// EnabledApps returns the enabled applications resolved against the
// catalogue, in enablement order. Slugs not present in the catalogue are
// skipped.
func (s *AppsService) EnabledApps() []domain.Application {
	apps := make([]domain.Application, 0, len(s.enabled))
	for _, slug := range s.enabled {
		if app, ok := s.index.App(slug); ok {
			apps = append(apps, app)
		}
	}
	return apps
}

// DisabledApps returns the catalogue applications that are not enabled, in
// catalogue order
func (s *AppsService) DisabledApps() []domain.Application {
	var apps []domain.Application
	for _, app := range s.index.Apps() {
		if !s.IsEnabled(app.Slug) {
			apps = append(apps, app)
		}
	}
	return apps
}

// IsEnabled reports whether an application is enabled
func (s *AppsService) IsEnabled(slug string) bool {
	for _, enabled := range s.enabled {
		if enabled == slug {
			return true
		}
	}
	return false
}

// Toggle enables a disabled application or disables an enabled one, then
// persists the list. Returns whether the app is enabled after the call and
// whether persisting succeeded.
func (s *AppsService) Toggle(ctx context.Context, slug string) (enabled, persisted bool) {
	for i, existing := range s.enabled {
		if existing == slug {
			s.enabled = append(s.enabled[:i], s.enabled[i+1:]...)
			persisted = s.prefs.SaveEnabledApps(ctx, s.enabled)
			logging.Logger.Debug("Application disabled", "app", slug, "persisted", persisted)
			return false, persisted
		}
	}
	s.enabled = append(s.enabled, slug)
	persisted = s.prefs.SaveEnabledApps(ctx, s.enabled)
	logging.Logger.Debug("Application enabled", "app", slug, "persisted", persisted)
	return true, persisted
}

// Enable adds an application to the enabled list if absent. Re-enabling an
// already enabled app is a no-op and never duplicates the slug.
func (s *AppsService) Enable(ctx context.Context, slug string) (persisted bool) {
	if s.IsEnabled(slug) {
		return true
	}
	s.enabled = append(s.enabled, slug)
	persisted = s.prefs.SaveEnabledApps(ctx, s.enabled)
	logging.Logger.Debug("Application enabled", "app", slug, "persisted", persisted)
	return persisted
}

// SetEnabled replaces the whole enabled list and persists it. Used by the
// settings dialog which edits the set in one go.
func (s *AppsService) SetEnabled(ctx context.Context, slugs []string) (persisted bool) {
	s.enabled = append([]string(nil), slugs...)
	persisted = s.prefs.SaveEnabledApps(ctx, s.enabled)
	logging.Logger.Debug("Enabled applications replaced", "count", len(s.enabled), "persisted", persisted)
	return persisted
}

// Reset replaces the in-memory list with the persisted one. Used after
// clearing all data.
func (s *AppsService) Reset(ctx context.Context) {
	s.enabled = s.prefs.LoadEnabledApps(ctx)
}
