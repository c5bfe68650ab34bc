package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAppsService(t *testing.T, store *fakeStore) *AppsService {
	t.Helper()
	prefs := NewPreferencesService(store)
	return NewAppsService(context.Background(), prefs, loadTestIndex(t))
}

func TestApps_SeedEnablement(t *testing.T) {
	svc := newAppsService(t, newFakeStore())
	assert.Equal(t, DefaultEnabledApps, svc.Enabled())
}

func TestApps_ToggleDisableAndReEnable(t *testing.T) {
	store := newFakeStore()
	store.values[KeyEnabledApps] = `["vscode","chrome"]`
	svc := newAppsService(t, store)
	ctx := context.Background()

	enabled, persisted := svc.Toggle(ctx, "vscode")
	assert.False(t, enabled)
	assert.True(t, persisted)
	assert.Equal(t, []string{"chrome"}, svc.Enabled())

	enabled, _ = svc.Toggle(ctx, "vscode")
	assert.True(t, enabled)
	// Re-enabled apps append at the end of the enablement order
	assert.Equal(t, []string{"chrome", "vscode"}, svc.Enabled())
}

func TestApps_EnableIsIdempotent(t *testing.T) {
	store := newFakeStore()
	store.values[KeyEnabledApps] = `["vscode"]`
	svc := newAppsService(t, store)
	ctx := context.Background()

	assert.True(t, svc.Enable(ctx, "vscode"))
	assert.True(t, svc.Enable(ctx, "vscode"))
	assert.Equal(t, []string{"vscode"}, svc.Enabled())
}

func TestApps_DisabledIsDerived(t *testing.T) {
	store := newFakeStore()
	store.values[KeyEnabledApps] = `["vscode","chrome"]`
	svc := newAppsService(t, store)

	index := loadTestIndex(t)
	disabled := svc.DisabledApps()

	// Every catalogue app is either enabled or disabled, never both
	assert.Len(t, disabled, len(index.Apps())-2)
	for _, app := range disabled {
		assert.False(t, svc.IsEnabled(app.Slug))
	}
}

func TestApps_ToggleKeepsInvariantUnderRepetition(t *testing.T) {
	svc := newAppsService(t, newFakeStore())
	ctx := context.Background()
	index := loadTestIndex(t)

	for i := 0; i < 5; i++ {
		svc.Toggle(ctx, "slack")
		assert.Len(t, svc.Enabled(), len(index.Apps())-len(svc.DisabledApps()))
	}
}

func TestApps_EnabledAppsSkipUnknownSlugs(t *testing.T) {
	store := newFakeStore()
	store.values[KeyEnabledApps] = `["vscode","winamp","chrome"]`
	svc := newAppsService(t, store)

	apps := svc.EnabledApps()
	require.Len(t, apps, 2)
	assert.Equal(t, "vscode", apps[0].Slug)
	assert.Equal(t, "chrome", apps[1].Slug)
}

func TestApps_EnabledReturnsCopy(t *testing.T) {
	store := newFakeStore()
	store.values[KeyEnabledApps] = `["vscode"]`
	svc := newAppsService(t, store)

	slugs := svc.Enabled()
	slugs[0] = "mutated"

	assert.Equal(t, []string{"vscode"}, svc.Enabled())
}
