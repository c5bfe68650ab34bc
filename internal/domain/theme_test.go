package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveScheme(t *testing.T) {
	tests := []struct {
		name     string
		pref     ThemePreference
		system   ColorScheme
		expected ColorScheme
	}{
		{"light ignores system", ThemeLight, SchemeDark, SchemeLight},
		{"dark ignores system", ThemeDark, SchemeLight, SchemeDark},
		{"system follows dark", ThemeSystem, SchemeDark, SchemeDark},
		{"system follows light", ThemeSystem, SchemeLight, SchemeLight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolveScheme(tt.pref, tt.system))
		})
	}
}

func TestColorScheme_Opposite(t *testing.T) {
	assert.Equal(t, SchemeLight, SchemeDark.Opposite())
	assert.Equal(t, SchemeDark, SchemeLight.Opposite())
}

func TestThemePreference_IsValid(t *testing.T) {
	assert.True(t, ThemeSystem.IsValid())
	assert.True(t, ThemeLight.IsValid())
	assert.True(t, ThemeDark.IsValid())
	assert.False(t, ThemePreference("solarized").IsValid())
	assert.False(t, ThemePreference("").IsValid())
}
