package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyBindingValueUnmarshal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  KeyBindingValue
	}{
		{name: "single string", input: `"ctrl+d"`, want: KeyBindingValue{"ctrl+d"}},
		{name: "array", input: `["up", "k"]`, want: KeyBindingValue{"up", "k"}},
		{name: "empty string", input: `""`, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var kv KeyBindingValue
			require.NoError(t, json.Unmarshal([]byte(tt.input), &kv))
			assert.Equal(t, tt.want, kv)
		})
	}
}

func TestKeyBindingsConfigValidate(t *testing.T) {
	validNames := []string{"back", "down", "toggle_theme", "up"}

	t.Run("nil config is valid", func(t *testing.T) {
		var cfg KeyBindingsConfig
		assert.NoError(t, cfg.Validate(validNames))
	})

	t.Run("valid overrides", func(t *testing.T) {
		cfg := KeyBindingsConfig{
			"toggle_theme": {"ctrl+t"},
			"up":           {"up", "k"},
		}
		assert.NoError(t, cfg.Validate(validNames))
	})

	t.Run("unknown binding name", func(t *testing.T) {
		cfg := KeyBindingsConfig{"no_such_action": {"x"}}
		assert.ErrorContains(t, cfg.Validate(validNames), "unknown key binding")
	})

	t.Run("duplicate key across actions", func(t *testing.T) {
		cfg := KeyBindingsConfig{
			"down": {"j"},
			"up":   {"j"},
		}
		assert.ErrorContains(t, cfg.Validate(validNames), "assigned to both")
	})

	t.Run("empty key value", func(t *testing.T) {
		cfg := KeyBindingsConfig{"back": {""}}
		assert.ErrorContains(t, cfg.Validate(validNames), "empty value")
	})
}

func TestSettingsRoundTrip(t *testing.T) {
	debug := true
	width := 40
	settings := Settings{
		Debug:        &debug,
		Keys:         KeyBindingsConfig{"toggle_theme": {"ctrl+t"}},
		SidebarWidth: &width,
	}

	data, err := json.Marshal(settings)
	require.NoError(t, err)

	var loaded Settings
	require.NoError(t, json.Unmarshal(data, &loaded))
	require.NotNil(t, loaded.Debug)
	assert.True(t, *loaded.Debug)
	require.NotNil(t, loaded.SidebarWidth)
	assert.Equal(t, 40, *loaded.SidebarWidth)
	assert.Equal(t, KeyBindingValue{"ctrl+t"}, loaded.Keys["toggle_theme"])
}
