package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatErrorForDisplay(t *testing.T) {
	t.Run("nil error renders nothing", func(t *testing.T) {
		assert.Empty(t, formatErrorForDisplay(nil, 80))
	})

	t.Run("short error on one line", func(t *testing.T) {
		got := formatErrorForDisplay(errors.New("boom"), 80)
		assert.Equal(t, "Error: boom", got)
	})

	t.Run("long error wraps and truncates", func(t *testing.T) {
		err := errors.New("something went quite badly wrong while saving the bookmark set to the preference database and nothing was persisted at all")
		got := formatErrorForDisplay(err, 40)

		lines := strings.Split(got, "\n")
		require.Len(t, lines, 2)
		assert.True(t, strings.HasPrefix(lines[0], "Error: "))
		assert.True(t, strings.HasSuffix(lines[1], "..."))
		for _, line := range lines {
			assert.LessOrEqual(t, len(line), 43)
		}
	})
}
