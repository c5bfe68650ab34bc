package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// clearErrorMsg is sent after the error clear delay to trigger clearing
type clearErrorMsg struct{}

// ErrorManager holds the error currently shown in the footer and schedules
// its automatic clearing. Preference write failures surface through here
// instead of aborting anything.
type ErrorManager struct {
	currentError    error
	errorClearDelay time.Duration
}

// NewErrorManager creates an ErrorManager with the given auto-clear delay
func NewErrorManager(errorClearDelay time.Duration) *ErrorManager {
	return &ErrorManager{
		errorClearDelay: errorClearDelay,
	}
}

// SetError sets the error to display
func (em *ErrorManager) SetError(err error) {
	em.currentError = err
}

// ClearError clears the current error
func (em *ErrorManager) ClearError() {
	em.currentError = nil
}

// GetError returns the current error
func (em *ErrorManager) GetError() error {
	return em.currentError
}

// HasError reports whether an error is being displayed
func (em *ErrorManager) HasError() bool {
	return em.currentError != nil
}

// ClearAfterDelay returns a tea.Cmd that sends clearErrorMsg after the
// configured delay
func (em *ErrorManager) ClearAfterDelay() tea.Cmd {
	return tea.Tick(em.errorClearDelay, func(time.Time) tea.Msg {
		return clearErrorMsg{}
	})
}
