package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// LoginFormResult contains the result of the login form
type LoginFormResult struct {
	Cancelled bool
	Password  string
	Username  string
}

// LoginForm collects a username and password. Any non-empty username is
// accepted; the password is never stored.
type LoginForm struct {
	Completed bool // Exported so Model can check completion
	form      *huh.Form
	result    LoginFormResult
}

// NewLoginForm creates a new login form
func NewLoginForm() *LoginForm {
	lf := &LoginForm{}

	lf.form = huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Username").
			Value(&lf.result.Username).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return fmt.Errorf("username required")
				}
				return nil
			}),
		huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Value(&lf.result.Password),
	))

	return lf
}

func (lf *LoginForm) Init() tea.Cmd {
	return lf.form.Init()
}

func (lf *LoginForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" {
			lf.Completed = true
			lf.result.Cancelled = true
			return lf, nil
		}
	}

	form, cmd := lf.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		lf.form = f
	}

	if lf.form.State == huh.StateCompleted {
		lf.Completed = true
	}

	return lf, cmd
}

func (lf *LoginForm) View() string {
	if lf.form != nil {
		return lf.form.View()
	}
	return ""
}

// Result returns the form result
func (lf *LoginForm) Result() LoginFormResult {
	return lf.result
}
