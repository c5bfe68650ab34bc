package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"keystrokes/internal/catalog"
	"keystrokes/internal/domain"
	"keystrokes/internal/logging"
)

// SettingsFormResult contains the result of the settings form
type SettingsFormResult struct {
	Cancelled    bool
	ClearAllData bool
	EnabledApps  []string
	Theme        domain.ThemePreference
}

// SettingsForm edits the theme preference, application enablement, and
// offers a full data reset. Nothing is persisted here; Model applies the
// result after completion.
type SettingsForm struct {
	Completed bool // Exported so Model can check completion
	form      *huh.Form
	result    SettingsFormResult
}

// NewSettingsForm creates the settings form pre-filled with current values
func NewSettingsForm(index *catalog.Index, enabledApps []string, pref domain.ThemePreference) *SettingsForm {
	sf := &SettingsForm{
		result: SettingsFormResult{
			EnabledApps: append([]string(nil), enabledApps...),
			Theme:       pref,
		},
	}

	logging.Logger.Debug("Creating settings form",
		"theme", pref,
		"enabled_apps", len(enabledApps))

	appOptions := make([]huh.Option[string], 0, len(index.Apps()))
	for _, app := range index.Apps() {
		appOptions = append(appOptions, huh.NewOption(app.Name, app.Slug))
	}

	sf.form = huh.NewForm(huh.NewGroup(
		huh.NewSelect[domain.ThemePreference]().
			Title("Theme").
			Description("System follows your terminal's background.").
			Options(
				huh.NewOption("System", domain.ThemeSystem),
				huh.NewOption("Light", domain.ThemeLight),
				huh.NewOption("Dark", domain.ThemeDark),
			).
			Value(&sf.result.Theme),
		huh.NewMultiSelect[string]().
			Title("Enabled applications").
			Description("Disabled applications are hidden from browsing and search.").
			Options(appOptions...).
			Value(&sf.result.EnabledApps),
		huh.NewConfirm().
			Title("Clear all data?").
			Description("Removes bookmarks, enabled applications, theme, and login.").
			Affirmative("Yes, clear everything").
			Negative("No").
			Value(&sf.result.ClearAllData),
	))

	return sf
}

func (sf *SettingsForm) Init() tea.Cmd {
	return sf.form.Init()
}

func (sf *SettingsForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" {
			sf.Completed = true
			sf.result.Cancelled = true
			return sf, nil
		}
	}

	form, cmd := sf.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		sf.form = f
	}

	if sf.form.State == huh.StateCompleted {
		sf.Completed = true
	}

	return sf, cmd
}

func (sf *SettingsForm) View() string {
	if sf.form != nil {
		return sf.form.View()
	}
	return ""
}

// Result returns the form result
func (sf *SettingsForm) Result() SettingsFormResult {
	return sf.result
}
