package ui

import tea "github.com/charmbracelet/bubbletea"

// Dialog wraps any tea.Model content and automatically adds a header with
// the application name and a title. All modal screens go through this
// wrapper so every dialog carries the same header.
type Dialog struct {
	content tea.Model
	title   string
}

// NewDialog creates a new dialog wrapper around content
func NewDialog(title string, content tea.Model) *Dialog {
	return &Dialog{
		content: content,
		title:   title,
	}
}

// Init delegates to the wrapped content
func (d *Dialog) Init() tea.Cmd {
	return d.content.Init()
}

// Update delegates to the wrapped content. The returned tea.Model is the
// Dialog itself with updated content.
func (d *Dialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	updatedContent, cmd := d.content.Update(msg)
	d.content = updatedContent
	return d, cmd
}

// View prepends the dialog header to the wrapped content's view
func (d *Dialog) View() string {
	return renderDialogHeader(d.title) + d.content.View()
}

// Content returns the wrapped content for type assertion, so callers can
// read content-specific fields after Update().
func (d *Dialog) Content() tea.Model {
	return d.content
}
