package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"keystrokes/internal/domain"
)

// dispatchRule is one entry of the global key dispatch table. The guard may
// be nil; a nil guard always passes.
type dispatchRule struct {
	binding func(k *KeyMap) key.Binding
	guard   func(m *Model) bool
	msg     tea.Msg
}

// notSearching blocks bindings that would collide with text entry while the
// search box has focus
func notSearching(m *Model) bool {
	return !m.sidebar.SearchFocused()
}

// onShortcutView restricts a binding to the shortcut detail view
func onShortcutView(m *Model) bool {
	_, ok := m.view.(domain.ShortcutView)
	return ok
}

// globalDispatchTable returns the application-wide key rules in precedence
// order. The first rule whose binding matches and whose guard passes wins;
// later rules are not consulted.
func globalDispatchTable() []dispatchRule {
	return []dispatchRule{
		{binding: func(k *KeyMap) key.Binding { return k.Application.ForceQuit.Binding }, msg: QuitMsg{}},
		{binding: func(k *KeyMap) key.Binding { return k.Application.ToggleTheme.Binding }, msg: ToggleThemeMsg{}},
		{binding: func(k *KeyMap) key.Binding { return k.Application.Settings.Binding }, msg: ShowSettingsMsg{}},
		{binding: func(k *KeyMap) key.Binding { return k.Navigation.FocusSearch.Binding }, guard: notSearching, msg: FocusSearchMsg{}},
		{binding: func(k *KeyMap) key.Binding { return k.Navigation.Home.Binding }, msg: GoHomeMsg{}},
		{binding: func(k *KeyMap) key.Binding { return k.Navigation.Bookmark.Binding }, guard: onShortcutView, msg: ToggleBookmarkMsg{}},
		{binding: func(k *KeyMap) key.Binding { return k.Navigation.Back.Binding }, msg: BackMsg{}},
		{binding: func(k *KeyMap) key.Binding { return k.Navigation.Sidebar.Binding }, msg: ToggleSidebarMsg{}},
		{binding: func(k *KeyMap) key.Binding { return k.Application.Help.Binding }, guard: notSearching, msg: ShowHelpMsg{}},
		{binding: func(k *KeyMap) key.Binding { return k.Application.Quit.Binding }, guard: notSearching, msg: QuitMsg{}},
	}
}

// dispatchGlobalKey resolves a key press against the global table. Returns
// the action message and whether any rule matched.
func (m *Model) dispatchGlobalKey(msg tea.KeyMsg) (tea.Msg, bool) {
	for _, rule := range globalDispatchTable() {
		if !key.Matches(msg, rule.binding(&m.keys)) {
			continue
		}
		if rule.guard != nil && !rule.guard(m) {
			continue
		}
		return rule.msg, true
	}
	return nil, false
}
