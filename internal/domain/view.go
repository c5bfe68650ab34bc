package domain

// View is the navigation target shown in the content pane. It is a closed
// set: only the view types in this file implement it. Code switching on a
// View can therefore handle every case explicitly.
type View interface {
	viewMarker()
}

// HomeView is the welcome screen, the initial view
type HomeView struct{}

// AppView shows one application's categories
type AppView struct {
	AppSlug string
}

// CategoryView shows the shortcuts of one category
type CategoryView struct {
	AppSlug  string
	Category string
}

// ShortcutView shows a single shortcut in detail
type ShortcutView struct {
	AppSlug    string
	Category   string
	ShortcutID string
}

// GuideView is the static usage guide
type GuideView struct{}

// AboutView is the static about page
type AboutView struct{}

func (HomeView) viewMarker()     {}
func (AppView) viewMarker()      {}
func (CategoryView) viewMarker() {}
func (ShortcutView) viewMarker() {}
func (GuideView) viewMarker()    {}
func (AboutView) viewMarker()    {}
