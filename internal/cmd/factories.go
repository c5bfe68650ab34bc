package cmd

import (
	"context"

	adapterstorage "keystrokes/internal/adapters/storage"
	"keystrokes/internal/adapters/termbg"
	"keystrokes/internal/catalog"
	"keystrokes/internal/config"
	"keystrokes/internal/ports"
	"keystrokes/internal/search"
	"keystrokes/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	// Data
	Catalog      *catalog.Index
	SearchEngine *search.Engine

	// Services
	AppsService        *services.AppsService
	AuthService        *services.AuthService
	BookmarksService   *services.BookmarksService
	PreferencesService *services.PreferencesService
	ThemeService       *services.ThemeService

	// Internal - for cleanup only
	store ports.PreferenceStore
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer() (*Container, error) {
	index, err := catalog.Load()
	if err != nil {
		return nil, err
	}

	store, err := adapterstorage.NewSQLiteStore(config.GetDBPath())
	if err != nil {
		return nil, err
	}

	ctx := context.Background()
	prefsService := services.NewPreferencesService(store)
	appsService := services.NewAppsService(ctx, prefsService, index)
	authService := services.NewAuthService(prefsService)
	bookmarksService := services.NewBookmarksService(ctx, prefsService, index)
	themeService := services.NewThemeService(ctx, prefsService, termbg.NewSignal(), nil)

	return &Container{
		AppsService:        appsService,
		AuthService:        authService,
		BookmarksService:   bookmarksService,
		Catalog:            index,
		PreferencesService: prefsService,
		SearchEngine:       search.NewEngine(index),
		ThemeService:       themeService,
		store:              store,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.ThemeService != nil {
		c.ThemeService.Close()
	}
	if c.store != nil {
		return c.store.Close()
	}
	return nil
}
