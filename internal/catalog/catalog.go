// Package catalog loads and indexes the embedded shortcut datasets.
// The index is immutable after Load and safe for concurrent reads.
package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"keystrokes/internal/domain"
	"keystrokes/internal/logging"
)

//go:embed data/*.json
var dataFS embed.FS

// Entry is one shortcut with its catalogue context attached
type Entry struct {
	ID       string
	App      domain.Application
	Category domain.Category
	Shortcut domain.Shortcut
}

// Index is the loaded shortcut catalogue. Applications keep a stable order
// (dataset file name order) so every traversal of the catalogue is
// deterministic.
type Index struct {
	apps    []domain.Application
	bySlug  map[string]domain.Application
	entries map[string]Entry
}

// Load parses every embedded dataset and builds the index. Datasets are
// decoded concurrently; duplicate shortcut identifiers are rejected so the
// identifier derivation stays collision-free.
func Load() (*Index, error) {
	files, err := dataFS.ReadDir("data")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded catalogue: %w", err)
	}

	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, f.Name())
	}
	sort.Strings(names)

	apps := make([]domain.Application, len(names))
	var g errgroup.Group
	var mu sync.Mutex

	for i, name := range names {
		g.Go(func() error {
			data, err := dataFS.ReadFile("data/" + name)
			if err != nil {
				return fmt.Errorf("failed to read dataset %s: %w", name, err)
			}

			var app domain.Application
			if err := json.Unmarshal(data, &app); err != nil {
				return fmt.Errorf("invalid dataset %s: %w", name, err)
			}
			if app.Slug == "" {
				return fmt.Errorf("dataset %s has no slug", name)
			}

			mu.Lock()
			apps[i] = app
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	idx := &Index{
		apps:    apps,
		bySlug:  make(map[string]domain.Application, len(apps)),
		entries: make(map[string]Entry),
	}

	for _, app := range apps {
		if _, exists := idx.bySlug[app.Slug]; exists {
			return nil, fmt.Errorf("duplicate application slug %q", app.Slug)
		}
		idx.bySlug[app.Slug] = app

		for _, category := range app.Categories {
			for _, shortcut := range category.Shortcuts {
				id := domain.ShortcutID(app.Slug, category.Name, shortcut.Action)
				if existing, exists := idx.entries[id]; exists {
					return nil, fmt.Errorf("duplicate shortcut identifier %q (apps %q and %q)",
						id, existing.App.Slug, app.Slug)
				}
				idx.entries[id] = Entry{
					ID:       id,
					App:      app,
					Category: category,
					Shortcut: shortcut,
				}
			}
		}
	}

	if logging.Logger != nil {
		logging.Logger.Debug("Catalogue loaded",
			"applications", len(idx.apps),
			"shortcuts", len(idx.entries))
	}

	return idx, nil
}

// Apps returns every application in catalogue order
func (idx *Index) Apps() []domain.Application {
	return idx.apps
}

// App returns the application with the given slug
func (idx *Index) App(slug string) (domain.Application, bool) {
	app, ok := idx.bySlug[slug]
	return app, ok
}

// Category returns a category of an application by name
func (idx *Index) Category(slug, name string) (domain.Category, bool) {
	app, ok := idx.bySlug[slug]
	if !ok {
		return domain.Category{}, false
	}
	for _, category := range app.Categories {
		if category.Name == name {
			return category, true
		}
	}
	return domain.Category{}, false
}

// Entry returns the entry for a shortcut identifier
func (idx *Index) Entry(id string) (Entry, bool) {
	entry, ok := idx.entries[id]
	return entry, ok
}

// Len returns the total number of shortcuts in the catalogue
func (idx *Index) Len() int {
	return len(idx.entries)
}
