// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package state holds the single source of truth for the loaded catalog:
// the category and component lists, the active filters, and the loading/
// error status every view reads from. Mutations go through the data
// source first, then reconcile the entity into the in-memory lists —
// because remote write failures are swallowed at the data layer, the
// local view stays authoritative even when the remote store diverges.
package state

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"uikitlab/internal/datasource"
	"uikitlab/internal/models"
)

// All is the filter value matching every style or category.
const All = "all"

// Store is the process-wide reactive catalog state. Handlers run in
// parallel, so access is guarded by an RWMutex; same-id races still
// resolve last-write-wins with no version check, matching the observed
// product behavior.
type Store struct {
	src datasource.DataSource

	mu         sync.RWMutex
	categories []models.Category
	components []models.Component

	styleFilter      string // a StyleKind or All
	activeCategoryID string // a Category.ID or All
	query            string

	loading bool
	err     string

	// pendingSync counts mutations the remote store dropped; the UI can
	// surface it as a "pending sync" indicator.
	pendingSync int

	// filtered view memoized on (styleFilter, activeCategoryID, query,
	// components generation).
	viewGen    uint64
	compGen    uint64
	viewCache  []models.Component
	viewKey    viewKey
	viewCached bool
}

type viewKey struct {
	style    string
	category string
	query    string
	gen      uint64
}

// Snapshot is a consistent read of the store for rendering.
type Snapshot struct {
	Categories       []models.Category
	Components       []models.Component
	StyleFilter      string
	ActiveCategoryID string
	Query            string
	Loading          bool
	Error            string
	PendingSync      int
}

// New creates a store bound to the active data source. Lists start empty
// until LoadAll runs.
func New(src datasource.DataSource) *Store {
	return &Store{
		src:              src,
		styleFilter:      All,
		activeCategoryID: All,
	}
}

// LoadAll loads both entity lists concurrently and replaces the current
// state. Safe to call repeatedly; overlapping calls are not deduplicated
// and the last completion wins.
func (s *Store) LoadAll(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	var (
		cats  []models.Category
		comps []models.Component
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		cats, err = s.src.GetCategories(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		comps, err = s.src.GetComponents(gctx)
		return err
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err := g.Wait(); err != nil {
		s.err = "failed loading data: " + err.Error()
		return err
	}
	s.categories = cats
	s.components = comps
	s.compGen++
	return nil
}

// SetStyleFilter sets the style facet ("all" or a StyleKind).
func (s *Store) SetStyleFilter(f string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.styleFilter = f
}

// SetActiveCategory sets the category facet ("all" or a category id).
func (s *Store) SetActiveCategory(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeCategoryID = id
}

// SetQuery sets the free-text search query.
func (s *Store) SetQuery(q string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query = q
}

// UpsertComponent writes through the data source, then reconciles the
// item into the local list (replace by id or append). The reconciliation
// always runs: a dropped remote write only bumps the pending-sync count.
func (s *Store) UpsertComponent(ctx context.Context, item models.Component) datasource.WriteStatus {
	status := s.src.UpsertComponent(ctx, item)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.trackStatus(status)

	for i, c := range s.components {
		if c.ID == item.ID {
			s.components[i] = item
			s.compGen++
			return status
		}
	}
	s.components = append(s.components, item)
	s.compGen++
	return status
}

// DeleteComponent writes through the data source, then filters the
// entity out of local state.
func (s *Store) DeleteComponent(ctx context.Context, id string) datasource.WriteStatus {
	status := s.src.DeleteComponent(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.trackStatus(status)

	kept := s.components[:0]
	for _, c := range s.components {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	s.components = kept
	s.compGen++
	return status
}

// UpsertCategory mirrors UpsertComponent for categories.
func (s *Store) UpsertCategory(ctx context.Context, cat models.Category) datasource.WriteStatus {
	status := s.src.UpsertCategory(ctx, cat)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.trackStatus(status)

	for i, c := range s.categories {
		if c.ID == cat.ID {
			s.categories[i] = cat
			return status
		}
	}
	s.categories = append(s.categories, cat)
	return status
}

// DeleteCategory deletes through the data source, then mirrors the
// backing store's cascade locally: the category goes, every component
// referencing it goes, and the active-category filter resets to All if
// it pointed at the deleted id.
func (s *Store) DeleteCategory(ctx context.Context, id string) datasource.WriteStatus {
	status := s.src.DeleteCategory(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.trackStatus(status)

	keptCats := s.categories[:0]
	for _, c := range s.categories {
		if c.ID != id {
			keptCats = append(keptCats, c)
		}
	}
	s.categories = keptCats

	keptComps := s.components[:0]
	for _, c := range s.components {
		if c.CategoryID != id {
			keptComps = append(keptComps, c)
		}
	}
	s.components = keptComps
	s.compGen++

	if s.activeCategoryID == id {
		s.activeCategoryID = All
	}
	return status
}

// Snapshot returns a consistent copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Snapshot{
		Categories:       append([]models.Category(nil), s.categories...),
		Components:       append([]models.Component(nil), s.components...),
		StyleFilter:      s.styleFilter,
		ActiveCategoryID: s.activeCategoryID,
		Query:            s.query,
		Loading:          s.loading,
		Error:            s.err,
		PendingSync:      s.pendingSync,
	}
}

// Filtered returns the component list matching the current style,
// category, and query facets. The result is memoized on those three
// inputs plus the components list generation.
func (s *Store) Filtered() []models.Component {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := viewKey{style: s.styleFilter, category: s.activeCategoryID, query: s.query, gen: s.compGen}
	if s.viewCached && s.viewKey == key {
		return append([]models.Component(nil), s.viewCache...)
	}

	var out []models.Component
	for _, c := range s.components {
		if s.styleFilter != All && string(c.Style) != s.styleFilter {
			continue
		}
		if s.activeCategoryID != All && c.CategoryID != s.activeCategoryID {
			continue
		}
		if !c.MatchesQuery(s.query) {
			continue
		}
		out = append(out, c)
	}

	s.viewCache = out
	s.viewKey = key
	s.viewCached = true
	return append([]models.Component(nil), out...)
}

// Featured returns the non-draft components flagged for the trending rail.
func (s *Store) Featured() []models.Component {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Component
	for _, c := range s.components {
		if c.IsFeatured && !c.IsDraft {
			out = append(out, c)
		}
	}
	return out
}

// ComponentByID returns the component from local state, or nil.
func (s *Store) ComponentByID(id string) *models.Component {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.components {
		if c.ID == id {
			clone := c.Clone()
			return &clone
		}
	}
	return nil
}

// CategoryByID returns the category from local state, or nil.
func (s *Store) CategoryByID(id string) *models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.categories {
		if c.ID == id {
			clone := c.Clone()
			return &clone
		}
	}
	return nil
}

// trackStatus must be called with the write lock held.
func (s *Store) trackStatus(status datasource.WriteStatus) {
	if status == datasource.WriteLocalOnly {
		s.pendingSync++
	}
}
