// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package datasource

import (
	"context"
	"sync"

	"uikitlab/internal/models"
	"uikitlab/internal/seed"
)

// Memory is the in-memory backing, initialized from the seed dataset.
// It owns its state explicitly (no package-level globals) and is safe
// for concurrent handlers. Its operations never fail.
type Memory struct {
	mu         sync.RWMutex
	categories []models.Category
	components []models.Component
}

// NewMemory returns an in-memory backing loaded with the seed dataset.
func NewMemory() *Memory {
	return &Memory{
		categories: seed.Categories(),
		components: seed.Components(),
	}
}

// GetCategories returns a copy of the current category list.
func (m *Memory) GetCategories(_ context.Context) ([]models.Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Category, len(m.categories))
	for i, c := range m.categories {
		out[i] = c.Clone()
	}
	return out, nil
}

// GetComponents returns a copy of the current component list.
func (m *Memory) GetComponents(_ context.Context) ([]models.Component, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Component, len(m.components))
	for i, c := range m.components {
		out[i] = c.Clone()
	}
	return out, nil
}

// GetComponentByID scans for an id match. Returns (nil, nil) when absent.
func (m *Memory) GetComponentByID(_ context.Context, id string) (*models.Component, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, c := range m.components {
		if c.ID == id {
			clone := c.Clone()
			return &clone, nil
		}
	}
	return nil, nil
}

// UpsertComponent replaces the entry with the same id in place, or
// appends when no entry matches. Idempotent under repeated calls.
func (m *Memory) UpsertComponent(_ context.Context, item models.Component) WriteStatus {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, c := range m.components {
		if c.ID == item.ID {
			m.components[i] = item.Clone()
			return WriteCommitted
		}
	}
	m.components = append(m.components, item.Clone())
	return WriteCommitted
}

// DeleteComponent removes the matching entry. No-op when absent.
func (m *Memory) DeleteComponent(_ context.Context, id string) WriteStatus {
	m.mu.Lock()
	defer m.mu.Unlock()

	kept := m.components[:0]
	for _, c := range m.components {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	m.components = kept
	return WriteCommitted
}

// UpsertCategory replaces by id or appends, like UpsertComponent.
func (m *Memory) UpsertCategory(_ context.Context, cat models.Category) WriteStatus {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, c := range m.categories {
		if c.ID == cat.ID {
			m.categories[i] = cat.Clone()
			return WriteCommitted
		}
	}
	m.categories = append(m.categories, cat.Clone())
	return WriteCommitted
}

// DeleteCategory removes the category and every component referencing it.
// The cascade is deliberate: components in a deleted category would
// otherwise survive as orphans no view can reach.
func (m *Memory) DeleteCategory(_ context.Context, id string) WriteStatus {
	m.mu.Lock()
	defer m.mu.Unlock()

	keptCats := m.categories[:0]
	for _, c := range m.categories {
		if c.ID != id {
			keptCats = append(keptCats, c)
		}
	}
	m.categories = keptCats

	keptComps := m.components[:0]
	for _, c := range m.components {
		if c.CategoryID != id {
			keptComps = append(keptComps, c)
		}
	}
	m.components = keptComps
	return WriteCommitted
}
