// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"uikitlab/internal/models"
	"uikitlab/internal/slug"
	"uikitlab/internal/state"
)

// componentWriteResponse reports a mutation outcome. SyncStatus is
// "committed" when the backing store accepted the write and "local-only"
// when it was kept in memory after a remote failure.
type componentWriteResponse struct {
	Item       *models.Component `json:"item,omitempty"`
	SyncStatus string            `json:"syncStatus"`
}

// ListComponents returns the catalog filtered by the same facets the
// index page uses: style, category and a free-text query.
func (p *Playground) ListComponents(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if style := q.Get("style"); style != "" {
		p.state.SetStyleFilter(style)
	} else {
		p.state.SetStyleFilter(state.All)
	}
	if category := q.Get("category"); category != "" {
		p.state.SetActiveCategory(category)
	} else {
		p.state.SetActiveCategory(state.All)
	}
	p.state.SetQuery(strings.TrimSpace(q.Get("q")))

	writeJSON(w, http.StatusOK, map[string]any{"items": p.state.Filtered()})
}

// FeaturedComponents returns the components flagged for the landing rail.
func (p *Playground) FeaturedComponents(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"items": p.state.Featured()})
}

// GetComponent returns a single component by id.
func (p *Playground) GetComponent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	comp := p.state.ComponentByID(id)
	if comp == nil {
		writeJSONError(w, http.StatusNotFound, "component not found")
		return
	}
	writeJSON(w, http.StatusOK, comp)
}

// CreateComponent creates a component from a JSON body. The id is
// derived from the slug, the name, or a timestamp, in that order.
func (p *Playground) CreateComponent(w http.ResponseWriter, r *http.Request) {
	var item models.Component
	if err := decodeJSON(r, &item); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}

	now := time.Now()
	item.Name = strings.TrimSpace(item.Name)
	item.Slug = strings.TrimSpace(item.Slug)
	if item.Style == "" {
		item.Style = models.StyleNative
	}
	item.CreatedAt = now.UnixMilli()
	item.UpdatedAt = now.UnixMilli()

	if errs := validateComponent(item, p.state.CategoryByID(item.CategoryID) != nil); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	item.ID = slug.ComponentID(item.Slug, item.Name, now)
	if item.Slug == "" {
		item.Slug = item.ID
	}

	status := p.state.UpsertComponent(r.Context(), item)
	p.invalidateExport(r, item.ID)

	writeJSON(w, http.StatusCreated, componentWriteResponse{
		Item:       p.state.ComponentByID(item.ID),
		SyncStatus: status.String(),
	})
}

// UpdateComponent replaces a component's mutable fields. The id and
// creation timestamp are preserved; everything else comes from the body.
func (p *Playground) UpdateComponent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	existing := p.state.ComponentByID(id)
	if existing == nil {
		writeJSONError(w, http.StatusNotFound, "component not found")
		return
	}

	var item models.Component
	if err := decodeJSON(r, &item); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}

	item.ID = existing.ID
	item.CreatedAt = existing.CreatedAt
	item.UpdatedAt = time.Now().UnixMilli()
	item.Name = strings.TrimSpace(item.Name)
	if item.Slug == "" {
		item.Slug = existing.Slug
	}
	if item.Style == "" {
		item.Style = existing.Style
	}
	if item.CategoryID == "" {
		item.CategoryID = existing.CategoryID
	}

	if errs := validateComponent(item, p.state.CategoryByID(item.CategoryID) != nil); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	status := p.state.UpsertComponent(r.Context(), item)
	p.invalidateExport(r, item.ID)
	p.clearDraft(r, item.ID)

	writeJSON(w, http.StatusOK, componentWriteResponse{
		Item:       p.state.ComponentByID(item.ID),
		SyncStatus: status.String(),
	})
}

// DeleteComponent removes a component. The operation is idempotent:
// deleting an unknown id answers 204, and the delete itself never fails
// even when the remote store is down.
func (p *Playground) DeleteComponent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if p.state.ComponentByID(id) == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	status := p.state.DeleteComponent(r.Context(), id)
	p.invalidateExport(r, id)
	p.clearDraft(r, id)

	writeJSON(w, http.StatusOK, componentWriteResponse{SyncStatus: status.String()})
}

// invalidateExport drops cached export documents for a component,
// tolerating a nil cache.
func (p *Playground) invalidateExport(r *http.Request, componentID string) {
	if p.exports == nil {
		return
	}
	p.exports.InvalidateComponent(r.Context(), componentID)
}

// clearDraft discards a staged session draft after a successful save or
// delete, tolerating a nil session store.
func (p *Playground) clearDraft(r *http.Request, componentID string) {
	if p.sessions == nil {
		return
	}
	_ = p.sessions.ClearDraft(r.Context(), r, componentID)
}
