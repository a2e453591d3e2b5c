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
)

// categoryWriteResponse reports a category mutation outcome.
type categoryWriteResponse struct {
	Item       *models.Category `json:"item,omitempty"`
	SyncStatus string           `json:"syncStatus"`
}

// ListCategories returns every category.
func (p *Playground) ListCategories(w http.ResponseWriter, r *http.Request) {
	snap := p.state.Snapshot()
	writeJSON(w, http.StatusOK, map[string]any{"items": snap.Categories})
}

// CreateCategory creates a category from a JSON body.
func (p *Playground) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var cat models.Category
	if err := decodeJSON(r, &cat); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}

	now := time.Now()
	cat.Name = strings.TrimSpace(cat.Name)
	cat.Slug = strings.TrimSpace(cat.Slug)
	cat.CreatedAt = now.UnixMilli()
	cat.UpdatedAt = now.UnixMilli()

	if errs := validateCategory(cat, p.state.Snapshot().Categories); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	cat.ID = slug.CategoryID(cat.Slug, cat.Name, now)
	if cat.Slug == "" {
		cat.Slug = cat.ID
	}

	status := p.state.UpsertCategory(r.Context(), cat)

	writeJSON(w, http.StatusCreated, categoryWriteResponse{
		Item:       p.state.CategoryByID(cat.ID),
		SyncStatus: status.String(),
	})
}

// UpdateCategory replaces a category's mutable fields.
func (p *Playground) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	existing := p.state.CategoryByID(id)
	if existing == nil {
		writeJSONError(w, http.StatusNotFound, "category not found")
		return
	}

	var cat models.Category
	if err := decodeJSON(r, &cat); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}

	cat.ID = existing.ID
	cat.CreatedAt = existing.CreatedAt
	cat.UpdatedAt = time.Now().UnixMilli()
	cat.Name = strings.TrimSpace(cat.Name)
	if cat.Slug == "" {
		cat.Slug = existing.Slug
	}

	if errs := validateCategory(cat, p.state.Snapshot().Categories); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	status := p.state.UpsertCategory(r.Context(), cat)

	writeJSON(w, http.StatusOK, categoryWriteResponse{
		Item:       p.state.CategoryByID(cat.ID),
		SyncStatus: status.String(),
	})
}

// DeleteCategory removes a category and, in cascade, every component
// that belongs to it. Deleting an unknown id answers 204. When the
// active filter pointed at the removed category it falls back to "all".
func (p *Playground) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if p.state.CategoryByID(id) == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	status := p.state.DeleteCategory(r.Context(), id)

	writeJSON(w, http.StatusOK, categoryWriteResponse{SyncStatus: status.String()})
}
