// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"uikitlab/internal/cache"
	"uikitlab/internal/models"
	"uikitlab/internal/preview"
	"uikitlab/internal/slug"
)

// Export serves a component as a standalone HTML document with its
// dependency header, styles and script inlined. Documents are cached in
// Valkey keyed on the component's update timestamp, so a stale entry
// can never outlive a save.
func (p *Playground) Export(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	comp := p.state.ComponentByID(id)
	if comp == nil {
		http.NotFound(w, r)
		return
	}

	key := cache.Key(comp.ID, comp.UpdatedAt)

	var doc []byte
	if p.exports != nil {
		if cached, ok := p.exports.Get(r.Context(), key); ok {
			doc = cached
		}
	}
	if doc == nil {
		doc = []byte(preview.BuildDocument(comp.Style, comp.Code))
		if p.exports != nil {
			p.exports.Set(r.Context(), key, doc)
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+comp.Slug+`.html"`)
	w.Write(doc)
}

// exportLiveRequest carries the editor's current buffer, which may
// differ from the last-saved code.
type exportLiveRequest struct {
	Slug  string               `json:"slug"`
	Style models.StyleKind     `json:"style"`
	Code  models.ComponentCode `json:"code"`
}

// ExportLive builds the same standalone document as Export, but from
// the code posted in the body instead of the saved component, so a
// download always reflects what is on screen. Never cached.
func (p *Playground) ExportLive(w http.ResponseWriter, r *http.Request) {
	var req exportLiveRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}

	if req.Style == "" {
		req.Style = models.StyleNative
	}
	if !models.KnownStyle(req.Style) {
		writeJSONError(w, http.StatusBadRequest, "unknown style "+string(req.Style))
		return
	}

	name := req.Slug
	if !slug.IsValid(name) {
		name = "component"
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`.html"`)
	w.Write([]byte(preview.BuildDocument(req.Style, req.Code)))
}
