// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"

	"uikitlab/internal/datasource"
	"uikitlab/internal/render"
	"uikitlab/internal/state"
)

// newTestPlayground builds the handler group over the seeded in-memory
// backing with no optional services (no Valkey, no object storage).
func newTestPlayground(t *testing.T) *Playground {
	t.Helper()

	renderer, err := render.New(true)
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}

	st := state.New(datasource.NewMemory())
	if err := st.LoadAll(context.Background()); err != nil {
		t.Fatalf("LoadAll: %v", err)
	}

	return NewPlayground(renderer, st, nil, nil, nil)
}

// newTestMux mounts the handler methods on a bare chi router so URL
// parameters resolve. Middleware is exercised by the router tests.
func newTestMux(pg *Playground) http.Handler {
	r := chi.NewRouter()

	r.Get("/", pg.Index)
	r.Get("/editor/{id}", pg.EditorPage)
	r.Get("/new", pg.NewComponentForm)
	r.Post("/new", pg.NewComponentCreate)
	r.Get("/categories", pg.CategoriesPage)
	r.Post("/categories", pg.CategoryCreateForm)
	r.Post("/categories/{id}/delete", pg.CategoryDeleteForm)

	r.Get("/preview/frame", pg.PreviewFrame)
	r.Get("/export/{id}", pg.Export)
	r.Get("/health", pg.Health)

	r.Route("/api", func(r chi.Router) {
		r.Route("/components", func(r chi.Router) {
			r.Get("/", pg.ListComponents)
			r.Get("/featured", pg.FeaturedComponents)
			r.Post("/", pg.CreateComponent)
			r.Get("/{id}", pg.GetComponent)
			r.Put("/{id}", pg.UpdateComponent)
			r.Delete("/{id}", pg.DeleteComponent)
		})
		r.Route("/categories", func(r chi.Router) {
			r.Get("/", pg.ListCategories)
			r.Post("/", pg.CreateCategory)
			r.Put("/{id}", pg.UpdateCategory)
			r.Delete("/{id}", pg.DeleteCategory)
		})
		r.Route("/drafts", func(r chi.Router) {
			r.Get("/{id}", pg.GetDraft)
			r.Put("/{id}", pg.PutDraft)
			r.Delete("/{id}", pg.DeleteDraft)
		})
		r.Route("/media", func(r chi.Router) {
			r.Post("/thumbs", pg.UploadThumb)
			r.Delete("/thumbs", pg.DeleteThumb)
		})
		r.Post("/export", pg.ExportLive)
		r.Post("/reload", pg.Reload)
	})

	return r
}
