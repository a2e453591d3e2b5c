// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"uikitlab/internal/datasource"
	"uikitlab/internal/models"
	"uikitlab/internal/preview"
	"uikitlab/internal/render"
	"uikitlab/internal/session"
	"uikitlab/internal/slug"
	"uikitlab/internal/state"
)

// Index renders the component catalog with the current filter facets.
// Filter values arrive as query parameters and are written back to the
// store so API consumers observe the same view.
func (p *Playground) Index(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	style := q.Get("style")
	if style == "" {
		style = state.All
	}
	category := q.Get("category")
	if category == "" {
		category = state.All
	}
	query := strings.TrimSpace(q.Get("q"))

	p.state.SetStyleFilter(style)
	p.state.SetActiveCategory(category)
	p.state.SetQuery(query)

	snap := p.state.Snapshot()

	p.renderer.Page(w, r, "index", &render.PageData{
		Title:   "Catalog",
		Section: "catalog",
		Flashes: p.popFlashes(r),
		Data: map[string]any{
			"Categories":     snap.Categories,
			"Components":     p.state.Filtered(),
			"Featured":       p.state.Featured(),
			"ActiveCategory": snap.ActiveCategoryID,
			"StyleFilter":    snap.StyleFilter,
			"Query":          snap.Query,
			"PendingSync":    snap.PendingSync,
		},
	})
}

// editorBootstrap is the JSON blob embedded in the editor page for the
// client-side editor script.
type editorBootstrap struct {
	ID       string                `json:"id"`
	Slug     string                `json:"slug"`
	Style    models.StyleKind      `json:"style"`
	Baseline models.ComponentCode  `json:"baseline"`
	Draft    *models.ComponentCode `json:"draft,omitempty"`
}

// EditorPage renders the live editor for one component. A staged session
// draft, when present, takes priority over the saved code so a reload
// does not lose unsaved work.
func (p *Playground) EditorPage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	comp := p.state.ComponentByID(id)
	if comp == nil {
		http.NotFound(w, r)
		return
	}

	boot := editorBootstrap{
		ID:       comp.ID,
		Slug:     comp.Slug,
		Style:    comp.Style,
		Baseline: comp.Code,
	}

	shown := *comp
	if p.sessions != nil {
		if draft, ok := p.sessions.Draft(r.Context(), r, comp.ID); ok {
			shown.Code = draft
			boot.Draft = &draft
		}
	}

	blob, err := json.Marshal(boot)
	if err != nil {
		slog.Error("marshal editor bootstrap failed", "component", comp.ID, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	p.renderer.Page(w, r, "editor", &render.PageData{
		Title:   comp.Name,
		Section: "catalog",
		Flashes: p.popFlashes(r),
		Data: map[string]any{
			"Component":   &shown,
			"SandboxAttr": preview.SandboxAttr,
			"EditorJSON":  template.JS(blob),
		},
	})
}

// NewComponentForm renders the creation form.
func (p *Playground) NewComponentForm(w http.ResponseWriter, r *http.Request) {
	snap := p.state.Snapshot()
	p.renderer.Page(w, r, "new", &render.PageData{
		Title:   "New component",
		Section: "new",
		Data:    map[string]any{"Categories": snap.Categories},
	})
}

// NewComponentCreate handles the creation form submission. On success
// it redirects straight into the editor for the new component.
func (p *Playground) NewComponentCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	now := time.Now()
	item := models.Component{
		Name:       strings.TrimSpace(r.FormValue("name")),
		Slug:       strings.TrimSpace(r.FormValue("slug")),
		CategoryID: r.FormValue("categoryId"),
		Style:      models.StyleKind(r.FormValue("style")),
		Tags:       splitTags(r.FormValue("tags")),
		IsDraft:    r.FormValue("isDraft") == "1",
		CreatedAt:  now.UnixMilli(),
		UpdatedAt:  now.UnixMilli(),
	}
	if item.Style == "" {
		item.Style = models.StyleNative
	}

	snap := p.state.Snapshot()
	errs := validateComponent(item, categoryExists(snap.Categories, item.CategoryID))
	if len(errs) > 0 {
		w.WriteHeader(http.StatusUnprocessableEntity)
		p.renderer.Page(w, r, "new", &render.PageData{
			Title:   "New component",
			Section: "new",
			Data: map[string]any{
				"Categories": snap.Categories,
				"Name":       item.Name,
				"Slug":       item.Slug,
				"CategoryID": item.CategoryID,
				"Tags":       r.FormValue("tags"),
				"Errors":     errs,
			},
		})
		return
	}

	item.ID = slug.ComponentID(item.Slug, item.Name, now)
	if item.Slug == "" {
		item.Slug = item.ID
	}

	status := p.state.UpsertComponent(r.Context(), item)
	p.flash(w, r, saveFlash(status, "Component created"))
	http.Redirect(w, r, "/editor/"+item.ID, http.StatusSeeOther)
}

// CategoriesPage renders the category management page.
func (p *Playground) CategoriesPage(w http.ResponseWriter, r *http.Request) {
	snap := p.state.Snapshot()
	p.renderer.Page(w, r, "categories", &render.PageData{
		Title:   "Categories",
		Section: "categories",
		Flashes: p.popFlashes(r),
		Data:    map[string]any{"Categories": snap.Categories},
	})
}

// CategoryCreateForm handles the add-category form submission.
func (p *Playground) CategoryCreateForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	now := time.Now()
	cat := models.Category{
		Name:      strings.TrimSpace(r.FormValue("name")),
		Slug:      strings.TrimSpace(r.FormValue("slug")),
		CreatedAt: now.UnixMilli(),
		UpdatedAt: now.UnixMilli(),
	}
	if raw := r.FormValue("order"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			cat.Order = &n
		}
	}

	snap := p.state.Snapshot()
	errs := validateCategory(cat, snap.Categories)
	if len(errs) > 0 {
		w.WriteHeader(http.StatusUnprocessableEntity)
		p.renderer.Page(w, r, "categories", &render.PageData{
			Title:   "Categories",
			Section: "categories",
			Data: map[string]any{
				"Categories": snap.Categories,
				"Name":       cat.Name,
				"Slug":       cat.Slug,
				"Order":      r.FormValue("order"),
				"Errors":     errs,
			},
		})
		return
	}

	cat.ID = slug.CategoryID(cat.Slug, cat.Name, now)
	if cat.Slug == "" {
		cat.Slug = cat.ID
	}

	status := p.state.UpsertCategory(r.Context(), cat)
	p.flash(w, r, saveFlash(status, "Category created"))
	http.Redirect(w, r, "/categories", http.StatusSeeOther)
}

// CategoryDeleteForm handles the delete-category form submission.
// Deleting a category also removes every component inside it.
func (p *Playground) CategoryDeleteForm(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if p.state.CategoryByID(id) == nil {
		http.NotFound(w, r)
		return
	}

	status := p.state.DeleteCategory(r.Context(), id)
	p.flash(w, r, saveFlash(status, "Category deleted"))
	http.Redirect(w, r, "/categories", http.StatusSeeOther)
}

// popFlashes drains pending flash messages, tolerating a nil session store.
func (p *Playground) popFlashes(r *http.Request) []session.Flash {
	if p.sessions == nil {
		return nil
	}
	return p.sessions.PopFlashes(r.Context(), r)
}

// flash queues a one-time notice, tolerating a nil session store.
func (p *Playground) flash(w http.ResponseWriter, r *http.Request, f session.Flash) {
	if p.sessions == nil {
		return
	}
	if err := p.sessions.AddFlash(r.Context(), w, r, f); err != nil {
		slog.Warn("queue flash failed", "error", err)
	}
}

// saveFlash maps a write outcome to the notice shown after redirect.
func saveFlash(status datasource.WriteStatus, okMessage string) session.Flash {
	if status == datasource.WriteCommitted {
		return session.Flash{Type: "success", Message: okMessage}
	}
	return session.Flash{Type: "warning", Message: okMessage + " (saved locally; remote sync pending)"}
}

// splitTags parses a comma-separated tag list, dropping empties.
func splitTags(raw string) []string {
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if t := strings.TrimSpace(part); t != "" {
			tags = append(tags, t)
		}
	}
	if len(tags) == 0 {
		return nil
	}
	return tags
}

// categoryExists reports whether id names a known category.
func categoryExists(cats []models.Category, id string) bool {
	for _, c := range cats {
		if c.ID == id {
			return true
		}
	}
	return false
}
