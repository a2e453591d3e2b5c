// Package router sets up all HTTP routes and middleware chains for the
// playground. It organizes routes into page and API groups with
// appropriate middleware stacks.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"uikitlab/internal/handlers"
	"uikitlab/internal/middleware"
	"uikitlab/web"
)

// Options tunes router construction.
type Options struct {
	// SecureCookies sets the Secure flag on the CSRF cookie (behind TLS).
	SecureCookies bool

	// WriteLimit caps state-changing requests per client IP per minute.
	// Zero disables rate limiting (tests).
	WriteLimit int
}

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(pg *handlers.Playground, opts Options) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	// Health check, no CSRF.
	r.Get("/health", pg.Health)

	// Static assets and the preview frame are read-only.
	r.Handle("/static/*", http.StripPrefix("/static/", web.StaticHandler()))
	r.Get("/preview/frame", pg.PreviewFrame)
	r.Get("/export/{id}", pg.Export)

	csrf := middleware.NewCSRF(opts.SecureCookies)

	var writeLimiter func(http.Handler) http.Handler
	if opts.WriteLimit > 0 {
		writeLimiter = middleware.NewRateLimiter(opts.WriteLimit, time.Minute).Middleware
	}

	// Pages.
	r.Group(func(r chi.Router) {
		r.Use(csrf)

		r.Get("/", pg.Index)
		r.Get("/editor/{id}", pg.EditorPage)
		r.Get("/new", pg.NewComponentForm)
		r.Post("/new", pg.NewComponentCreate)
		r.Get("/categories", pg.CategoriesPage)
		r.Post("/categories", pg.CategoryCreateForm)
		r.Post("/categories/{id}/delete", pg.CategoryDeleteForm)
	})

	// JSON API.
	r.Route("/api", func(r chi.Router) {
		r.Use(csrf)
		if writeLimiter != nil {
			r.Use(writeLimiter)
		}

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
