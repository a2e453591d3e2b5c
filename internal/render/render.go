// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render provides HTML template rendering for the playground
// interface. It supports full-page and HTMX partial rendering,
// automatically detecting the request type via the HX-Request header.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"uikitlab/internal/middleware"
	"uikitlab/internal/models"
	"uikitlab/internal/session"
)

//go:embed templates/playground/*.html
var pageFS embed.FS

// PageData holds all data passed to playground templates.
type PageData struct {
	Title     string          // Page title for <title> tag
	Section   string          // Active nav section (e.g., "catalog", "categories")
	CSRFToken string          // CSRF token for forms and fetch headers
	Data      map[string]any  // Page-specific data
	Flashes   []session.Flash // One-time notification messages
}

// Renderer handles template parsing and execution for playground pages.
type Renderer struct {
	templates map[string]*template.Template
	funcMap   template.FuncMap
}

// New creates a Renderer by parsing all playground templates from the
// embedded filesystem. Each page template is paired with the base layout.
// When devMode is true, pages load the unminified htmx build for
// debuggable stack traces; production gets the minified one.
func New(devMode bool) (*Renderer, error) {
	r := &Renderer{
		templates: make(map[string]*template.Template),
		funcMap: template.FuncMap{
			"activeClass": func(current, target string) string {
				if current == target {
					return "nav-link active"
				}
				return "nav-link"
			},
			// deref safely dereferences an int pointer for use in templates.
			"deref": func(n *int) int {
				if n == nil {
					return 0
				}
				return *n
			},
			// isDev returns true when the app runs in development mode.
			"isDev": func() bool {
				return devMode
			},
			// styleLabel maps a style kind to its display name.
			"styleLabel": func(s models.StyleKind) string {
				switch s {
				case models.StyleBootstrap:
					return "Bootstrap"
				case models.StyleTailwind:
					return "Tailwind"
				default:
					return "Native"
				}
			},
			// millisDate formats an epoch-milliseconds timestamp for display.
			"millisDate": func(ms int64) string {
				if ms == 0 {
					return ""
				}
				return time.UnixMilli(ms).UTC().Format("Jan 2, 2006")
			},
			// tagList joins component tags for a title attribute.
			"tagList": func(tags []string) string {
				return strings.Join(tags, ", ")
			},
		},
	}

	entries, err := pageFS.ReadDir("templates/playground")
	if err != nil {
		return nil, fmt.Errorf("read embedded templates: %w", err)
	}

	// Parse each page template paired with the base layout.
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := filepath.Base(e.Name())
		if name == "base.html" {
			continue
		}

		tmplName := name[:len(name)-len(".html")]

		tmpl, parseErr := template.New("base.html").Funcs(r.funcMap).ParseFS(
			pageFS, "templates/playground/base.html", "templates/playground/"+name,
		)
		if parseErr != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, parseErr)
		}

		r.templates[tmplName] = tmpl
	}

	return r, nil
}

// Page renders a full playground page or an HTMX partial, depending on
// the request headers. For HTMX requests, only the "content" block is
// sent. For full page loads, the entire base layout is rendered.
func (rn *Renderer) Page(w http.ResponseWriter, r *http.Request, name string, data *PageData) {
	tmpl, ok := rn.templates[name]
	if !ok {
		http.Error(w, fmt.Sprintf("template %q not found", name), http.StatusInternalServerError)
		return
	}

	// Inject CSRF token from context (set by CSRF middleware).
	data.CSRFToken = middleware.CSRFTokenFromCtx(r.Context())

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	// HTMX request: render only the content fragment.
	if isHTMX(r) {
		if err := executeTemplate(w, tmpl, "content", data); err != nil {
			http.Error(w, "template error", http.StatusInternalServerError)
		}
		return
	}

	if err := executeTemplate(w, tmpl, "base.html", data); err != nil {
		http.Error(w, "template error", http.StatusInternalServerError)
	}
}

// executeTemplate wraps template execution with error handling.
func executeTemplate(w io.Writer, tmpl *template.Template, name string, data any) error {
	return tmpl.ExecuteTemplate(w, name, data)
}

// isHTMX returns true if the request was made by HTMX (has HX-Request header).
func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}
