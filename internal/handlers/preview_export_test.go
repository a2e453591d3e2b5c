// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestPreviewFrame(t *testing.T) {
	pg := newTestPlayground(t)
	mux := newTestMux(pg)

	tests := []struct {
		style      string
		wantStatus int
		wantMarker string
	}{
		{"bootstrap", http.StatusOK, "bootstrap"},
		{"tailwind", http.StatusOK, "tailwindcss"},
		{"native", http.StatusOK, "user-script"},
		{"", http.StatusOK, "user-script"}, // defaults to native
		{"angular", http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		t.Run("style="+tt.style, func(t *testing.T) {
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/preview/frame?style="+tt.style, nil))

			if w.Code != tt.wantStatus {
				t.Fatalf("status: got %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.wantStatus != http.StatusOK {
				return
			}
			body := w.Body.String()
			if !strings.Contains(body, tt.wantMarker) {
				t.Errorf("frame body missing %q", tt.wantMarker)
			}
			if !strings.Contains(body, "IFRAME_READY") {
				t.Error("frame must announce readiness to the host")
			}
			if ct := w.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
				t.Errorf("content-type: got %q", ct)
			}
		})
	}
}

func TestExportDocument(t *testing.T) {
	pg := newTestPlayground(t)
	mux := newTestMux(pg)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/export/bootstrap-login-form", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", w.Code)
	}

	body := w.Body.String()
	if !strings.Contains(body, "<!DOCTYPE html>") {
		t.Error("export must be a complete document")
	}
	if !strings.Contains(body, "bootstrap") {
		t.Error("export must inline the style's dependency header")
	}
	if !strings.Contains(body, "form-control") {
		t.Error("export must contain the component markup")
	}

	cd := w.Header().Get("Content-Disposition")
	if !strings.Contains(cd, `attachment`) || !strings.Contains(cd, "bootstrap-login-form.html") {
		t.Errorf("content-disposition: got %q", cd)
	}
}

func TestExportUnknownComponent(t *testing.T) {
	pg := newTestPlayground(t)
	mux := newTestMux(pg)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/export/nope", nil))

	if w.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want 404", w.Code)
	}
}

func TestExportLiveBuffer(t *testing.T) {
	pg := newTestPlayground(t)
	mux := newTestMux(pg)

	// The posted buffer, not any saved component, shapes the document.
	w := doJSON(t, mux, http.MethodPost, "/api/export", map[string]any{
		"slug":  "work-in-progress",
		"style": "tailwind",
		"code":  map[string]string{"html": "<div>unsaved-marker</div>"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200; body: %s", w.Code, w.Body.String())
	}

	body := w.Body.String()
	if !strings.Contains(body, "unsaved-marker") {
		t.Error("document must contain the posted markup")
	}
	if !strings.Contains(body, "cdn.tailwindcss.com") {
		t.Error("document must inline the requested style's dependency header")
	}
	cd := w.Header().Get("Content-Disposition")
	if !strings.Contains(cd, "work-in-progress.html") {
		t.Errorf("content-disposition: got %q", cd)
	}

	// An unslug-safe filename falls back to a neutral one.
	w = doJSON(t, mux, http.MethodPost, "/api/export", map[string]any{
		"slug": "../../etc/passwd",
		"code": map[string]string{"html": "<p>x</p>"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("fallback name: got %d, want 200", w.Code)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "component.html") {
		t.Errorf("content-disposition: got %q", cd)
	}

	if w := doJSON(t, mux, http.MethodPost, "/api/export", map[string]any{
		"style": "angular",
	}); w.Code != http.StatusBadRequest {
		t.Errorf("unknown style: got %d, want 400", w.Code)
	}
}

func TestExportReflectsSavedCode(t *testing.T) {
	pg := newTestPlayground(t)
	mux := newTestMux(pg)

	// Save new code, then export again; the document must contain it.
	w := doJSON(t, mux, http.MethodPut, "/api/components/primary-button", map[string]any{
		"name":       "Primary Button",
		"categoryId": "buttons",
		"style":      "native",
		"code":       map[string]string{"html": "<button>exported-marker</button>"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("update: got %d; body: %s", w.Code, w.Body.String())
	}

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/export/primary-button", nil))
	if !strings.Contains(rec.Body.String(), "exported-marker") {
		t.Error("export served stale code after a save")
	}
}
