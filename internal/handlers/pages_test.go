// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func doForm(t *testing.T, mux http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func TestIndexAppliesFilters(t *testing.T) {
	pg := newTestPlayground(t)
	mux := newTestMux(pg)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/?style=tailwind&category=cards", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", w.Code)
	}

	body := w.Body.String()
	if !strings.Contains(body, "Pricing Card") {
		t.Error("tailwind card should be listed")
	}
	if strings.Contains(body, "/editor/primary-button") {
		t.Error("native button should be filtered out")
	}

	// The store now reflects the requested facets for API consumers too.
	snap := pg.state.Snapshot()
	if snap.StyleFilter != "tailwind" || snap.ActiveCategoryID != "cards" {
		t.Errorf("facets: got (%q, %q)", snap.StyleFilter, snap.ActiveCategoryID)
	}
}

func TestIndexSearch(t *testing.T) {
	pg := newTestPlayground(t)
	mux := newTestMux(pg)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/?q=alert", nil))

	body := w.Body.String()
	if !strings.Contains(body, "Dismissible Alert") {
		t.Error("query should match the alert component")
	}
	if strings.Contains(body, "Login Form") {
		t.Error("query should exclude unrelated components")
	}
}

func TestEditorPage(t *testing.T) {
	pg := newTestPlayground(t)
	mux := newTestMux(pg)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/editor/tailwind-pricing-card", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", w.Code)
	}

	body := w.Body.String()
	if !strings.Contains(body, "/preview/frame?style=tailwind") {
		t.Error("editor should embed the style-matched frame")
	}
	if !strings.Contains(body, `id="editor-data"`) {
		t.Error("editor should embed the bootstrap JSON blob")
	}
}

func TestNewComponentFormFlow(t *testing.T) {
	pg := newTestPlayground(t)
	mux := newTestMux(pg)

	w := doForm(t, mux, "/new", url.Values{
		"name":       {"Striped Table"},
		"slug":       {"striped-table"},
		"categoryId": {"cards"},
		"style":      {"bootstrap"},
		"tags":       {"table, data"},
	})

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status: got %d, want 303; body: %s", w.Code, w.Body.String())
	}
	if loc := w.Header().Get("Location"); loc != "/editor/striped-table" {
		t.Errorf("redirect: got %q", loc)
	}

	comp := pg.state.ComponentByID("striped-table")
	if comp == nil {
		t.Fatal("component not created")
	}
	if len(comp.Tags) != 2 || comp.Tags[0] != "table" || comp.Tags[1] != "data" {
		t.Errorf("tags: got %v", comp.Tags)
	}
}

func TestNewComponentFormValidation(t *testing.T) {
	pg := newTestPlayground(t)
	mux := newTestMux(pg)

	w := doForm(t, mux, "/new", url.Values{
		"name":       {""},
		"categoryId": {"buttons"},
	})

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status: got %d, want 422", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Name is required") {
		t.Error("form should re-render with the field error")
	}
}

func TestCategoryFormFlow(t *testing.T) {
	pg := newTestPlayground(t)
	mux := newTestMux(pg)

	w := doForm(t, mux, "/categories", url.Values{
		"name":  {"Tables"},
		"order": {"7"},
	})
	if w.Code != http.StatusSeeOther {
		t.Fatalf("create: got %d, want 303", w.Code)
	}

	cat := pg.state.CategoryByID("tables")
	if cat == nil {
		t.Fatal("category not created")
	}
	if cat.Order == nil || *cat.Order != 7 {
		t.Errorf("order: got %v", cat.Order)
	}

	// Delete through the form endpoint.
	w = doForm(t, mux, "/categories/tables/delete", url.Values{})
	if w.Code != http.StatusSeeOther {
		t.Fatalf("delete: got %d, want 303", w.Code)
	}
	if pg.state.CategoryByID("tables") != nil {
		t.Error("category still present after delete")
	}
}
