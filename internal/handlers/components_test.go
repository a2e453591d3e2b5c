// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"uikitlab/internal/models"
)

func doJSON(t *testing.T, mux http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func TestListComponentsFilters(t *testing.T) {
	pg := newTestPlayground(t)
	mux := newTestMux(pg)

	w := doJSON(t, mux, http.MethodGet, "/api/components?style=bootstrap", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", w.Code)
	}

	var out struct {
		Items []models.Component `json:"items"`
	}
	if err := json.NewDecoder(w.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out.Items) == 0 {
		t.Fatal("expected seeded bootstrap components")
	}
	for _, item := range out.Items {
		if item.Style != models.StyleBootstrap {
			t.Errorf("component %s: style %q leaked through the bootstrap filter", item.ID, item.Style)
		}
	}
}

func TestGetComponent(t *testing.T) {
	pg := newTestPlayground(t)
	mux := newTestMux(pg)

	w := doJSON(t, mux, http.MethodGet, "/api/components/primary-button", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", w.Code)
	}

	var item models.Component
	if err := json.NewDecoder(w.Body).Decode(&item); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if item.ID != "primary-button" {
		t.Errorf("id: got %q", item.ID)
	}

	if w := doJSON(t, mux, http.MethodGet, "/api/components/nope", nil); w.Code != http.StatusNotFound {
		t.Errorf("unknown id: got %d, want 404", w.Code)
	}
}

func TestCreateComponent(t *testing.T) {
	pg := newTestPlayground(t)
	mux := newTestMux(pg)

	w := doJSON(t, mux, http.MethodPost, "/api/components", map[string]any{
		"name":       "Toggle Switch",
		"slug":       "toggle-switch",
		"categoryId": "forms",
		"style":      "native",
		"code":       map[string]string{"html": "<label class=\"switch\"></label>"},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status: got %d, want 201; body: %s", w.Code, w.Body.String())
	}

	var out componentWriteResponse
	if err := json.NewDecoder(w.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Item == nil || out.Item.ID != "toggle-switch" {
		t.Fatalf("item: got %+v, want id toggle-switch", out.Item)
	}
	if out.SyncStatus != "committed" {
		t.Errorf("syncStatus: got %q, want committed (memory backing)", out.SyncStatus)
	}

	// The new component is immediately readable.
	if pg.state.ComponentByID("toggle-switch") == nil {
		t.Error("created component missing from state")
	}
}

func TestCreateComponentValidation(t *testing.T) {
	pg := newTestPlayground(t)
	mux := newTestMux(pg)

	w := doJSON(t, mux, http.MethodPost, "/api/components", map[string]any{
		"name":       "",
		"slug":       "Bad Slug!",
		"categoryId": "does-not-exist",
		"style":      "vue",
	})
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status: got %d, want 422", w.Code)
	}

	var out struct {
		Errors []FieldError `json:"errors"`
	}
	if err := json.NewDecoder(w.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}

	wantFields := map[string]bool{"name": false, "slug": false, "categoryId": false, "style": false}
	for _, fe := range out.Errors {
		if _, ok := wantFields[fe.Field]; ok {
			wantFields[fe.Field] = true
		}
		if fe.Message == "" {
			t.Errorf("field %s: empty message", fe.Field)
		}
	}
	for field, seen := range wantFields {
		if !seen {
			t.Errorf("expected a validation error for %s", field)
		}
	}

	// A one-rune name and a javascript: thumbnail are both rejected.
	w = doJSON(t, mux, http.MethodPost, "/api/components", map[string]any{
		"name":            "X",
		"categoryId":      "buttons",
		"style":           "native",
		"previewThumbUrl": "javascript:alert(1)",
	})
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("short name: got %d, want 422", w.Code)
	}
	out.Errors = nil
	if err := json.NewDecoder(w.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	seen := map[string]bool{}
	for _, fe := range out.Errors {
		seen[fe.Field] = true
	}
	if !seen["name"] || !seen["previewThumbUrl"] {
		t.Errorf("expected name and previewThumbUrl errors, got %+v", out.Errors)
	}
}

func TestUpdateComponentReplacesAndPreservesIdentity(t *testing.T) {
	pg := newTestPlayground(t)
	mux := newTestMux(pg)

	before := pg.state.ComponentByID("primary-button")

	w := doJSON(t, mux, http.MethodPut, "/api/components/primary-button", map[string]any{
		"name":       "Primary Button v2",
		"categoryId": "buttons",
		"style":      "native",
		"code":       map[string]string{"html": "<button>v2</button>"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200; body: %s", w.Code, w.Body.String())
	}

	after := pg.state.ComponentByID("primary-button")
	if after.Name != "Primary Button v2" {
		t.Errorf("name: got %q", after.Name)
	}
	if after.Code.HTML != "<button>v2</button>" {
		t.Errorf("code not replaced: %q", after.Code.HTML)
	}
	if after.CreatedAt != before.CreatedAt {
		t.Error("update must preserve the creation timestamp")
	}
	if after.UpdatedAt < before.UpdatedAt {
		t.Error("update must advance the update timestamp")
	}
}

func TestDeleteComponent(t *testing.T) {
	pg := newTestPlayground(t)
	mux := newTestMux(pg)

	if w := doJSON(t, mux, http.MethodDelete, "/api/components/primary-button", nil); w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", w.Code)
	}
	if pg.state.ComponentByID("primary-button") != nil {
		t.Error("component still present after delete")
	}

	if w := doJSON(t, mux, http.MethodDelete, "/api/components/primary-button", nil); w.Code != http.StatusNoContent {
		t.Errorf("second delete: got %d, want 204", w.Code)
	}
}

func TestDraftsRequireSessionStore(t *testing.T) {
	pg := newTestPlayground(t)
	mux := newTestMux(pg)

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/api/drafts/primary-button"},
		{http.MethodPut, "/api/drafts/primary-button"},
		{http.MethodDelete, "/api/drafts/primary-button"},
	} {
		w := doJSON(t, mux, tc.method, tc.path, map[string]string{"html": "<p>x</p>"})
		if w.Code != http.StatusServiceUnavailable {
			t.Errorf("%s %s without session store: got %d, want 503", tc.method, tc.path, w.Code)
		}
	}
}

func TestUploadThumbRequiresStorage(t *testing.T) {
	pg := newTestPlayground(t)
	mux := newTestMux(pg)

	w := doJSON(t, mux, http.MethodPost, "/api/media/thumbs", nil)
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("upload without storage: got %d, want 503", w.Code)
	}
}
