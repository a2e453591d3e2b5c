package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"uikitlab/internal/cache"
	"uikitlab/internal/models"
)

// testStore connects to the test Valkey instance, skipping when it is
// unreachable.
func testStore(t *testing.T) *Store {
	t.Helper()

	host := os.Getenv("VALKEY_HOST")
	if host == "" {
		host = "localhost"
	}
	port := os.Getenv("VALKEY_PORT")
	if port == "" {
		port = "6379"
	}

	client, err := cache.ConnectValkey(host, port, os.Getenv("VALKEY_PASSWORD"))
	if err != nil {
		t.Skipf("skipping integration test: valkey not reachable: %v", err)
	}
	t.Cleanup(func() { client.Close() })
	return NewStore(client)
}

// carryCookies copies Set-Cookie headers from a response recorder onto a
// fresh request, simulating the browser's next request.
func carryCookies(t *testing.T, w *httptest.ResponseRecorder, r *http.Request) {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		r.AddCookie(c)
	}
}

func TestNilStoreIsInert(t *testing.T) {
	var s *Store
	ctx := context.Background()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	data, err := s.Get(ctx, r)
	if err != nil || data != nil {
		t.Errorf("nil store Get = %+v, %v", data, err)
	}

	// GetOrCreate must hand back a throwaway session instead of failing.
	data, err = s.GetOrCreate(ctx, w, r)
	if err != nil || data == nil {
		t.Errorf("nil store GetOrCreate = %+v, %v", data, err)
	}
	if len(w.Result().Cookies()) != 0 {
		t.Error("nil store set a cookie")
	}

	if _, ok := s.Draft(ctx, r, "x"); ok {
		t.Error("nil store returned a draft")
	}
	if got := s.PopFlashes(ctx, r); got != nil {
		t.Errorf("nil store returned flashes: %v", got)
	}
}

func TestDraftLifecycle(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	code := models.ComponentCode{HTML: "<b>wip</b>", CSS: "b{}", JS: "1"}
	if err := s.StageDraft(ctx, w, r, "primary-button", code); err != nil {
		t.Fatalf("StageDraft: %v", err)
	}

	next := httptest.NewRequest(http.MethodGet, "/", nil)
	carryCookies(t, w, next)
	t.Cleanup(func() { s.Destroy(ctx, httptest.NewRecorder(), next) })

	got, ok := s.Draft(ctx, next, "primary-button")
	if !ok {
		t.Fatal("staged draft not found on the next request")
	}
	if got != code {
		t.Errorf("draft = %+v, want %+v", got, code)
	}

	if _, ok := s.Draft(ctx, next, "other-component"); ok {
		t.Error("draft leaked across component ids")
	}

	if err := s.ClearDraft(ctx, next, "primary-button"); err != nil {
		t.Fatalf("ClearDraft: %v", err)
	}
	if _, ok := s.Draft(ctx, next, "primary-button"); ok {
		t.Error("draft survived ClearDraft")
	}
}

func TestFlashesPopOnce(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	if err := s.AddFlash(ctx, w, r, Flash{Type: "success", Message: "Saved"}); err != nil {
		t.Fatalf("AddFlash: %v", err)
	}

	next := httptest.NewRequest(http.MethodGet, "/", nil)
	carryCookies(t, w, next)
	t.Cleanup(func() { s.Destroy(ctx, httptest.NewRecorder(), next) })

	flashes := s.PopFlashes(ctx, next)
	if len(flashes) != 1 || flashes[0].Message != "Saved" {
		t.Fatalf("PopFlashes = %+v", flashes)
	}

	// One-time: the second pop is empty.
	if again := s.PopFlashes(ctx, next); len(again) != 0 {
		t.Errorf("flashes popped twice: %+v", again)
	}
}
