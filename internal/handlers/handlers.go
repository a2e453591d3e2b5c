// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for the playground.
// Handlers are grouped by concern (pages, components, categories,
// preview, media) and receive their dependencies through the handler
// struct.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"uikitlab/internal/cache"
	"uikitlab/internal/render"
	"uikitlab/internal/session"
	"uikitlab/internal/state"
	"uikitlab/internal/storage"
)

// Playground groups the playground HTTP handlers and their dependencies.
// sessions, exports and storageClient may be nil when the corresponding
// backing service is not configured; handlers degrade per endpoint.
type Playground struct {
	renderer      *render.Renderer
	state         *state.Store
	sessions      *session.Store
	exports       *cache.ExportCache
	storageClient *storage.Client
}

// NewPlayground creates the handler group with the given dependencies.
func NewPlayground(renderer *render.Renderer, st *state.Store, sessions *session.Store, exports *cache.ExportCache, storageClient *storage.Client) *Playground {
	return &Playground{
		renderer:      renderer,
		state:         st,
		sessions:      sessions,
		exports:       exports,
		storageClient: storageClient,
	}
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("encode response failed", "error", err)
	}
}

// writeJSONError writes a single-message JSON error body.
func writeJSONError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeValidationErrors writes field-level validation failures as a 422.
func writeValidationErrors(w http.ResponseWriter, errs []FieldError) {
	writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"errors": errs})
}

// decodeJSON decodes a request body into dst, rejecting unknown fields.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
