// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"uikitlab/internal/models"
	"uikitlab/internal/preview"
)

// PreviewFrame serves the build-once preview frame document for the
// requested style. The editor loads it in a sandboxed iframe and then
// streams code changes in via postMessage, so dependency headers are
// fetched exactly once per style.
func (p *Playground) PreviewFrame(w http.ResponseWriter, r *http.Request) {
	style := models.StyleKind(r.URL.Query().Get("style"))
	if style == "" {
		style = models.StyleNative
	}
	if !models.KnownStyle(style) {
		http.Error(w, "unknown style", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	// The frame document never changes for a given style.
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write([]byte(preview.BuildFrameDocument(style)))
}
