// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
)

// Health reports liveness plus the store's sync state. The playground
// stays healthy even when the remote store is down — reads fall back
// to the seed catalog and writes are kept locally.
func (p *Playground) Health(w http.ResponseWriter, r *http.Request) {
	snap := p.state.Snapshot()
	writeJSON(w, http.StatusOK, map[string]any{
		"status":      "ok",
		"components":  len(snap.Components),
		"categories":  len(snap.Categories),
		"pendingSync": snap.PendingSync,
	})
}

// Reload re-fetches both lists from the backing store, discarding local
// edits that never reached it. Used after restoring connectivity.
func (p *Playground) Reload(w http.ResponseWriter, r *http.Request) {
	if err := p.state.LoadAll(r.Context()); err != nil {
		slog.Warn("reload failed", "error", err)
		writeJSONError(w, http.StatusBadGateway, "reload failed: "+err.Error())
		return
	}
	snap := p.state.Snapshot()
	writeJSON(w, http.StatusOK, map[string]any{
		"components": len(snap.Components),
		"categories": len(snap.Categories),
	})
}
