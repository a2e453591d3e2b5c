// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"uikitlab/internal/models"
)

// GetDraft returns the staged session draft for a component, or 404
// when nothing is staged.
func (p *Playground) GetDraft(w http.ResponseWriter, r *http.Request) {
	if p.sessions == nil {
		writeJSONError(w, http.StatusServiceUnavailable, "drafts require a session store")
		return
	}

	id := chi.URLParam(r, "id")
	code, ok := p.sessions.Draft(r.Context(), r, id)
	if !ok {
		writeJSONError(w, http.StatusNotFound, "no draft staged")
		return
	}
	writeJSON(w, http.StatusOK, code)
}

// PutDraft stages unsaved editor code in the session. The editor calls
// this on a debounce so a browser reload lands back on the same code.
func (p *Playground) PutDraft(w http.ResponseWriter, r *http.Request) {
	if p.sessions == nil {
		writeJSONError(w, http.StatusServiceUnavailable, "drafts require a session store")
		return
	}

	id := chi.URLParam(r, "id")
	if p.state.ComponentByID(id) == nil {
		writeJSONError(w, http.StatusNotFound, "component not found")
		return
	}

	var code models.ComponentCode
	if err := decodeJSON(r, &code); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}

	if err := p.sessions.StageDraft(r.Context(), w, r, id, code); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "staging draft failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteDraft discards a staged draft.
func (p *Playground) DeleteDraft(w http.ResponseWriter, r *http.Request) {
	if p.sessions == nil {
		writeJSONError(w, http.StatusServiceUnavailable, "drafts require a session store")
		return
	}

	id := chi.URLParam(r, "id")
	if err := p.sessions.ClearDraft(r.Context(), r, id); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "clearing draft failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
