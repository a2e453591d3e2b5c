// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"uikitlab/internal/imaging"
)

// maxUploadBytes caps thumbnail uploads at 10 MB.
const maxUploadBytes = 10 << 20

// UploadThumb accepts an image upload, converts it to a WebP thumbnail
// and stores it in the public bucket. Responds 503 when object storage
// is not configured — catalog entries then simply render without
// thumbnails.
func (p *Playground) UploadThumb(w http.ResponseWriter, r *http.Request) {
	if p.storageClient == nil {
		writeJSONError(w, http.StatusServiceUnavailable, "object storage is not configured")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "reading upload failed")
		return
	}

	thumb, err := imaging.Thumbnail(data)
	if err != nil {
		slog.Warn("thumbnail generation failed", "filename", header.Filename, "error", err)
		writeJSONError(w, http.StatusUnprocessableEntity, "file is not a supported image")
		return
	}

	key := "thumbs/" + uuid.NewString() + ".webp"
	if err := p.storageClient.Upload(r.Context(), key, thumb.Data, thumb.ContentType); err != nil {
		slog.Error("thumbnail upload failed", "key", key, "error", err)
		writeJSONError(w, http.StatusBadGateway, "storing thumbnail failed")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"url":    p.storageClient.FileURL(key),
		"width":  thumb.Width,
		"height": thumb.Height,
	})
}

// DeleteThumb removes a previously uploaded thumbnail by its public URL.
func (p *Playground) DeleteThumb(w http.ResponseWriter, r *http.Request) {
	if p.storageClient == nil {
		writeJSONError(w, http.StatusServiceUnavailable, "object storage is not configured")
		return
	}

	var body struct {
		URL string `json:"url"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}

	key := p.storageClient.ExtractKey(body.URL)
	if key == "" {
		writeJSONError(w, http.StatusBadRequest, "url is not in the thumbnail bucket")
		return
	}

	if err := p.storageClient.Delete(r.Context(), key); err != nil {
		slog.Error("thumbnail delete failed", "key", key, "error", err)
		writeJSONError(w, http.StatusBadGateway, "deleting thumbnail failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
