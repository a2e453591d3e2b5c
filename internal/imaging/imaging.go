// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package imaging converts uploaded category and component icons into a
// single fixed-width WebP thumbnail using libvips. Grids only ever show
// these images small, so one variant is enough.
package imaging

import (
	"fmt"
	"log/slog"

	"github.com/davidbyttow/govips/v2/vips"
)

const (
	// ThumbWidth is the output width of generated thumbnails.
	ThumbWidth = 320

	// thumbQuality is the WebP quality for thumbnails.
	thumbQuality = 75
)

// Thumb holds a generated thumbnail ready for upload.
type Thumb struct {
	Width       int    // Actual output width
	Height      int    // Actual output height
	Data        []byte // WebP-encoded image bytes
	ContentType string // Always "image/webp"
}

// Startup initialises the libvips library. Call once at application start.
// concurrency controls the number of libvips worker threads (0 = auto).
func Startup(concurrency int) {
	cfg := &vips.Config{
		ConcurrencyLevel: concurrency,
		MaxCacheSize:     100,
		MaxCacheMem:      50 * 1024 * 1024, // 50 MB
	}
	vips.LoggingSettings(nil, vips.LogLevelWarning)
	vips.Startup(cfg)
	slog.Info("libvips started", "version", vips.Version)
}

// Shutdown releases libvips resources. Call at application shutdown.
func Shutdown() {
	vips.Shutdown()
}

// Thumbnail re-encodes an uploaded image as a WebP thumbnail no wider
// than ThumbWidth. Smaller originals keep their size — no upscaling.
// Decoding also acts as validation: malformed uploads fail here before
// anything reaches storage.
func Thumbnail(original []byte) (*Thumb, error) {
	probe, err := vips.NewImageFromBuffer(original)
	if err != nil {
		return nil, fmt.Errorf("imaging: probe failed: %w", err)
	}
	origWidth := probe.Width()
	probe.Close()

	targetWidth := ThumbWidth
	if origWidth < targetWidth {
		targetWidth = origWidth
	}

	img, err := vips.NewThumbnailFromBuffer(original, targetWidth, 0, vips.InterestingNone)
	if err != nil {
		return nil, fmt.Errorf("imaging: thumbnail (%dpx): %w", targetWidth, err)
	}
	defer img.Close()

	// Auto-rotate based on EXIF orientation, then strip metadata.
	if err := img.AutoRotate(); err != nil {
		return nil, fmt.Errorf("imaging: autorotate: %w", err)
	}

	params := vips.NewWebpExportParams()
	params.Quality = thumbQuality
	params.Lossless = false
	params.StripMetadata = true

	buf, meta, err := img.ExportWebp(params)
	if err != nil {
		return nil, fmt.Errorf("imaging: export: %w", err)
	}

	return &Thumb{
		Width:       meta.Width,
		Height:      meta.Height,
		Data:        buf,
		ContentType: "image/webp",
	}, nil
}
