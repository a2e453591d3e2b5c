// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"strings"
	"unicode/utf8"

	"uikitlab/internal/models"
	"uikitlab/internal/slug"
)

// Validation limits for component and category fields.
const (
	minNameLen = 2
	maxNameLen = 120
	maxSlugLen = 120
	maxTagLen  = 40
	maxTags    = 10
	maxCodeLen = 100_000
)

// FieldError is a field-level validation failure returned to the client.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// validateComponent checks component inputs and collects every failure,
// not just the first, so forms can mark all offending fields at once.
// categoryExists reports whether the referenced category is known.
func validateComponent(item models.Component, categoryExists bool) []FieldError {
	var errs []FieldError

	name := strings.TrimSpace(item.Name)
	if name == "" {
		errs = append(errs, FieldError{"name", "Name is required."})
	} else if utf8.RuneCountInString(name) < minNameLen {
		errs = append(errs, FieldError{"name", "Name must be at least 2 characters."})
	} else if utf8.RuneCountInString(name) > maxNameLen {
		errs = append(errs, FieldError{"name", "Name is too long (max 120 characters)."})
	}

	if item.Slug != "" {
		if utf8.RuneCountInString(item.Slug) > maxSlugLen {
			errs = append(errs, FieldError{"slug", "Slug is too long (max 120 characters)."})
		} else if !slug.IsValid(item.Slug) {
			errs = append(errs, FieldError{"slug", "Slug may only contain lowercase letters, digits and hyphens."})
		}
	}

	if item.CategoryID == "" {
		errs = append(errs, FieldError{"categoryId", "Category is required."})
	} else if !categoryExists {
		errs = append(errs, FieldError{"categoryId", "Unknown category."})
	}

	if !models.KnownStyle(item.Style) {
		errs = append(errs, FieldError{"style", "Style must be native, bootstrap or tailwind."})
	}

	if len(item.Tags) > maxTags {
		errs = append(errs, FieldError{"tags", "Too many tags (max 10)."})
	}
	for _, tag := range item.Tags {
		if utf8.RuneCountInString(tag) > maxTagLen {
			errs = append(errs, FieldError{"tags", "Tag is too long (max 40 characters)."})
			break
		}
	}

	for _, part := range []struct {
		field string
		code  string
	}{
		{"code.html", item.Code.HTML},
		{"code.css", item.Code.CSS},
		{"code.js", item.Code.JS},
	} {
		if utf8.RuneCountInString(part.code) > maxCodeLen {
			errs = append(errs, FieldError{part.field, "Code is too long (max 100,000 characters)."})
		}
	}

	if !validIconRef(item.PreviewThumbURL) {
		errs = append(errs, FieldError{"previewThumbUrl", "Thumbnail must be an http(s) URL, a data: URL, or a rooted path."})
	}

	return errs
}

// validateCategory checks category inputs and collects every failure.
// existing is the current category list, used for duplicate detection;
// a category never conflicts with itself.
func validateCategory(cat models.Category, existing []models.Category) []FieldError {
	var errs []FieldError

	name := strings.TrimSpace(cat.Name)
	if name == "" {
		errs = append(errs, FieldError{"name", "Name is required."})
	} else if utf8.RuneCountInString(name) < minNameLen {
		errs = append(errs, FieldError{"name", "Name must be at least 2 characters."})
	} else if utf8.RuneCountInString(name) > maxNameLen {
		errs = append(errs, FieldError{"name", "Name is too long (max 120 characters)."})
	}

	if cat.Slug != "" {
		if utf8.RuneCountInString(cat.Slug) > maxSlugLen {
			errs = append(errs, FieldError{"slug", "Slug is too long (max 120 characters)."})
		} else if !slug.IsValid(cat.Slug) {
			errs = append(errs, FieldError{"slug", "Slug may only contain lowercase letters, digits and hyphens."})
		}
	}

	for _, other := range existing {
		if other.ID == cat.ID {
			continue
		}
		if name != "" && strings.EqualFold(other.Name, name) {
			errs = append(errs, FieldError{"name", "A category with this name already exists."})
		}
		if cat.Slug != "" && other.Slug == cat.Slug {
			errs = append(errs, FieldError{"slug", "A category with this slug already exists."})
		}
	}

	if cat.Order != nil && *cat.Order < 0 {
		errs = append(errs, FieldError{"order", "Order must not be negative."})
	}

	if !validIconRef(cat.ThumbURL) {
		errs = append(errs, FieldError{"thumbUrl", "Thumbnail must be an http(s) URL, a data: URL, or a rooted path."})
	}

	return errs
}

// validIconRef accepts empty, http(s) URLs, data: URLs, and rooted local
// paths such as the embedded seed placeholders.
func validIconRef(ref string) bool {
	if ref == "" {
		return true
	}
	return strings.HasPrefix(ref, "http://") ||
		strings.HasPrefix(ref, "https://") ||
		strings.HasPrefix(ref, "data:") ||
		strings.HasPrefix(ref, "/")
}
