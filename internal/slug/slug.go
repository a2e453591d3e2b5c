// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug provides URL-friendly slug generation and stable entity
// ID derivation for catalog entries.
package slug

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	// nonAlphanumeric matches anything that isn't a letter, digit, or space.
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9\s-]`)
	// multipleHyphens collapses consecutive hyphens into one.
	multipleHyphens = regexp.MustCompile(`-{2,}`)
	// validSlug is the shape slugs are expected to have once generated.
	validSlug = regexp.MustCompile(`^[a-z0-9-]+$`)
)

// Generate creates a URL-friendly slug from the given string.
// Example: "Hello, World! 2026" → "hello-world-2026"
func Generate(s string) string {
	result := strings.ToLower(strings.TrimSpace(s))
	result = nonAlphanumeric.ReplaceAllString(result, "")
	result = strings.ReplaceAll(result, " ", "-")
	result = multipleHyphens.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")
	return result
}

// IsValid reports whether s is a well-formed slug ([a-z0-9-]+).
func IsValid(s string) bool {
	return validSlug.MatchString(s)
}

// ComponentID derives a stable component ID. The user-supplied slug wins,
// then a slug generated from the name; if neither yields anything usable
// the ID is synthesized from the current timestamp.
func ComponentID(userSlug, name string, now time.Time) string {
	return deriveID("comp", userSlug, name, now)
}

// CategoryID derives a stable category ID with the same precedence rules
// as ComponentID.
func CategoryID(userSlug, name string, now time.Time) string {
	return deriveID("cat", userSlug, name, now)
}

func deriveID(prefix, userSlug, name string, now time.Time) string {
	if s := Generate(userSlug); s != "" {
		return s
	}
	if s := Generate(name); s != "" {
		return s
	}
	return fmt.Sprintf("%s-%d", prefix, now.UnixMilli())
}
