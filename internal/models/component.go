// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// StyleKind selects the styling dialect a component snippet is written in.
// It determines which framework runtime (if any) the preview document loads.
type StyleKind string

const (
	StyleNative    StyleKind = "native"
	StyleBootstrap StyleKind = "bootstrap"
	StyleTailwind  StyleKind = "tailwind"
)

// KnownStyle reports whether s is one of the supported style dialects.
func KnownStyle(s StyleKind) bool {
	switch s {
	case StyleNative, StyleBootstrap, StyleTailwind:
		return true
	}
	return false
}

// ComponentCode is the full source of one playground snippet. The three
// fields are opaque text: nothing in the core parses them, they are only
// interpolated verbatim into the preview document template.
type ComponentCode struct {
	HTML string `json:"html"`
	CSS  string `json:"css"`
	JS   string `json:"js"`
}

// Component is a reusable UI snippet in the catalog. CategoryID references
// a Category.ID but is not enforced referentially by any backing store; a
// dangling reference degrades to "no matching category" in joins.
type Component struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	Slug       string        `json:"slug"`
	CategoryID string        `json:"categoryId"`
	Style      StyleKind     `json:"style"`
	Tags       []string      `json:"tags,omitempty"`
	Code       ComponentCode `json:"code"`

	// Props are optional presentational hints (width, height, padding,
	// radius, shadow, fontSize, color, contentText) consumed only by the
	// editor UI. The preview never reads them.
	Props map[string]string `json:"props,omitempty"`

	PreviewThumbURL string `json:"previewThumbUrl,omitempty"`

	CreatedAt int64 `json:"createdAt,omitempty"` // epoch milliseconds
	UpdatedAt int64 `json:"updatedAt,omitempty"` // epoch milliseconds

	IsDraft    bool `json:"isDraft,omitempty"`
	IsFeatured bool `json:"isFeatured,omitempty"`
}

// Clone returns an independent copy of the component, including its
// tags slice and props map.
func (c Component) Clone() Component {
	out := c
	if c.Tags != nil {
		out.Tags = append([]string(nil), c.Tags...)
	}
	if c.Props != nil {
		out.Props = make(map[string]string, len(c.Props))
		for k, v := range c.Props {
			out.Props[k] = v
		}
	}
	return out
}

// MatchesQuery reports whether the component matches a free-text query
// against its name, slug, or any tag. An empty query matches everything.
func (c Component) MatchesQuery(query string) bool {
	if query == "" {
		return true
	}
	if containsFold(c.Name, query) || containsFold(c.Slug, query) {
		return true
	}
	for _, tag := range c.Tags {
		if containsFold(tag, query) {
			return true
		}
	}
	return false
}
