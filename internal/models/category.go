// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// Category groups playground components (buttons, cards, alerts, ...).
// IDs are stable strings derived from the user-supplied slug or name, or
// synthesized from a timestamp when neither is usable. The ID never
// changes once created; slug uniqueness is checked at the validation
// layer only, never by the backing store.
type Category struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	ThumbURL string `json:"thumbUrl,omitempty"`

	// Order is a legacy manual-sort field kept for older documents.
	Order *int `json:"order,omitempty"`

	CreatedAt int64 `json:"createdAt,omitempty"` // epoch milliseconds
	UpdatedAt int64 `json:"updatedAt,omitempty"` // epoch milliseconds
}

// Clone returns an independent copy of the category.
func (c Category) Clone() Category {
	out := c
	if c.Order != nil {
		v := *c.Order
		out.Order = &v
	}
	return out
}
