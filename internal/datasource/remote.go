// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package datasource

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"time"

	"uikitlab/internal/models"
	"uikitlab/internal/seed"
)

// opTimeout bounds every remote operation so a hung connection can never
// stall a request indefinitely.
const opTimeout = 5 * time.Second

// Remote is the PostgreSQL-backed document store. Each entity is one row
// keyed by its string id with the full document as jsonb; upserts merge
// partial documents onto existing fields rather than overwriting.
//
// Every read falls back silently to the seed dataset on any error or
// empty result. Every write is attempted exactly once; a failure is
// logged and reported as WriteLocalOnly, never surfaced as an error.
type Remote struct {
	db *sql.DB
}

// NewRemote returns a document store backed by the given connection pool.
func NewRemote(db *sql.DB) *Remote {
	return &Remote{db: db}
}

// GetCategories loads the categories collection. Seed data is served on
// failure or when the collection is empty.
func (r *Remote) GetCategories(ctx context.Context) ([]models.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `SELECT doc FROM categories ORDER BY id`)
	if err != nil {
		slog.Warn("remote getCategories failed, falling back to seed", "error", err)
		return seed.Categories(), nil
	}
	defer rows.Close()

	var out []models.Category
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			slog.Warn("remote getCategories scan failed, falling back to seed", "error", err)
			return seed.Categories(), nil
		}
		var c models.Category
		if err := json.Unmarshal(raw, &c); err != nil {
			slog.Warn("remote category document malformed, skipping", "error", err)
			continue
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil || len(out) == 0 {
		if err != nil {
			slog.Warn("remote getCategories rows failed, falling back to seed", "error", err)
		}
		return seed.Categories(), nil
	}
	return out, nil
}

// GetComponents loads the components collection, with the same fallback
// behavior as GetCategories.
func (r *Remote) GetComponents(ctx context.Context) ([]models.Component, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `SELECT doc FROM components ORDER BY id`)
	if err != nil {
		slog.Warn("remote getComponents failed, falling back to seed", "error", err)
		return seed.Components(), nil
	}
	defer rows.Close()

	var out []models.Component
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			slog.Warn("remote getComponents scan failed, falling back to seed", "error", err)
			return seed.Components(), nil
		}
		var c models.Component
		if err := json.Unmarshal(raw, &c); err != nil {
			slog.Warn("remote component document malformed, skipping", "error", err)
			continue
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil || len(out) == 0 {
		if err != nil {
			slog.Warn("remote getComponents rows failed, falling back to seed", "error", err)
		}
		return seed.Components(), nil
	}
	return out, nil
}

// GetComponentByID fetches one document. When the id is absent or the
// read fails, the seed dataset is scanned instead — reads may be blocked
// by access rules while the data still exists locally.
func (r *Remote) GetComponentByID(ctx context.Context, id string) (*models.Component, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var raw []byte
	err := r.db.QueryRowContext(ctx, `SELECT doc FROM components WHERE id = $1`, id).Scan(&raw)
	if err == sql.ErrNoRows {
		return seed.ComponentByID(id), nil
	}
	if err != nil {
		slog.Warn("remote getComponentById failed, falling back to seed", "id", id, "error", err)
		return seed.ComponentByID(id), nil
	}

	var c models.Component
	if err := json.Unmarshal(raw, &c); err != nil {
		slog.Warn("remote component document malformed, falling back to seed", "id", id, "error", err)
		return seed.ComponentByID(id), nil
	}
	return &c, nil
}

// UpsertComponent merge-writes the component document. One attempt, no
// retry; a failure is dropped and reported as WriteLocalOnly.
func (r *Remote) UpsertComponent(ctx context.Context, item models.Component) WriteStatus {
	return r.mergeWrite(ctx, "components", item.ID, item)
}

// DeleteComponent removes the component document. Deleting an absent id
// is a no-op, not an error.
func (r *Remote) DeleteComponent(ctx context.Context, id string) WriteStatus {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if _, err := r.db.ExecContext(ctx, `DELETE FROM components WHERE id = $1`, id); err != nil {
		slog.Warn("remote deleteComponent failed, dropping write", "id", id, "error", err)
		return WriteLocalOnly
	}
	return WriteCommitted
}

// UpsertCategory merge-writes the category document.
func (r *Remote) UpsertCategory(ctx context.Context, cat models.Category) WriteStatus {
	return r.mergeWrite(ctx, "categories", cat.ID, cat)
}

// DeleteCategory removes the category document and cascades to every
// component referencing it, matching the in-memory backing so the two
// never visibly disagree.
func (r *Remote) DeleteCategory(ctx context.Context, id string) WriteStatus {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if _, err := r.db.ExecContext(ctx, `DELETE FROM components WHERE doc->>'categoryId' = $1`, id); err != nil {
		slog.Warn("remote deleteCategory cascade failed, dropping write", "id", id, "error", err)
		return WriteLocalOnly
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id); err != nil {
		slog.Warn("remote deleteCategory failed, dropping write", "id", id, "error", err)
		return WriteLocalOnly
	}
	return WriteCommitted
}

// mergeWrite upserts a document with merge semantics: existing fields
// survive unless the new document sets them (doc || excluded.doc).
func (r *Remote) mergeWrite(ctx context.Context, table, id string, doc any) WriteStatus {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	raw, err := json.Marshal(doc)
	if err != nil {
		slog.Warn("remote upsert marshal failed, dropping write", "collection", table, "id", id, "error", err)
		return WriteLocalOnly
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO `+table+` (id, doc, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (id) DO UPDATE
		SET doc = `+table+`.doc || EXCLUDED.doc, updated_at = NOW()
	`, id, raw)
	if err != nil {
		slog.Warn("remote upsert failed, dropping write", "collection", table, "id", id, "error", err)
		return WriteLocalOnly
	}
	return WriteCommitted
}
