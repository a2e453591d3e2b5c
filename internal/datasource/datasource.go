// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package datasource presents a uniform asynchronous CRUD contract over
// the catalog entities regardless of backing store. Two backings exist:
// a remote PostgreSQL document store and an in-memory store seeded from
// the bundled dataset. Exactly one is active per process lifetime,
// selected once at startup.
//
// Read operations never fail: the remote backing degrades silently to
// the seed dataset on any transport error or empty result. Write
// failures against the remote store are swallowed after one attempt and
// reported through WriteStatus, so the caller's optimistic local update
// always proceeds.
package datasource

import (
	"context"
	"database/sql"
	"log/slog"

	"uikitlab/internal/config"
	"uikitlab/internal/models"
)

// WriteStatus tells the caller where a mutation actually landed.
type WriteStatus int

const (
	// WriteCommitted means the active backing accepted the write.
	WriteCommitted WriteStatus = iota

	// WriteLocalOnly means the remote write failed and was dropped; the
	// caller's in-memory reconciliation is now the only copy. Client and
	// server have diverged, by design — the UI never blocks on a failed
	// remote write.
	WriteLocalOnly
)

// String implements fmt.Stringer for log fields.
func (s WriteStatus) String() string {
	if s == WriteLocalOnly {
		return "local-only"
	}
	return "committed"
}

// DataSource is the capability interface over the two catalog entities.
// Reads return copies the caller may mutate. GetComponentByID returns
// (nil, nil) when the id is absent — not-found is a result, not an error.
type DataSource interface {
	GetCategories(ctx context.Context) ([]models.Category, error)
	GetComponents(ctx context.Context) ([]models.Component, error)
	GetComponentByID(ctx context.Context, id string) (*models.Component, error)

	UpsertComponent(ctx context.Context, item models.Component) WriteStatus
	DeleteComponent(ctx context.Context, id string) WriteStatus

	UpsertCategory(ctx context.Context, cat models.Category) WriteStatus
	DeleteCategory(ctx context.Context, id string) WriteStatus
}

// Select resolves the active backing from configuration: the remote
// document store when the credentials are present and not disabled,
// otherwise the seeded in-memory store. Called exactly once at startup;
// the choice is never switched at runtime.
func Select(cfg *config.Config, db *sql.DB) DataSource {
	if cfg.UseRemote() && db != nil {
		slog.Info("data source selected", "backing", "remote", "db", cfg.DBName)
		return NewRemote(db)
	}
	slog.Info("data source selected", "backing", "memory")
	return NewMemory()
}
