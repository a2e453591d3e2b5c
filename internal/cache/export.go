// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// export.go provides a Valkey-backed cache for built export artifacts.
// Downloading a component assembles a full standalone HTML document;
// since assembly is deterministic for a given component revision, the
// result is cached keyed by id and updatedAt until the component changes.
package cache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// exportKeyPrefix namespaces artifact keys in Valkey.
	exportKeyPrefix = "export:"

	// DefaultExportTTL is how long a built artifact stays cached.
	DefaultExportTTL = 30 * time.Minute
)

// ExportCache caches standalone export documents in Valkey. A nil
// *ExportCache is valid and behaves as a permanent miss, so callers
// never branch on whether Valkey is configured.
type ExportCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewExportCache creates an artifact cache backed by the given client.
func NewExportCache(client *redis.Client, ttl time.Duration) *ExportCache {
	if ttl == 0 {
		ttl = DefaultExportTTL
	}
	return &ExportCache{client: client, ttl: ttl}
}

// Key builds the cache key for one component revision. The updatedAt
// stamp makes stale entries unreachable after an edit even before their
// TTL expires.
func Key(componentID string, updatedAt int64) string {
	return fmt.Sprintf("%s:%d", componentID, updatedAt)
}

// Get retrieves a cached artifact. Returns (nil, false) on miss.
func (ec *ExportCache) Get(ctx context.Context, key string) ([]byte, bool) {
	if ec == nil || ec.client == nil {
		return nil, false
	}
	val, err := ec.client.Get(ctx, exportKeyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("export cache get error", "key", key, "error", err)
		return nil, false
	}
	slog.Debug("export cache hit", "key", key)
	return val, true
}

// Set stores a built artifact with the configured TTL.
func (ec *ExportCache) Set(ctx context.Context, key string, doc []byte) {
	if ec == nil || ec.client == nil {
		return
	}
	if err := ec.client.Set(ctx, exportKeyPrefix+key, doc, ec.ttl).Err(); err != nil {
		slog.Warn("export cache set error", "key", key, "error", err)
	}
}

// InvalidateComponent removes every cached revision of one component.
// Called after upsert and delete.
func (ec *ExportCache) InvalidateComponent(ctx context.Context, componentID string) {
	if ec == nil || ec.client == nil {
		return
	}
	var cursor uint64
	for {
		keys, nextCursor, err := ec.client.Scan(ctx, cursor, exportKeyPrefix+componentID+":*", 100).Result()
		if err != nil {
			slog.Warn("export cache scan error", "error", err)
			return
		}
		if len(keys) > 0 {
			if err := ec.client.Del(ctx, keys...).Err(); err != nil {
				slog.Warn("export cache delete error", "error", err)
			}
		}
		cursor = nextCursor
		if cursor == 0 {
			return
		}
	}
}
