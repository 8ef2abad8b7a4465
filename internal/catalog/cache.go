// Package catalog provides a read-through cache over the exercise
// catalog repository. The catalog is immutable reference data, so the
// cache has no invalidation hook: entries simply expire after the
// configured TTL and are re-read from storage on the next access.
package catalog

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"fitai/workout-planner/internal/domain"
	"fitai/workout-planner/internal/repository"

	"github.com/coocood/freecache"
)

const (
	listKey = "catalog::all"
	// freecache rejects any entry larger than 1/1024 of the cache size,
	// and the marshalled full-catalog list is the biggest entry we
	// store. 16 MB keeps that per-entry ceiling at 16 KB, far above a
	// catalog of a few hundred entries.
	cacheSizeBytes = 16 * 1024 * 1024
)

// Cache decorates a CatalogRepository with freecache. It implements
// repository.CatalogRepository itself, so callers cannot tell it apart
// from the raw repository.
type Cache struct {
	repo  repository.CatalogRepository
	cache *freecache.Cache
	ttl   int // seconds
}

// NewCache wraps repo with a read-through cache whose entries expire
// after ttl.
func NewCache(repo repository.CatalogRepository, ttl time.Duration) *Cache {
	return &Cache{
		repo:  repo,
		cache: freecache.NewCache(cacheSizeBytes),
		ttl:   int(ttl.Seconds()),
	}
}

func (c *Cache) ListAll(ctx context.Context) ([]domain.ExerciseCatalogEntry, error) {
	if cached, err := c.cache.Get([]byte(listKey)); err == nil {
		var entries []domain.ExerciseCatalogEntry
		if err := json.Unmarshal(cached, &entries); err == nil {
			return entries, nil
		}
		// Undecodable cache payload: fall through to storage.
	}

	entries, err := c.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if payload, err := json.Marshal(entries); err == nil {
		_ = c.cache.Set([]byte(listKey), payload, c.ttl)
	}
	return entries, nil
}

// Find caches positive lookups only; a miss always goes to storage so a
// freshly seeded entry is visible immediately.
func (c *Cache) Find(ctx context.Context, name, equipment string) (*domain.ExerciseCatalogEntry, error) {
	key := findKey(name, equipment)
	if cached, err := c.cache.Get(key); err == nil {
		var entry domain.ExerciseCatalogEntry
		if err := json.Unmarshal(cached, &entry); err == nil {
			return &entry, nil
		}
	}

	entry, err := c.repo.Find(ctx, name, equipment)
	if err != nil {
		return nil, err
	}
	if payload, err := json.Marshal(entry); err == nil {
		_ = c.cache.Set(key, payload, c.ttl)
	}
	return entry, nil
}

func findKey(name, equipment string) []byte {
	return []byte("catalog::" + strings.ToLower(name) + "::" + strings.ToLower(equipment))
}
