package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"wayfare/internal/domain/listing"
	"wayfare/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ListingCache decorates a ListingReadStore with a Redis look-aside cache.
// Listings change rarely relative to how often availability checks read them,
// so a short TTL is enough; cache failures degrade to the underlying store.
type ListingCache struct {
	next queries.ListingReadStore
	rdb  *redis.Client
	ttl  time.Duration
}

func NewListingCache(next queries.ListingReadStore, rdb *redis.Client, ttl time.Duration) *ListingCache {
	return &ListingCache{next: next, rdb: rdb, ttl: ttl}
}

func listingKey(id uuid.UUID) string {
	return "listing:" + id.String()
}

func (c *ListingCache) FindByID(ctx context.Context, id uuid.UUID) (*listing.Snapshot, error) {
	key := listingKey(id)

	data, err := c.rdb.Get(ctx, key).Bytes()
	if err == nil {
		var snap listing.Snapshot
		if err := json.Unmarshal(data, &snap); err == nil {
			return &snap, nil
		}
		// Poisoned entry, drop it and fall through.
		c.rdb.Del(ctx, key)
	} else if !errors.Is(err, redis.Nil) {
		slog.Warn("listing cache read failed", "listing_id", id, "error", err.Error())
	}

	snap, err := c.next.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(snap); err == nil {
		if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
			slog.Warn("listing cache write failed", "listing_id", id, "error", err.Error())
		}
	}
	return snap, nil
}

// Invalidate drops a cached listing, for callers that mutate listings.
func (c *ListingCache) Invalidate(ctx context.Context, id uuid.UUID) error {
	return c.rdb.Del(ctx, listingKey(id)).Err()
}
