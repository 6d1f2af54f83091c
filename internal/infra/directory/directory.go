// Package directory serves host box-ownership lookups, fronting the
// lock-controller backend with a short-TTL Redis cache. The cache is an
// optimization only: any cache fault falls through to the backend, which
// stays the authority.
package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"smartbox-gateway/internal/domain/box"
	"smartbox-gateway/internal/usecase"

	"github.com/redis/go-redis/v9"
)

type CachedDirectory struct {
	inner  usecase.BoxDirectory
	rdb    *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedDirectory wraps inner with a Redis read-through cache. rdb may be
// nil, in which case every lookup goes straight to the backend.
func NewCachedDirectory(inner usecase.BoxDirectory, rdb *redis.Client, ttl time.Duration, logger *slog.Logger) *CachedDirectory {
	return &CachedDirectory{
		inner:  inner,
		rdb:    rdb,
		ttl:    ttl,
		logger: logger,
	}
}

func (d *CachedDirectory) HostBoxes(ctx context.Context, hostID box.HostID) ([]box.ID, error) {
	key := cacheKey(hostID)

	if d.rdb != nil {
		cached, err := d.rdb.Get(ctx, key).Result()
		if err == nil {
			var ids []box.ID
			if jsonErr := json.Unmarshal([]byte(cached), &ids); jsonErr == nil {
				return ids, nil
			}
			// Poisoned entry; drop it and fall through.
			d.rdb.Del(ctx, key)
		} else if err != redis.Nil {
			d.logger.Warn("ownership cache read failed", "error", err, "host_id", hostID.Int64())
		}
	}

	ids, err := d.inner.HostBoxes(ctx, hostID)
	if err != nil {
		return nil, err
	}

	if d.rdb != nil {
		if payload, jsonErr := json.Marshal(ids); jsonErr == nil {
			if setErr := d.rdb.Set(ctx, key, payload, d.ttl).Err(); setErr != nil {
				d.logger.Warn("ownership cache write failed", "error", setErr, "host_id", hostID.Int64())
			}
		}
	}
	return ids, nil
}

func cacheKey(hostID box.HostID) string {
	return fmt.Sprintf("ownership:host:%d", hostID.Int64())
}
