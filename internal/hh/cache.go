package hh

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// detailCache is a 2-tier cache for vacancy details: L1 in-memory, L2 Redis.
// L1 is lost on restart; L2 survives it. Either tier may be absent — the
// cache degrades, it never fails a lookup.
type detailCache struct {
	l1  sync.Map // vacancy id → *detailEntry
	rdb *redis.Client
	ttl time.Duration
}

type detailEntry struct {
	detail    *VacancyDetail
	expiresAt time.Time
}

func newDetailCache(redisURL string, ttl time.Duration) *detailCache {
	c := &detailCache{ttl: ttl}

	if redisURL != "" {
		opts, err := redis.ParseURL(redisURL)
		if err != nil {
			slog.Warn("detail cache: invalid redis URL, L2 disabled", slog.Any("error", err))
			return c
		}
		rdb := redis.NewClient(opts)
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := rdb.Ping(ctx).Err(); err != nil {
			slog.Warn("detail cache: redis unreachable, L2 disabled", slog.Any("error", err))
		} else {
			c.rdb = rdb
			slog.Info("detail cache: redis L2 enabled")
		}
	}
	return c
}

func (c *detailCache) key(id string) string { return "hh:detail:" + id }

func (c *detailCache) get(ctx context.Context, id string) (*VacancyDetail, bool) {
	if v, ok := c.l1.Load(id); ok {
		entry := v.(*detailEntry)
		if time.Now().Before(entry.expiresAt) {
			return entry.detail, true
		}
		c.l1.Delete(id)
	}

	if c.rdb == nil {
		return nil, false
	}
	data, err := c.rdb.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		return nil, false
	}
	var d VacancyDetail
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, false
	}
	c.l1.Store(id, &detailEntry{detail: &d, expiresAt: time.Now().Add(c.ttl)})
	return &d, true
}

func (c *detailCache) set(ctx context.Context, id string, d *VacancyDetail) {
	c.l1.Store(id, &detailEntry{detail: d, expiresAt: time.Now().Add(c.ttl)})

	if c.rdb == nil {
		return
	}
	data, err := json.Marshal(d)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, c.key(id), data, c.ttl).Err(); err != nil {
		slog.Debug("detail cache: redis set failed", slog.Any("error", err))
	}
}
