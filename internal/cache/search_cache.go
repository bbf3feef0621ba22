// Package cache provides a two-tier read-through cache for property search
// results: a small in-process tier in front of a shared redis tier.
// Invalidation bumps an epoch counter, making every existing key unreachable;
// stale entries age out by TTL.
package cache

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/karlseguin/ccache/v3"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/dpletzke/LightBnB/internal/consts"
	"github.com/dpletzke/LightBnB/internal/logging"
	"github.com/dpletzke/LightBnB/internal/model"
)

// Config controls the search cache. TTLs are duration strings such as "1m";
// unparsable or empty values fall back to defaults. With no redis addresses
// the cache runs local-only, which is mainly useful for single-instance
// deployments and tests.
type Config struct {
	Enabled      bool        `yaml:"enabled"`
	LocalTTL     string      `yaml:"local_ttl"`
	LocalMaxSize int64       `yaml:"local_max_size"`
	RedisTTL     string      `yaml:"redis_ttl"`
	Redis        RedisConfig `yaml:"redis"`
}

type RedisConfig struct {
	Addresses    []string `yaml:"addresses"`
	DB           int      `yaml:"db"`
	Username     string   `yaml:"username"`
	Password     string   `yaml:"password"`
	PoolSize     int      `yaml:"pool_size"`
	MinIdleConns int      `yaml:"min_idle_conns"`
	DialTimeout  string   `yaml:"dial_timeout"`
	ReadTimeout  string   `yaml:"read_timeout"`
	WriteTimeout string   `yaml:"write_timeout"`
}

func parseTTL(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

// SearchCache is safe for concurrent use. A nil *SearchCache is a valid
// disabled cache: Get always misses and Set/Invalidate are no-ops.
type SearchCache struct {
	localTTL time.Duration
	redisTTL time.Duration
	local    *ccache.Cache[[]*model.Property]
	rdb      redis.UniversalClient
	epoch    atomic.Int64
}

// New builds the cache. Returns (nil, nil) when cfg.Enabled is false. A
// configured but unreachable redis fails construction.
func New(cfg Config) (*SearchCache, error) {
	if !cfg.Enabled {
		return nil, nil
	}
	if cfg.LocalMaxSize <= 0 {
		cfg.LocalMaxSize = 1000
	}

	c := &SearchCache{
		localTTL: parseTTL(cfg.LocalTTL, time.Minute),
		redisTTL: parseTTL(cfg.RedisTTL, 10*time.Minute),
		local:    ccache.New(ccache.Configure[[]*model.Property]().MaxSize(cfg.LocalMaxSize)),
	}

	if len(cfg.Redis.Addresses) > 0 {
		c.rdb = redis.NewUniversalClient(&redis.UniversalOptions{
			Addrs:        cfg.Redis.Addresses,
			DB:           cfg.Redis.DB,
			Username:     cfg.Redis.Username,
			Password:     cfg.Redis.Password,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
			DialTimeout:  parseTTL(cfg.Redis.DialTimeout, 0),
			ReadTimeout:  parseTTL(cfg.Redis.ReadTimeout, 0),
			WriteTimeout: parseTTL(cfg.Redis.WriteTimeout, 0),
		})
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := c.rdb.Ping(pingCtx).Err(); err != nil {
			_ = c.rdb.Close()
			return nil, fmt.Errorf("redis ping: %w", err)
		}
	}
	return c, nil
}

// Enabled reports whether the cache participates in lookups.
func (c *SearchCache) Enabled() bool { return c != nil }

// Key builds the deterministic cache key for a filter set, limit and epoch.
func Key(f *model.PropertySearchFilters, limit int, epoch int64) string {
	var flt model.PropertySearchFilters
	if f != nil {
		flt = *f
	}
	material := fmt.Sprintf("%s|%d|%g|%g|%g|%d|%d",
		flt.City, flt.OwnerID, flt.MinimumPricePerNight, flt.MaximumPricePerNight,
		flt.MinimumRating, limit, epoch)
	sum := md5.Sum([]byte(material))
	return consts.CacheKeyPrefix + hex.EncodeToString(sum[:])
}

// Get returns the cached rows for the filter set, reporting whether a tier
// had them. Cache errors are logged and count as misses.
func (c *SearchCache) Get(ctx context.Context, f *model.PropertySearchFilters, limit int) ([]*model.Property, bool) {
	if c == nil {
		return nil, false
	}
	key := Key(f, limit, c.currentEpoch(ctx))

	if item := c.local.Get(key); item != nil && !item.Expired() {
		return item.Value(), true
	}

	if c.rdb == nil {
		return nil, false
	}
	raw, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			logging.Warn(ctx, "search cache read failed", zap.Error(err))
		}
		return nil, false
	}
	var rows []*model.Property
	if err := json.Unmarshal([]byte(raw), &rows); err != nil {
		logging.Warn(ctx, "search cache decode failed", zap.Error(err))
		return nil, false
	}
	c.local.Set(key, rows, c.localTTL)
	return rows, true
}

// Set stores rows in both tiers under the current epoch.
func (c *SearchCache) Set(ctx context.Context, f *model.PropertySearchFilters, limit int, rows []*model.Property) {
	if c == nil {
		return
	}
	key := Key(f, limit, c.currentEpoch(ctx))
	c.local.Set(key, rows, c.localTTL)

	if c.rdb == nil {
		return
	}
	raw, err := json.Marshal(rows)
	if err != nil {
		logging.Warn(ctx, "search cache encode failed", zap.Error(err))
		return
	}
	if err := c.rdb.Set(ctx, key, raw, c.redisTTL).Err(); err != nil {
		logging.Warn(ctx, "search cache write failed", zap.Error(err))
	}
}

// Invalidate bumps the epoch and drops the local tier. Entries written under
// older epochs become unreachable everywhere.
func (c *SearchCache) Invalidate(ctx context.Context) error {
	if c == nil {
		return nil
	}
	c.local.DeletePrefix(consts.CacheKeyPrefix)
	if c.rdb != nil {
		if err := c.rdb.Incr(ctx, consts.CacheEpochKey).Err(); err != nil {
			return fmt.Errorf("bump cache epoch: %w", err)
		}
		return nil
	}
	c.epoch.Add(1)
	return nil
}

func (c *SearchCache) currentEpoch(ctx context.Context) int64 {
	if c.rdb == nil {
		return c.epoch.Load()
	}
	v, err := c.rdb.Get(ctx, consts.CacheEpochKey).Int64()
	if err != nil {
		if err != redis.Nil {
			logging.Warn(ctx, "cache epoch read failed", zap.Error(err))
		}
		return 0
	}
	return v
}

// Close releases both tiers.
func (c *SearchCache) Close() error {
	if c == nil {
		return nil
	}
	c.local.Stop()
	if c.rdb != nil {
		return c.rdb.Close()
	}
	return nil
}
