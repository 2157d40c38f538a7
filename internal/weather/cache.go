package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Sahil-at-Work/TripSmart/internal/domain"
)

// CachedSource memoizes another Source in Redis. Coordinates are rounded to
// two decimals (about 1 km) so nearby lookups share an entry.
// Redis failures are logged and bypassed; they never fail a lookup.
type CachedSource struct {
	next Source
	rdb  redis.Cmdable
	ttl  time.Duration
	log  *slog.Logger
}

// NewCachedSource wraps next with a Redis cache whose entries live for ttl.
func NewCachedSource(next Source, rdb redis.Cmdable, ttl time.Duration, log *slog.Logger) *CachedSource {
	return &CachedSource{next: next, rdb: rdb, ttl: ttl, log: log}
}

// Current implements Source.
func (c *CachedSource) Current(ctx context.Context, at domain.Coordinates) (domain.Observation, error) {
	return cached(ctx, c, cacheKey("current", at), func() (domain.Observation, error) {
		return c.next.Current(ctx, at)
	})
}

// Forecast implements Source.
func (c *CachedSource) Forecast(ctx context.Context, at domain.Coordinates) ([]domain.ForecastPoint, error) {
	return cached(ctx, c, cacheKey("forecast", at), func() ([]domain.ForecastPoint, error) {
		return c.next.Forecast(ctx, at)
	})
}

func cacheKey(kind string, at domain.Coordinates) string {
	return fmt.Sprintf("weather:%s:%.2f:%.2f", kind, keyCoord(at.Lat), keyCoord(at.Lon))
}

// keyCoord rounds to two decimals and folds -0 into 0 so points either
// side of the equator or meridian share a key.
func keyCoord(x float64) float64 {
	r := math.Round(x*100) / 100
	if r == 0 {
		return 0
	}
	return r
}

func cached[T any](ctx context.Context, c *CachedSource, key string, load func() (T, error)) (T, error) {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var v T
		if jerr := json.Unmarshal(raw, &v); jerr == nil {
			return v, nil
		}
		c.log.WarnContext(ctx, "weather cache entry unreadable", "key", key)
	case !errors.Is(err, redis.Nil):
		c.log.WarnContext(ctx, "weather cache read failed", "key", key, "error", err)
	}

	v, err := load()
	if err != nil {
		return v, err
	}

	b, err := json.Marshal(v)
	if err == nil {
		err = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}
	if err != nil {
		c.log.WarnContext(ctx, "weather cache write failed", "key", key, "error", err)
	}
	return v, nil
}
