package redislimiter

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Limit allows Limit hits per Window for each key.
type Limit struct {
	Limit  int
	Window time.Duration
}

// Limiter is a fixed-window rate limiter shared across processes through Redis.
type Limiter struct {
	rdb     *redis.Client
	limits  map[string]Limit
	prefix  string
	timeout time.Duration
}

func New(rdb *redis.Client, limits map[string]Limit) *Limiter {
	cp := make(map[string]Limit, len(limits))
	for k, v := range limits {
		cp[k] = v
	}
	return &Limiter{rdb: rdb, limits: cp, prefix: "rl:", timeout: 250 * time.Millisecond}
}

// WithPrefix namespaces the Redis keys used by the limiter.
func (l *Limiter) WithPrefix(prefix string) *Limiter { l.prefix = prefix; return l }

// AllowNamed records a hit for key under bucket's limit. Buckets without a configured
// limit use "default"; if that is missing too, every hit is allowed.
func (l *Limiter) AllowNamed(bucket string, key string) (bool, error) {
	lim, ok := l.limits[bucket]
	if !ok {
		lim, ok = l.limits["default"]
	}
	if !ok || lim.Limit <= 0 || lim.Window <= 0 {
		return true, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), l.timeout)
	defer cancel()

	k := l.prefix + key
	// SET NX opens the window with its TTL and INCR keeps that TTL, so a counter can
	// never exist without an expiry.
	var incr *redis.IntCmd
	if _, err := l.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.SetNX(ctx, k, 0, lim.Window)
		incr = pipe.Incr(ctx, k)
		return nil
	}); err != nil {
		return false, err
	}
	n := incr.Val()
	if n <= int64(lim.Limit) {
		return true, nil
	}
	// A counter without a TTL would deny forever.
	if ttl, err := l.rdb.PTTL(ctx, k).Result(); err == nil && ttl == -1 {
		if err := l.rdb.PExpire(ctx, k, lim.Window).Err(); err != nil {
			return false, err
		}
	}
	return false, nil
}
