package uuidhttp

import (
	"time"

	memorylimiter "github.com/PaulFidika/uuidkit/ratelimit/memory"
	redislimiter "github.com/PaulFidika/uuidkit/ratelimit/redis"
)

// Rate limit bucket names.
const (
	RLUUID       = "uuid"
	RLUUIDBatch  = "uuid_batch"
	RLNamespaces = "namespaces"
)

// Limit configures a named rate limit bucket.
type Limit struct {
	Limit  int
	Window time.Duration
}

// DefaultRateLimits returns the built-in per-endpoint rate limits, enforced per client
// IP (as determined by the Service's ClientIPFunc).
func DefaultRateLimits() map[string]Limit {
	return map[string]Limit{
		"default":    {Limit: 600, Window: time.Minute},
		RLUUID:       {Limit: 1200, Window: time.Minute},
		RLUUIDBatch:  {Limit: 60, Window: time.Minute},
		RLNamespaces: {Limit: 120, Window: time.Minute},
	}
}

func ToMemoryLimits(in map[string]Limit) map[string]memorylimiter.Limit {
	out := make(map[string]memorylimiter.Limit, len(in))
	for k, v := range in {
		out[k] = memorylimiter.Limit{Limit: v.Limit, Window: v.Window}
	}
	return out
}

func ToRedisLimits(in map[string]Limit) map[string]redislimiter.Limit {
	out := make(map[string]redislimiter.Limit, len(in))
	for k, v := range in {
		out[k] = redislimiter.Limit{Limit: v.Limit, Window: v.Window}
	}
	return out
}
