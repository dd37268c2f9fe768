package uuidhttp

import (
	"github.com/PaulFidika/uuidkit/deterministic"
	memorylimiter "github.com/PaulFidika/uuidkit/ratelimit/memory"
	redislimiter "github.com/PaulFidika/uuidkit/ratelimit/redis"
	"github.com/PaulFidika/uuidkit/registry"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// DefaultMaxBatch caps the number of names accepted by the batch endpoint.
const DefaultMaxBatch = 1000

// Service serves deterministic identifiers over net/http.
type Service struct {
	reg              *registry.Registry
	defaultNamespace string
	defaultVersion   uuid.Version
	maxBatch         int
	rl               RateLimiter
	clientIP         ClientIPFunc
}

// NewService returns a Service resolving namespaces through reg (the predefined
// namespaces when reg is nil), rate limited in memory by DefaultRateLimits.
func NewService(reg *registry.Registry) *Service {
	if reg == nil {
		reg = registry.Default()
	}
	return &Service{
		reg:              reg,
		defaultNamespace: "events",
		defaultVersion:   deterministic.SHA1,
		maxBatch:         DefaultMaxBatch,
		rl:               memorylimiter.New(ToMemoryLimits(DefaultRateLimits())),
		clientIP:         DefaultClientIP(),
	}
}

// WithRedis switches rate limiting to a Redis-backed limiter shared by all instances.
func (s *Service) WithRedis(rd *redis.Client) *Service {
	if rd != nil {
		s.rl = redislimiter.New(rd, ToRedisLimits(DefaultRateLimits())).WithPrefix("uuidkit:rl:")
	}
	return s
}

// WithRateLimiter replaces the rate limiter; nil disables limiting.
func (s *Service) WithRateLimiter(rl RateLimiter) *Service { s.rl = rl; return s }

// DisableRateLimiter turns rate limiting off.
func (s *Service) DisableRateLimiter() *Service { s.rl = nil; return s }

// WithClientIPFunc sets how requests map to rate limit keys; nil restores DefaultClientIP.
func (s *Service) WithClientIPFunc(fn ClientIPFunc) *Service {
	if fn == nil {
		s.clientIP = DefaultClientIP()
		return s
	}
	s.clientIP = fn
	return s
}

// WithDefaults sets the namespace (name or UUID) and version used when a request omits them.
func (s *Service) WithDefaults(namespace string, version uuid.Version) *Service {
	if namespace != "" {
		s.defaultNamespace = namespace
	}
	if version != 0 {
		s.defaultVersion = version
	}
	return s
}

// WithMaxBatch caps the names accepted per batch request. Values <= 0 are ignored.
func (s *Service) WithMaxBatch(n int) *Service {
	if n > 0 {
		s.maxBatch = n
	}
	return s
}

// Registry returns the namespaces the service resolves against.
func (s *Service) Registry() *registry.Registry { return s.reg }
