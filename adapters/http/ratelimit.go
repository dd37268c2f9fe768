package uuidhttp

import (
	"log"
	"net/http"
	"strings"
)

// RateLimiter is a minimal interface used by the service.
type RateLimiter interface {
	AllowNamed(bucket string, key string) (bool, error)
}

// allow applies a per-client-IP limit using the provided bucket name.
// It fails open on limiter error and when the client IP is unknown.
func (s *Service) allow(r *http.Request, bucket string) bool {
	if s == nil || s.rl == nil {
		return true
	}
	ipFn := s.clientIP
	if ipFn == nil {
		ipFn = DefaultClientIP()
	}
	ip := ipFn(r)
	if strings.TrimSpace(ip) == "" {
		return true
	}
	key := "uuidkit:" + bucket + ":ip:" + ip
	ok, err := s.rl.AllowNamed(bucket, key)
	if err != nil {
		log.Printf("[uuidkit/http] rate limiter error bucket=%s: %v (allowing)", bucket, err)
		return true
	}
	return ok
}
