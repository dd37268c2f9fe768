package memorylimiter

import (
	"sync"
	"time"
)

// Limit allows Limit hits per Window for each key.
type Limit struct {
	Limit  int
	Window time.Duration
}

type window struct {
	start time.Time
	dur   time.Duration
	count int
}

// Limiter is a fixed-window rate limiter kept in process memory.
// It is only accurate for single-process deployments.
type Limiter struct {
	mu      sync.Mutex
	limits  map[string]Limit
	windows map[string]window
	now     func() time.Time
}

func New(limits map[string]Limit) *Limiter {
	cp := make(map[string]Limit, len(limits))
	for k, v := range limits {
		cp[k] = v
	}
	return &Limiter{limits: cp, windows: make(map[string]window), now: time.Now}
}

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

	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.now()
	w, ok := l.windows[key]
	if !ok || w.expired(now) {
		w = window{start: now, dur: lim.Window}
		l.sweep(now)
	}
	if w.count >= lim.Limit {
		l.windows[key] = w
		return false, nil
	}
	w.count++
	l.windows[key] = w
	return true, nil
}

func (w window) expired(now time.Time) bool { return now.Sub(w.start) >= w.dur }

// sweep drops windows past their own duration. It only runs when a window rolls over.
func (l *Limiter) sweep(now time.Time) {
	for k, w := range l.windows {
		if w.expired(now) {
			delete(l.windows, k)
		}
	}
}
