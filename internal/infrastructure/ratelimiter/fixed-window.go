package ratelimiter

import (
	"sync"
	"time"
)

// FixedWindowRateLimiter counts requests per client within fixed-length
// windows anchored at the client's first request. Counters for clients whose
// window has passed are dropped by a background cleanup ticker.
type FixedWindowRateLimiter struct {
	counts      map[string]*window
	limit       int
	windowSize  time.Duration
	mu          sync.Mutex
	cleanupTick *time.Ticker
	done        chan struct{}
}

type window struct {
	count   int
	resetAt time.Time
}

func NewFixedWindowRateLimiter(limit int, windowSize time.Duration) *FixedWindowRateLimiter {
	rl := &FixedWindowRateLimiter{
		counts:      make(map[string]*window),
		limit:       limit,
		windowSize:  windowSize,
		cleanupTick: time.NewTicker(windowSize),
		done:        make(chan struct{}),
	}
	go rl.startCleanup()
	return rl
}

// Allow reports whether the client may proceed. When denied, the second
// return value is how long until the current window resets.
func (rl *FixedWindowRateLimiter) Allow(ip string) (bool, time.Duration) {
	now := time.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	w, ok := rl.counts[ip]
	if !ok || !now.Before(w.resetAt) {
		rl.counts[ip] = &window{count: 1, resetAt: now.Add(rl.windowSize)}
		return true, 0
	}

	if w.count >= rl.limit {
		return false, time.Until(w.resetAt)
	}
	w.count++
	return true, 0
}

func (rl *FixedWindowRateLimiter) startCleanup() {
	for {
		select {
		case <-rl.cleanupTick.C:
			rl.cleanup()
		case <-rl.done:
			return
		}
	}
}

func (rl *FixedWindowRateLimiter) cleanup() {
	now := time.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	for ip, w := range rl.counts {
		if now.After(w.resetAt) {
			delete(rl.counts, ip)
		}
	}
}

func (rl *FixedWindowRateLimiter) Close() {
	close(rl.done)
	rl.cleanupTick.Stop()
}
