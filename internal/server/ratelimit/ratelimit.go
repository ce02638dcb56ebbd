// Package ratelimit provides per-client rate limiting using a token bucket.
package ratelimit

import (
	"sync"
	"time"
)

// tokenBucket allows a burst of requests and refills at a steady rate.
type tokenBucket struct {
	mu         sync.Mutex
	capacity   int
	refillRate float64 // tokens per second
	tokens     float64
	lastRefill time.Time
	lastSeen   time.Time
}

func newTokenBucket(capacity int, refillRate float64) *tokenBucket {
	now := time.Now()
	return &tokenBucket{
		capacity:   capacity,
		refillRate: refillRate,
		tokens:     float64(capacity),
		lastRefill: now,
		lastSeen:   now,
	}
}

// refill adds tokens for the time elapsed since the last refill, capped at
// capacity. Callers must hold the lock.
func (tb *tokenBucket) refill(now time.Time) {
	elapsed := now.Sub(tb.lastRefill)
	tb.tokens = min(float64(tb.capacity), tb.tokens+elapsed.Seconds()*tb.refillRate)
	tb.lastRefill = now
}

// allow consumes a token if one is available and reports the bucket state.
func (tb *tokenBucket) allow() (bool, int, time.Time) {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	tb.refill(now)
	tb.lastSeen = now

	allowed := tb.tokens >= 1.0
	if allowed {
		tb.tokens -= 1.0
	}

	resetTime := now
	if tb.tokens < float64(tb.capacity) {
		secondsUntilFull := (float64(tb.capacity) - tb.tokens) / tb.refillRate
		resetTime = now.Add(time.Duration(secondsUntilFull * float64(time.Second)))
	}
	return allowed, int(tb.tokens), resetTime
}

// Info describes the rate limit state returned with each decision.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Limiter tracks a token bucket per client.
type Limiter struct {
	config  *Config
	mu      sync.Mutex
	buckets map[string]*tokenBucket
	stop    chan struct{}
	stopped sync.Once
}

// NewLimiter creates a limiter and starts its idle-bucket cleanup loop.
func NewLimiter(config *Config) *Limiter {
	l := &Limiter{
		config:  config,
		buckets: make(map[string]*tokenBucket),
		stop:    make(chan struct{}),
	}
	if config.Enabled {
		go l.cleanupLoop()
	}
	return l
}

// Allow checks whether a request from clientID may proceed.
func (l *Limiter) Allow(clientID string) (bool, Info) {
	if !l.config.Enabled {
		return true, Info{Allowed: true}
	}

	l.mu.Lock()
	bucket, ok := l.buckets[clientID]
	if !ok {
		refillRate := float64(l.config.Limit) / l.config.Window.Seconds()
		bucket = newTokenBucket(l.config.Burst, refillRate)
		l.buckets[clientID] = bucket
	}
	l.mu.Unlock()

	allowed, remaining, resetTime := bucket.allow()
	info := Info{
		Allowed:   allowed,
		Limit:     l.config.Limit,
		Remaining: remaining,
		ResetTime: resetTime,
	}
	if !allowed {
		info.RetryAfter = time.Until(resetTime)
	}
	return allowed, info
}

// Stop terminates the cleanup loop.
func (l *Limiter) Stop() {
	l.stopped.Do(func() { close(l.stop) })
}

// cleanupLoop drops buckets for clients not seen within the cleanup interval.
func (l *Limiter) cleanupLoop() {
	ticker := time.NewTicker(l.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-l.stop:
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-l.config.CleanupInterval)
			l.mu.Lock()
			for id, bucket := range l.buckets {
				bucket.mu.Lock()
				idle := bucket.lastSeen.Before(cutoff)
				bucket.mu.Unlock()
				if idle {
					delete(l.buckets, id)
				}
			}
			l.mu.Unlock()
		}
	}
}
