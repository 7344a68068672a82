// Package ratelimit throttles registration submissions per caller. The
// limiter protects the transactional coordinator from a misbehaving kiosk or
// script hammering the submit endpoint.
package ratelimit

import (
	"context"
	"time"
)

// Config bounds submissions per key over sliding windows. A zero limit
// disables that window.
type Config struct {
	PerMinute int
	PerHour   int
}

// DefaultSubmitConfig is the limit applied to the submit endpoint.
// Front-desk traffic is human-paced; anything past this is a runaway client.
var DefaultSubmitConfig = Config{
	PerMinute: 12,
	PerHour:   120,
}

// Limiter answers whether a keyed caller may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string, cfg Config) (bool, error)
	Remaining(ctx context.Context, key string, window time.Duration) (int64, error)
	Reset(ctx context.Context, key string) error
}
