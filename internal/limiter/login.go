package limiter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
)

// LoginLimiter throttles failed login attempts per identifier using a redis
// counter with a sliding expiry window.
type LoginLimiter struct {
	rdb    *redis.Client
	max    int
	window time.Duration
}

func NewLoginLimiter(rdb *redis.Client, max int, window time.Duration) *LoginLimiter {
	return &LoginLimiter{rdb: rdb, max: max, window: window}
}

func (l *LoginLimiter) key(identifier string) string {
	return fmt.Sprintf("login_attempts:%s", strings.ToLower(identifier))
}

// Blocked reports whether the identifier has exhausted its attempts. Redis
// being down fails open: login availability wins over throttling.
func (l *LoginLimiter) Blocked(ctx context.Context, identifier string) bool {
	if l == nil || l.rdb == nil {
		return false
	}
	count, err := l.rdb.Get(ctx, l.key(identifier)).Int()
	if err != nil {
		return false
	}
	return count >= l.max
}

// RecordFailure bumps the attempt counter and refreshes its expiry.
func (l *LoginLimiter) RecordFailure(ctx context.Context, identifier string) {
	if l == nil || l.rdb == nil {
		return
	}
	key := l.key(identifier)
	if err := l.rdb.Incr(ctx, key).Err(); err != nil {
		return
	}
	l.rdb.Expire(ctx, key, l.window)
}

// Reset clears the counter after a successful login.
func (l *LoginLimiter) Reset(ctx context.Context, identifier string) {
	if l == nil || l.rdb == nil {
		return
	}
	l.rdb.Del(ctx, l.key(identifier))
}
