package cooldown

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Interaction pacing for pet/hit calls. This is caller-side policy:
// the engine itself stays correct at any call rate.
const (
	MinSpacing     = 1 * time.Second
	WindowDuration = 3 * time.Second
	WindowLimit    = 5
)

// Decision is the outcome of a limiter check.
type Decision struct {
	Allowed    bool
	RetryAfter time.Duration
}

type Limiter interface {
	// Check records one interaction attempt for the user and reports
	// whether it may proceed.
	Check(ctx context.Context, userID string) (Decision, error)
}

/*
REDIS LIMITER
*/

type RedisLimiter struct {
	rdb *redis.Client
}

func NewRedisLimiter(rdb *redis.Client) Limiter {
	return &RedisLimiter{rdb: rdb}
}

func spacingKey(userID string) string {
	return "petengine:interact:space:" + userID
}

func windowKey(userID string) string {
	return "petengine:interact:win:" + userID
}

func (l *RedisLimiter) Check(ctx context.Context, userID string) (Decision, error) {
	// Minimum spacing between consecutive interactions.
	ok, err := l.rdb.SetNX(ctx, spacingKey(userID), 1, MinSpacing).Result()
	if err != nil {
		return Decision{}, err
	}
	if !ok {
		ttl, err := l.rdb.TTL(ctx, spacingKey(userID)).Result()
		if err != nil {
			return Decision{}, err
		}
		return Decision{RetryAfter: ttl}, nil
	}

	// Rolling window counter.
	count, err := l.rdb.Incr(ctx, windowKey(userID)).Result()
	if err != nil {
		return Decision{}, err
	}
	if count == 1 {
		if err := l.rdb.Expire(ctx, windowKey(userID), WindowDuration).Err(); err != nil {
			return Decision{}, err
		}
	}
	if count > WindowLimit {
		ttl, err := l.rdb.TTL(ctx, windowKey(userID)).Result()
		if err != nil {
			return Decision{}, err
		}
		return Decision{RetryAfter: ttl}, nil
	}

	return Decision{Allowed: true}, nil
}

/*
NO-OP LIMITER
*/

// allowAll is used when redis is not configured.
type allowAll struct{}

func NewAllowAll() Limiter {
	return allowAll{}
}

func (allowAll) Check(ctx context.Context, userID string) (Decision, error) {
	return Decision{Allowed: true}, nil
}

// FormatRetryAfter renders a wait duration for user-facing messages.
func FormatRetryAfter(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d.Round(time.Second).Seconds())
	if secs < 1 {
		secs = 1
	}
	return fmt.Sprintf("%d s", secs)
}
