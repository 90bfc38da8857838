package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/Kael08/JOB-PORTAL/internal/pkg/constants"
	"github.com/Kael08/JOB-PORTAL/internal/pkg/middleware"
)

// RedisThrottle allows at most limit code requests per phone in each window
type RedisThrottle struct {
	counter middleware.WindowCounter
	limit   int
	window  time.Duration
}

// NewRedisThrottle creates a per-phone throttle
func NewRedisThrottle(counter middleware.WindowCounter, limit int, window time.Duration) *RedisThrottle {
	return &RedisThrottle{
		counter: counter,
		limit:   limit,
		window:  window,
	}
}

// Allow records a request for phone and reports whether it is within budget
func (t *RedisThrottle) Allow(ctx context.Context, phone string) (bool, error) {
	if t.limit <= 0 {
		return true, nil
	}

	count, _, err := t.counter.IncrWindow(ctx, fmt.Sprintf(constants.KeySendCodeThrottle, phone), t.window)
	if err != nil {
		return false, err
	}
	return count <= int64(t.limit), nil
}

// NoopThrottle never limits
type NoopThrottle struct{}

// Allow always permits the request
func (NoopThrottle) Allow(ctx context.Context, phone string) (bool, error) {
	return true, nil
}
