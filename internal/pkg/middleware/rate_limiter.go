package middleware

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/Kael08/JOB-PORTAL/internal/pkg/constants"
	"github.com/Kael08/JOB-PORTAL/internal/pkg/logger"
	"github.com/Kael08/JOB-PORTAL/internal/utils"
	"github.com/labstack/echo/v4"
)

// WindowCounter counts hits in a fixed window keyed by an arbitrary string
type WindowCounter interface {
	IncrWindow(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error)
}

// RateLimiterConfig contains configuration for the rate limiter
type RateLimiterConfig struct {
	Counter WindowCounter
	Key     string        // Key prefix for Redis
	Limit   int           // Maximum number of requests
	Period  time.Duration // Time period for the limit
}

// RateLimiterMiddleware creates a middleware for rate limiting backed by Redis.
// Counter failures let the request through.
func RateLimiterMiddleware(config RateLimiterConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identifier := c.RealIP()
			if accountID, ok := AccountIDFromContext(c); ok {
				identifier = accountID
			}

			key := fmt.Sprintf("%s:%s:%s", config.Key, c.Path(), identifier)

			ctx, cancel := context.WithTimeout(c.Request().Context(), time.Second)
			defer cancel()

			count, ttl, err := config.Counter.IncrWindow(ctx, key, config.Period)
			if err != nil {
				logger.Warn("Rate limiter unavailable, allowing request",
					logger.String("key", key),
					logger.Err(err))
				return next(c)
			}

			header := c.Response().Header()
			header.Set("X-RateLimit-Limit", strconv.Itoa(config.Limit))

			if count > int64(config.Limit) {
				header.Set("X-RateLimit-Remaining", "0")
				header.Set("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(ttl).Unix(), 10))
				header.Set("Retry-After", strconv.FormatInt(int64(ttl.Seconds()), 10))
				return utils.TooManyRequestsResponse(c, "Rate limit exceeded")
			}

			header.Set("X-RateLimit-Remaining", strconv.FormatInt(int64(config.Limit)-count, 10))
			return next(c)
		}
	}
}

// IPRateLimiter creates a simple IP-based rate limiter
func IPRateLimiter(limit int, period time.Duration, counter WindowCounter) echo.MiddlewareFunc {
	return RateLimiterMiddleware(RateLimiterConfig{
		Counter: counter,
		Key:     constants.KeyRateLimitIP,
		Limit:   limit,
		Period:  period,
	})
}
