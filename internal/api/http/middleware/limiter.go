package middleware

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	fiberredis "github.com/gofiber/storage/redis/v3"
	"github.com/redis/go-redis/v9"

	"github.com/rd1855/portfolio_backend/config"
)

// NewLimiter returns a sliding-window limiter keyed by client IP. Counters
// live in Redis when a client is available so every instance shares them,
// and in process memory otherwise.
func NewLimiter(cfg config.RateLimitConfig, rdb *redis.Client) fiber.Handler {
	limit := cfg.Max
	if limit <= 0 {
		limit = 60
	}
	exp := time.Duration(cfg.ExpirationSeconds) * time.Second
	if exp <= 0 {
		exp = time.Minute
	}

	lc := limiter.Config{
		Max:               limit,
		Expiration:        exp,
		LimiterMiddleware: limiter.SlidingWindow{},
		LimitReached: func(c fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"success": false,
				"error":   "Too many requests",
			})
		},
	}
	if rdb != nil {
		lc.Storage = fiberredis.NewFromConnection(rdb)
	}
	return limiter.New(lc)
}
