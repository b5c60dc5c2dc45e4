package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/adityarizki/amora/pkg/jwt"
	"github.com/labstack/echo"
	"golang.org/x/time/rate"
)

// RateLimiter keeps one token bucket per authenticated user. Stale buckets
// are evicted so the map cannot grow without bound.
type RateLimiter struct {
	mutex    sync.Mutex
	limiters map[uint]*limiterEntry
	rate     rate.Limit
	burst    int
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewRateLimiter(r rate.Limit, burst int) *RateLimiter {
	rl := &RateLimiter{
		limiters: make(map[uint]*limiterEntry),
		rate:     r,
		burst:    burst,
	}
	go rl.cleanupLoop()
	return rl
}

func (rl *RateLimiter) getLimiter(userID uint) *rate.Limiter {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	entry, exists := rl.limiters[userID]
	if !exists {
		entry = &limiterEntry{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.limiters[userID] = entry
	}
	entry.lastSeen = time.Now()

	return entry.limiter
}

func (rl *RateLimiter) cleanupLoop() {
	for range time.Tick(10 * time.Minute) {
		rl.mutex.Lock()
		for id, entry := range rl.limiters {
			if time.Since(entry.lastSeen) > 30*time.Minute {
				delete(rl.limiters, id)
			}
		}
		rl.mutex.Unlock()
	}
}

// Middleware rejects the request with 429 when the caller's bucket is empty.
// Runs after JWTMiddleware, which guarantees the claims value.
func (rl *RateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get("claims").(*jwt.Claims)
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]string{"message": "missing token"})
			}

			if !rl.getLimiter(claims.UserID).Allow() {
				return c.JSON(http.StatusTooManyRequests, map[string]string{"message": "too many requests"})
			}

			return next(c)
		}
	}
}
