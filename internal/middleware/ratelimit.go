package middleware

import (
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
	tele "gopkg.in/telebot.v3"
)

const msgTooManyRequests = "Слишком много запросов. Подождите немного."

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter tracks a token bucket per Telegram user
type RateLimiter struct {
	users map[int64]*visitor
	mu    sync.Mutex
	r     rate.Limit
	burst int
}

// NewRateLimiter creates a new rate limiter
func NewRateLimiter(r rate.Limit, burst int) *RateLimiter {
	return &RateLimiter{
		users: make(map[int64]*visitor),
		r:     r,
		burst: burst,
	}
}

// Limiter gets or creates the limiter for a user
func (rl *RateLimiter) Limiter(userID int64) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.users[userID]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(rl.r, rl.burst)}
		rl.users[userID] = v
	}
	v.lastSeen = time.Now()
	return v.limiter
}

// Purge drops limiters of users not seen for longer than ttl and returns
// how many were dropped
func (rl *RateLimiter) Purge(ttl time.Duration) int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := time.Now().Add(-ttl)
	purged := 0
	for userID, v := range rl.users {
		if v.lastSeen.Before(cutoff) {
			delete(rl.users, userID)
			purged++
		}
	}
	return purged
}

// Len returns the number of tracked users
func (rl *RateLimiter) Len() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.users)
}

// Allow reports whether the user may make another request now
func (rl *RateLimiter) Allow(userID int64) bool {
	return rl.Limiter(userID).Allow()
}

// RateLimit drops updates from users that exceed their limit
func RateLimit(rl *RateLimiter, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			sender := c.Sender()
			if sender == nil {
				return next(c)
			}

			if !rl.Allow(sender.ID) {
				logger.Warn("Rate limit exceeded", zap.Int64("user_id", sender.ID))
				if c.Callback() != nil {
					return c.Respond(&tele.CallbackResponse{Text: msgTooManyRequests})
				}
				return c.Send(msgTooManyRequests)
			}

			return next(c)
		}
	}
}
