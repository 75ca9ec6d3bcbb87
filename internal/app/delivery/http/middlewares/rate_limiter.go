package middlewares

import (
	"halo-service/internal/pkg/exceptions"
	"halo-service/internal/pkg/utils"
	"math"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RateLimiter keeps one token bucket per client address and blocks an address
// for blockTime once its bucket runs dry. It guards the credential endpoints.
// Full buckets and lapsed blocks are swept at most once per refill window.
type RateLimiter struct {
	Log       *zap.Logger
	limiters  map[string]*rate.Limiter
	blocked   map[string]time.Time
	mu        sync.Mutex
	requests  int
	per       time.Duration
	blockTime time.Duration
	lastSweep time.Time
	now       func() time.Time
}

func NewRateLimiter(logger *zap.Logger, requests int, per, blockTime time.Duration) *RateLimiter {
	if requests < 1 {
		requests = 1
	}
	return &RateLimiter{
		Log:       logger,
		limiters:  make(map[string]*rate.Limiter),
		blocked:   make(map[string]time.Time),
		requests:  requests,
		per:       per,
		blockTime: blockTime,
		now:       time.Now,
	}
}

func (rl *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := utils.GetClientIPFromContext(r.Context())
		if ip == "" {
			ip = utils.RemoteIP(r)
		}

		if retryAfter, ok := rl.admit(ip); !ok {
			err := exceptions.ErrTooManyRequests(nil).WithRetryAfter(retryAfter)
			utils.BuildErrorResponse(rl.Log, w, err)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// admit reports whether ip may proceed, or the seconds left on its block.
func (rl *RateLimiter) admit(ip string) (int, bool) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	rl.sweep(now)

	if blockedUntil, found := rl.blocked[ip]; found {
		if now.Before(blockedUntil) {
			return retryAfterSeconds(blockedUntil.Sub(now)), false
		}
		delete(rl.blocked, ip)
	}

	limiter, exists := rl.limiters[ip]
	if !exists {
		limiter = rate.NewLimiter(rate.Every(rl.per/time.Duration(rl.requests)), rl.requests)
		rl.limiters[ip] = limiter
	}

	if !limiter.AllowN(now, 1) {
		rl.blocked[ip] = now.Add(rl.blockTime)
		return retryAfterSeconds(rl.blockTime), false
	}
	return 0, true
}

// sweep drops buckets that have refilled completely and blocks that lapsed.
// Caller holds rl.mu.
func (rl *RateLimiter) sweep(now time.Time) {
	if now.Sub(rl.lastSweep) < rl.per {
		return
	}
	rl.lastSweep = now

	for ip, blockedUntil := range rl.blocked {
		if !now.Before(blockedUntil) {
			delete(rl.blocked, ip)
		}
	}
	for ip, limiter := range rl.limiters {
		if _, isBlocked := rl.blocked[ip]; isBlocked {
			continue
		}
		if limiter.TokensAt(now) >= float64(limiter.Burst()) {
			delete(rl.limiters, ip)
		}
	}
}

func retryAfterSeconds(d time.Duration) int {
	secs := int(math.Ceil(d.Seconds()))
	if secs < 1 {
		return 1
	}
	return secs
}
