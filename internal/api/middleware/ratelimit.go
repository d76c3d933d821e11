package middleware

import (
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter is a per-IP token bucket. Health endpoints get hammered by
// load balancers and uptime monitors, so the bucket is generous, but an
// abusive client still gets cut off.
type RateLimiter struct {
	visitors sync.Map
	limit    rate.Limit
	burst    int
}

func NewRateLimiter(perSecond float64, burst int) *RateLimiter {
	rl := &RateLimiter{
		limit: rate.Limit(perSecond),
		burst: burst,
	}
	go rl.cleanupVisitors()
	return rl
}

func (rl *RateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Use X-Real-IP for proxy compatibility
		ip := r.Header.Get("X-Real-IP")
		if ip == "" {
			ip = r.RemoteAddr
		}

		v, _ := rl.visitors.LoadOrStore(ip, &visitor{
			limiter:  rate.NewLimiter(rl.limit, rl.burst),
			lastSeen: time.Now(),
		})

		vis := v.(*visitor)
		vis.lastSeen = time.Now()

		if !vis.limiter.Allow() {
			http.Error(w, `{"ok":false,"error":"Rate limit exceeded"}`, http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) cleanupVisitors() {
	ticker := time.NewTicker(time.Minute)
	for range ticker.C {
		rl.visitors.Range(func(key, value interface{}) bool {
			if time.Since(value.(*visitor).lastSeen) > 3*time.Minute {
				rl.visitors.Delete(key)
			}
			return true
		})
	}
}
