package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nisargamalap/gridle/pkg/apierrors"
)

// RateLimiter applies a fixed-window request cap per client IP and route path.
// Counters reset when their window elapses; stale entries are dropped on the
// fly so the map stays bounded by active clients.
type RateLimiter struct {
	mu        sync.Mutex
	limit     int
	window    time.Duration
	windows   map[string]*rateWindow
	lastSweep time.Time
}

type rateWindow struct {
	start time.Time
	count int
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:   limit,
		window:  window,
		windows: make(map[string]*rateWindow),
	}
}

func (r *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP() + "|" + c.FullPath()
		if !r.allow(key, time.Now()) {
			lang := GetLang(c)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierrors.CreateError(http.StatusTooManyRequests, apierrors.MsgTooManyRequests, lang))
			return
		}
		c.Next()
	}
}

func (r *RateLimiter) allow(key string, now time.Time) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Sweep at most once per window so idle clients do not leak entries.
	if now.Sub(r.lastSweep) >= r.window {
		for k, w := range r.windows {
			if now.Sub(w.start) >= r.window {
				delete(r.windows, k)
			}
		}
		r.lastSweep = now
	}

	w, ok := r.windows[key]
	if !ok || now.Sub(w.start) >= r.window {
		r.windows[key] = &rateWindow{start: now, count: 1}
		return true
	}
	if w.count >= r.limit {
		return false
	}
	w.count++
	return true
}
