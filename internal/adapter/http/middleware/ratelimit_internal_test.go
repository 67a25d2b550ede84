package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRateLimiter_SweepDropsIdleEntries(t *testing.T) {
	limiter := NewRateLimiter(5, time.Minute)
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	require.True(t, limiter.allow("1.2.3.4|/api/auth/login", start))
	require.True(t, limiter.allow("5.6.7.8|/api/auth/login", start))
	require.Len(t, limiter.windows, 2)

	// One client keeps going past the window; the idle one gets swept.
	require.True(t, limiter.allow("1.2.3.4|/api/auth/login", start.Add(2*time.Minute)))
	require.Len(t, limiter.windows, 1)
	require.Contains(t, limiter.windows, "1.2.3.4|/api/auth/login")
}

func TestRateLimiter_SweepKeepsLiveEntries(t *testing.T) {
	limiter := NewRateLimiter(5, time.Minute)
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	require.True(t, limiter.allow("1.2.3.4|/api/auth/login", start))
	require.True(t, limiter.allow("5.6.7.8|/api/auth/login", start.Add(30*time.Second)))

	// The second window is still open when the sweep runs.
	require.True(t, limiter.allow("1.2.3.4|/api/auth/login", start.Add(70*time.Second)))
	require.Len(t, limiter.windows, 2)
	require.Contains(t, limiter.windows, "5.6.7.8|/api/auth/login")
}
