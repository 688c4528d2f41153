package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"physio-appointment-api/config"
	"physio-appointment-api/pkg/response"

	"golang.org/x/time/rate"
)

type client struct {
	limiter *rate.Limiter
	seen    time.Time
}

// RateLimitMiddleware applies a per-IP token bucket to the unauthenticated
// endpoints. A non-positive rate disables it.
type RateLimitMiddleware struct {
	mu      sync.Mutex
	clients map[string]*client
	rps     rate.Limit
	burst   int
}

func NewRateLimitMiddleware(cfg config.RateLimitConfig) *RateLimitMiddleware {
	m := &RateLimitMiddleware{
		clients: make(map[string]*client),
		rps:     rate.Limit(cfg.RPS),
		burst:   cfg.Burst,
	}

	if m.rps > 0 {
		// sweep stale entries so the map does not grow unbounded
		go func() {
			for {
				time.Sleep(time.Minute)
				m.mu.Lock()
				for ip, c := range m.clients {
					if time.Since(c.seen) > 3*time.Minute {
						delete(m.clients, ip)
					}
				}
				m.mu.Unlock()
			}
		}()
	}

	return m
}

func (m *RateLimitMiddleware) limiterFor(ip string) *rate.Limiter {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.clients[ip]; ok {
		c.seen = time.Now()
		return c.limiter
	}
	l := rate.NewLimiter(m.rps, m.burst)
	m.clients[ip] = &client{limiter: l, seen: time.Now()}
	return l
}

func (m *RateLimitMiddleware) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.rps <= 0 {
			next.ServeHTTP(w, r)
			return
		}

		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		if !m.limiterFor(ip).Allow() {
			response.TooManyRequests(w, "Too many requests")
			return
		}

		next.ServeHTTP(w, r)
	})
}
