package middlewarex

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

var rateLimitedTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "offsetpager_rate_limited_total",
	Help: "Requests rejected by the per-client rate limit",
})

// Counter increments a windowed hit counter and returns the new value.
type Counter interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

// RedisCounter keeps fixed-window counters in Redis.
type RedisCounter struct {
	client *redis.Client
}

func NewRedisCounter(client *redis.Client) *RedisCounter {
	return &RedisCounter{client: client}
}

func (c *RedisCounter) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	n, err := c.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if n == 1 {
		if err := c.client.Expire(ctx, key, window).Err(); err != nil {
			return n, err
		}
	}
	return n, nil
}

// RateLimit allows perMin requests per client IP and minute. Counter failures
// let the request through.
func RateLimit(counter Counter, perMin int) func(http.Handler) http.Handler {
	return rateLimit(counter, perMin, time.Now)
}

func rateLimit(counter Counter, perMin int, now func() time.Time) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t := now()
			window := t.Unix() / 60
			key := "ratelimit:" + clientIP(r) + ":" + strconv.FormatInt(window, 10)

			n, err := counter.Incr(r.Context(), key, time.Minute)
			if err != nil {
				log.Warn().Err(err).Msg("rate limit counter unavailable")
				next.ServeHTTP(w, r)
				return
			}
			if n > int64(perMin) {
				rateLimitedTotal.Inc()
				retry := (window+1)*60 - t.Unix()
				w.Header().Set("Retry-After", strconv.FormatInt(retry, 10))
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
