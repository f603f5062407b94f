package middleware

import (
	"net"
	"net/http"
	"strconv"
	"time"

	"clinic-api/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// incrExpireScript atomically increments the counter and sets the window
// TTL on first hit.
var incrExpireScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil || host == "" {
		if r.RemoteAddr != "" {
			return r.RemoteAddr
		}
		return "unknown"
	}
	return host
}

// RateLimit caps requests per client IP per route over a fixed window.
// Redis errors fail open: a flaky cache must not take the API down.
func RateLimit(rdb *redis.Client, max int, window time.Duration, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if rdb == nil || max <= 0 || window <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := "rl:path:" + r.URL.Path + ":ip:" + clientIP(r)

			countI, err := incrExpireScript.Run(r.Context(), rdb, []string{key}, window.Milliseconds()).Result()
			if err != nil {
				logger.Warn("Rate limit check failed, allowing request", zap.Error(err))
				next.ServeHTTP(w, r)
				return
			}

			count, _ := countI.(int64)

			remaining := max - int(count)
			if remaining < 0 {
				remaining = 0
			}
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(max))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))

			if int(count) > max {
				ttl, _ := rdb.TTL(r.Context(), key).Result()
				if ttl > 0 {
					w.Header().Set("Retry-After", strconv.Itoa(int(ttl.Seconds())))
				}
				logger.Warn("Rate limit exceeded",
					zap.String("key", key),
					zap.Int64("count", count))
				utils.ResponseError(w, http.StatusTooManyRequests, "Too many attempts, please try again later")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
