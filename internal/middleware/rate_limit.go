package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

const (
	RateLimitWindow = 1 * time.Minute
	RateLimitCount  = 10 // 1分あたり
)

// cache.RateCounter
type RateCounter interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

// IPごとの固定ウィンドウ制限（ログイン・登録）
// counterがnilかRedisが落ちているときは通す。
func RateLimiter(counter RateCounter, limit int64, window time.Duration, logger *log.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if counter == nil {
				return next(c)
			}

			// IPとパスをkeyにする
			key := "rate_limit:" + c.RealIP() + ":" + c.Request().URL.Path
			count, err := counter.Incr(c.Request().Context(), key, window)
			if err != nil {
				logger.Warnj(log.JSON{"event": "rate_limit_unavailable", "error": err.Error()})
				return next(c)
			}

			if count > limit {
				return c.JSON(http.StatusTooManyRequests, errorJSON("Too many requests"))
			}
			return next(c)
		}
	}
}
