package middleware

import (
	"net/http"
	"time"

	"github.com/grachmannico95/statement-fraud-detector/pkg/logger"
	"github.com/labstack/echo/v4"
)

// Logging writes one line per request. Server errors are logged at error
// level, everything else at info.
func Logging(log *logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			status := c.Response().Status
			fields := []interface{}{
				"method", req.Method,
				"route", c.Path(),
				"path", req.URL.Path,
				"status", status,
				"bytes_in", req.ContentLength,
				"duration_ms", time.Since(start).Milliseconds(),
			}

			if status >= http.StatusInternalServerError {
				log.Error(req.Context(), "HTTP request", fields...)
			} else {
				log.Info(req.Context(), "HTTP request", fields...)
			}

			return nil
		}
	}
}
