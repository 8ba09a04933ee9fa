package middleware

import (
	"github.com/google/uuid"
	"github.com/grachmannico95/statement-fraud-detector/pkg/logger"
	"github.com/labstack/echo/v4"
)

const (
	HeaderTraceID   = "X-Trace-ID"
	headerRequestID = "X-Request-ID"
)

// RequestID reuses an incoming X-Trace-ID (or X-Request-ID) and otherwise
// generates one. The id is put on the request context for logging and echoed
// back in X-Trace-ID.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			traceID := req.Header.Get(HeaderTraceID)
			if traceID == "" {
				traceID = req.Header.Get(headerRequestID)
			}
			if traceID == "" {
				traceID = uuid.New().String()
			}

			c.SetRequest(req.WithContext(logger.WithTraceID(req.Context(), traceID)))
			c.Response().Header().Set(HeaderTraceID, traceID)

			return next(c)
		}
	}
}
