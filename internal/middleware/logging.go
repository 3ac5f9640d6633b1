package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = "X-Request-ID"

// healthRoute completions are logged at debug level.
const healthRoute = "/health"

// RequestLoggingMiddleware puts a request logger into the request context and logs one
// completion line per request. The logger is keyed by route template rather than raw path,
// and path parameters such as journalID or accountID are attached as their own fields.
func RequestLoggingMiddleware(baseLogger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		attrs := []any{
			slog.String("request_id", requestID),
			slog.String("method", c.Request.Method),
			slog.String("route", route),
		}
		for _, p := range c.Params {
			attrs = append(attrs, slog.String(p.Key, p.Value))
		}

		c.Header(RequestIDHeader, requestID)
		c.Request = c.Request.WithContext(WithLogger(c.Request.Context(), baseLogger.With(attrs...)))

		c.Next()

		status := c.Writer.Status()
		level := slog.LevelInfo
		switch {
		case status >= 500:
			level = slog.LevelError
		case status >= 400:
			level = slog.LevelWarn
		case route == healthRoute:
			level = slog.LevelDebug
		}

		// The auth middleware may have replaced the logger with one carrying user_id and scope_id.
		completion := []any{
			slog.Int("status", status),
			slog.Duration("latency", time.Since(start)),
			slog.Int("bytes", c.Writer.Size()),
		}
		if len(c.Errors) > 0 {
			completion = append(completion, slog.String("errors", c.Errors.String()))
		}
		ctx := c.Request.Context()
		GetLoggerFromCtx(ctx).Log(ctx, level, "Request completed", completion...)
	}
}
