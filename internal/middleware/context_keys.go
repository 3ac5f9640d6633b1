package middleware

import (
	"context"
	"log/slog"

	"github.com/SscSPs/money_ledger/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// contextKey is the type of the keys stored in the request context.
// Using a custom type prevents collisions.
type contextKey string

const (
	loggerCtxKey  = contextKey("logger")
	sessionCtxKey = contextKey("session")
)

// WithLogger returns a copy of ctx carrying the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerCtxKey, logger)
}

// GetLoggerFromCtx retrieves the request-scoped logger from a standard context.
// It returns the default logger if none is found.
func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return slog.Default()
	}
	if logger, ok := ctx.Value(loggerCtxKey).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return slog.Default()
}

// WithSession returns a copy of ctx carrying the session.
func WithSession(ctx context.Context, session domain.Session) context.Context {
	return context.WithValue(ctx, sessionCtxKey, session)
}

// GetSessionFromCtx retrieves the authenticated session from a standard context.
func GetSessionFromCtx(ctx context.Context) (domain.Session, bool) {
	session, ok := ctx.Value(sessionCtxKey).(domain.Session)
	return session, ok
}

// GetSessionFromContext retrieves the authenticated session from the Gin context.
// It returns the session and a boolean indicating if it was found.
func GetSessionFromContext(c *gin.Context) (domain.Session, bool) {
	return GetSessionFromCtx(c.Request.Context())
}
