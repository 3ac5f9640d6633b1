package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/money_ledger/internal/apperrors"
	"github.com/SscSPs/money_ledger/internal/core/domain"
	"github.com/SscSPs/money_ledger/internal/dto"
	"github.com/SscSPs/money_ledger/internal/middleware"
	"github.com/SscSPs/money_ledger/internal/utils/accounting"
	"github.com/gin-gonic/gin"
)

// respondError maps service errors to status codes. Unexpected errors are logged and
// answered with fallback so internals do not leak.
func respondError(c *gin.Context, err error, fallback string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var ve *accounting.ValidationError
	switch {
	case errors.As(err, &ve):
		logger.Warn("Journal entry rejected", slog.String("reason", string(ve.Reason)), slog.Int("line", ve.Line))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: ve.Message, Reason: string(ve.Reason), Line: ve.Line})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
	case errors.Is(err, apperrors.ErrForbidden):
		logger.Warn("Scope access denied", slog.String("error", err.Error()))
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: "Forbidden"})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: clientMessage(err, "Resource not found")})
	case errors.Is(err, apperrors.ErrConflict), errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Conflict", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: clientMessage(err, "Conflict with current state")})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: fallback})
	}
}

// clientMessage returns the message of the first client-facing AppError in the chain, without
// the wrap prefixes added on the way up. Errors without one get the generic message.
func clientMessage(err error, generic string) string {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.Code < http.StatusInternalServerError && appErr.Message != "" {
		return appErr.Message
	}
	return generic
}

// badRequest answers a malformed request body or query.
func badRequest(c *gin.Context, err error) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
}

// requireSession returns the authenticated session or answers 401.
func requireSession(c *gin.Context) (domain.Session, bool) {
	session, ok := middleware.GetSessionFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Session not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return domain.Session{}, false
	}
	return session, true
}
