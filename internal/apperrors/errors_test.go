package apperrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/SscSPs/money_ledger/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := apperrors.NewAppError(500, "failed to save journal", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "failed to save journal: connection reset", err.Error())

	wrapped := fmt.Errorf("service: %w", err)
	var appErr *apperrors.AppError
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, 500, appErr.Code)
}

func TestNotFoundAndConflict(t *testing.T) {
	assert.ErrorIs(t, apperrors.NewNotFoundError("journal j1 not found"), apperrors.ErrNotFound)
	assert.ErrorIs(t, apperrors.NewConflictError("journal j1 is not a draft"), apperrors.ErrConflict)
	assert.Equal(t, "journal j1 not found: resource not found", apperrors.NewNotFoundError("journal j1 not found").Error())
}
