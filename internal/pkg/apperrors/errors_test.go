package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomErrorMatchesSentinel(t *testing.T) {
	err := NewCustomError(ErrUserNotFound, "no user record for deniz@example.edu")

	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Equal(t, "no user record for deniz@example.edu", err.Error())
}

func TestCustomErrorMatchesThroughWrapping(t *testing.T) {
	inner := NewCustomError(ErrScheduleNotFound, "no stored schedule")
	wrapped := fmt.Errorf("loading: %w", inner)

	assert.ErrorIs(t, wrapped, ErrScheduleNotFound)

	var ce *CustomError
	require.ErrorAs(t, wrapped, &ce)
	assert.Equal(t, "no stored schedule", ce.Message)
}

func TestCustomErrorDetails(t *testing.T) {
	err := NewCustomError(ErrDepartmentNotFound, "department is not in the catalog").
		WithDetails(map[string]interface{}{"code": "BIO"})

	assert.Equal(t, "BIO", err.Details["code"])
	assert.ErrorIs(t, err, ErrDepartmentNotFound)
}

func TestCustomErrorFallsBackToSentinelMessage(t *testing.T) {
	err := &CustomError{Err: ErrCourseNotFound}
	assert.Equal(t, ErrCourseNotFound.Error(), err.Error())
	assert.False(t, errors.Is(err, ErrUserNotFound))
}
