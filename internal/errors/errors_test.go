package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorMessage(t *testing.T) {
	err := NotFound("job not found")
	assert.Equal(t, "job not found", err.Error())

	cause := errors.New("row missing")
	wrapped := Wrap(cause, ErrCodeNotFound, "job not found")
	assert.Equal(t, "job not found: row missing", wrapped.Error())
	assert.ErrorIs(t, wrapped, cause)
}

func TestCodePredicates(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
	}{
		{"not found", NotFound("x"), IsNotFound},
		{"conflict", Conflict("x"), IsConflict},
		{"validation", Validation("x"), IsValidation},
		{"malformed", Malformed("x"), IsMalformed},
		{"missing field", MissingField("x"), IsMissingField},
		{"invalid state", InvalidState("x"), IsInvalidState},
		{"internal", Internal("x"), IsInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.check(tt.err))
			assert.False(t, tt.check(errors.New("plain")))
		})
	}
}

func TestPredicatesSeeThroughWrapping(t *testing.T) {
	inner := InvalidStatef("'%s' is not a valid state", "bogus")
	outer := fmt.Errorf("update state: %w", inner)
	assert.True(t, IsInvalidState(outer))
	assert.False(t, IsNotFound(outer))
}

func TestWrapNil(t *testing.T) {
	require.Nil(t, Wrap(nil, ErrCodeInternal, "ignored"))
	require.Nil(t, Wrapf(nil, ErrCodeInternal, "ignored %d", 1))
}
