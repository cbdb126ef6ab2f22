package errors

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorType
	}{
		{name: "conflict", err: NewConflictError("Already subscribed"), want: ErrorTypeConflict},
		{name: "wrapped", err: fmt.Errorf("subscribe: %w", NewValidationError("bad")), want: ErrorTypeValidation},
		{name: "canceled", err: NewCanceledError(context.Canceled), want: ErrorTypeCanceled},
		{name: "plain error", err: fmt.Errorf("boom"), want: ErrorTypeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TypeOf(tt.err))
			assert.True(t, Is(tt.err, tt.want))
		})
	}
}

func TestIs_Nil(t *testing.T) {
	assert.False(t, Is(nil, ErrorTypeInternal))
}

func TestMessageOf(t *testing.T) {
	err := fmt.Errorf("wrap: %w", NewExternalError("server says no", nil))
	assert.Equal(t, "server says no", MessageOf(err))
	assert.Empty(t, MessageOf(fmt.Errorf("plain")))
}

func TestAppError_Unwrap(t *testing.T) {
	err := NewCanceledError(context.Canceled)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, "CANCELED: request canceled: context canceled", err.Error())
}
