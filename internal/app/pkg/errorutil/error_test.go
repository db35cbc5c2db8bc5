package errorutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsRetryable(t *testing.T) {
	cause := errors.New("connection refused")

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"plain error defaults to retriable", cause, true},
		{"retriable", Retriable("db down", cause), true},
		{"non-retriable", NonRetriable("bad message", nil), false},
		{"wrapped non-retriable", fmt.Errorf("handle: %w", NonRetriable("amount mismatch", nil)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRetryable(tt.err))
		})
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("record not found")
	err := NonRetriable("order missing", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "record not found", err.DevDetails)
	assert.Equal(t, 400, err.Code)
}
