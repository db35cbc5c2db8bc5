package errorx

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marxiobadel/farmer-sub002/internal/app/domains/entity/etorder"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/entity/etshipping"
	"github.com/marxiobadel/farmer-sub002/internal/app/domains/entity/etzone"
)

func TestFromError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"zone not found", fmt.Errorf("resolve zone: %w", etzone.ErrZoneNotFound), http.StatusNotFound, ""},
		{"duplicate order", ErrDuplicateOrder, http.StatusConflict, "duplicate order"},
		{"pricing unavailable", etshipping.ErrCarrierUnavailable, http.StatusUnprocessableEntity, ""},
		{"pricing type in use", fmt.Errorf("%w: weight -> price", etshipping.ErrPricingTypeInUse), http.StatusUnprocessableEntity, ""},
		{"invalid bound", fmt.Errorf("rate #2: %w", etshipping.ErrInvalidBound), http.StatusBadRequest, ""},
		{"invalid transition", etorder.ErrInvalidTransition, http.StatusConflict, ""},
		{"unknown", errors.New("dial tcp: i/o timeout"), http.StatusInternalServerError, "internal server error"},
		{"business error passthrough", NewBusinessError(http.StatusTooManyRequests, "slow down"), http.StatusTooManyRequests, "slow down"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			be := FromError(tt.err)
			assert.Equal(t, tt.wantCode, be.Code)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, be.Message)
			}
		})
	}

	assert.Nil(t, FromError(nil))
}
