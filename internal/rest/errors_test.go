package rest

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Guyuepp/food-reels/domain"
)

func TestGetStatusCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, http.StatusOK},
		{domain.ErrNotFound, http.StatusNotFound},
		{fmt.Errorf("get food: %w", domain.ErrNotFound), http.StatusNotFound},
		{domain.ErrUnauthenticated, http.StatusUnauthorized},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrForbidden, http.StatusForbidden},
		{fmt.Errorf("insert edge: %w: deadlock", domain.ErrConflict), http.StatusConflict},
		{domain.ErrBadParamInput, http.StatusBadRequest},
		{domain.ErrStorage, http.StatusServiceUnavailable},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, getStatusCode(tt.err), "%v", tt.err)
	}
}

func TestPublicMessageHidesDriverDetails(t *testing.T) {
	err := fmt.Errorf("toggle: %w: Error 1213: Deadlock found", domain.ErrConflict)
	assert.Equal(t, domain.ErrConflict.Error(), publicMessage(err))
	assert.Equal(t, domain.ErrInternalServerError.Error(), publicMessage(errors.New("dial tcp: refused")))

	bad := fmt.Errorf("%w: name too short", domain.ErrBadParamInput)
	assert.Equal(t, bad.Error(), publicMessage(bad))
}
