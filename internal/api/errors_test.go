package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/questparty/questparty-api/internal/domain"
	"github.com/questparty/questparty-api/internal/service/auth"
	"github.com/questparty/questparty-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid token", auth.ErrInvalidToken, http.StatusUnauthorized},
		{"expired token", auth.ErrExpiredToken, http.StatusUnauthorized},
		{"user not found", store.ErrUserNotFound, http.StatusNotFound},
		{"wrapped membership not found", fmt.Errorf("leave: %w", store.ErrMembershipNotFound), http.StatusNotFound},
		{"victory not found", store.ErrVictoryNotFound, http.StatusNotFound},
		{"duplicate", fmt.Errorf("%w: users_email_key", store.ErrDuplicate), http.StatusConflict},
		{"invalid entity", store.ErrInvalidEntity, http.StatusBadRequest},
		{"empty update", domain.ErrEmptyUpdate, http.StatusBadRequest},
		{"validation error", domain.NewValidationError("timezone", "bad", nil), http.StatusBadRequest},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, MsgUnexpected},
		{"expired token", auth.ErrExpiredToken, "Token expired"},
		{"wrong token type", auth.ErrWrongTokenType, MsgUnauthenticated},
		{"user not found", store.ErrUserNotFound, MsgUserNotFound},
		{"membership not found", store.ErrMembershipNotFound, MsgNotInParty},
		{"victory not found", store.ErrVictoryNotFound, MsgVictoryNotFound},
		{"generic not found", fmt.Errorf("%w: sql: no rows in result set", store.ErrNotFound), "Resource not found"},
		{"duplicate", fmt.Errorf("%w: users_email_key", store.ErrDuplicate), "Resource already exists"},
		{"empty email", domain.ErrEmptyEmail, MsgEmailRequired},
		{"invalid email", domain.ErrInvalidEmail, MsgInvalidEmail},
		{
			"validation error names the field",
			fmt.Errorf("%w: %w", store.ErrInvalidEntity, domain.NewValidationError("displayName", "is too long", nil)),
			"Invalid displayName: is too long",
		},
		{"sql leak", errors.New("pq: relation users does not exist"), MsgUnexpected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetSafeErrorMessage(tt.err))
		})
	}
}
