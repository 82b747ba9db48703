package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/questparty/questparty-api/internal/api/shared"
	"github.com/questparty/questparty-api/internal/domain"
	"github.com/questparty/questparty-api/internal/service/auth"
	"github.com/questparty/questparty-api/internal/store"
)

// Stable client-facing error messages.
const (
	MsgInvalidRequest   = "Invalid request format"
	MsgEmailRequired    = "Email is required"
	MsgInvalidEmail     = "Invalid email format"
	MsgUserNotFound     = "User not found"
	MsgNotInParty       = "Not a member of any party"
	MsgVictoryNotFound  = "Victory not found"
	MsgEmptyProfile     = "displayName or timezone is required"
	MsgEmptyUserUpdate  = "characterName, onboardingStep or onboardingCompletedAt is required"
	MsgUnauthenticated  = "Authentication required"
	MsgUnexpected       = "An unexpected error occurred"
	MsgServiceUnhealthy = "Service unavailable"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrWrongTokenType),
		errors.Is(err, auth.ErrMissingToken):
		return http.StatusUnauthorized

	case store.IsNotFoundError(err):
		return http.StatusNotFound

	case store.IsDuplicateError(err):
		return http.StatusConflict

	case errors.Is(err, store.ErrInvalidEntity),
		domain.IsValidationError(err):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return MsgUnexpected
	}

	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		return "Token expired"
	case MapErrorToStatusCode(err) == http.StatusUnauthorized:
		return MsgUnauthenticated

	case errors.Is(err, store.ErrUserNotFound):
		return MsgUserNotFound
	case errors.Is(err, store.ErrMembershipNotFound):
		return MsgNotInParty
	case errors.Is(err, store.ErrVictoryNotFound):
		return MsgVictoryNotFound
	case store.IsNotFoundError(err):
		return "Resource not found"

	case store.IsDuplicateError(err):
		return "Resource already exists"

	case errors.Is(err, domain.ErrEmptyEmail):
		return MsgEmailRequired
	case errors.Is(err, domain.ErrInvalidEmail):
		return MsgInvalidEmail
	case errors.Is(err, store.ErrInvalidEntity), domain.IsValidationError(err):
		return SanitizeValidationError(err)

	default:
		return MsgUnexpected
	}
}

// SanitizeValidationError turns a domain or validator error into a message
// that names the offending field without echoing internal details.
func SanitizeValidationError(err error) string {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return fmt.Sprintf("Invalid %s: %s", ve.Field, ve.Message)
	}
	if field, tag := shared.FirstFieldError(err); field != "" {
		return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(tag))
	}
	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "email":
		return "invalid email format"
	case "min", "gte":
		return "too small"
	case "max", "lte":
		return "too large"
	case "timezone":
		return "must be an IANA time zone name"
	default:
		return "validation failed"
	}
}

// HandleAPIError writes the failure envelope for err. The status and message
// come from MapErrorToStatusCode and GetSafeErrorMessage unless message is
// non-empty.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, message string) {
	status := MapErrorToStatusCode(err)
	if message == "" {
		message = GetSafeErrorMessage(err)
	}
	shared.RespondErrorAndLog(w, r, status, message, err)
}
