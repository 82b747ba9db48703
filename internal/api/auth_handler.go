package api

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/questparty/questparty-api/internal/api/shared"
	"github.com/questparty/questparty-api/internal/domain"
	"github.com/questparty/questparty-api/internal/platform/logger"
	"github.com/questparty/questparty-api/internal/store"
)

// AuthHandler handles identity-related API requests.
type AuthHandler struct {
	userStore store.UserStore
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(userStore store.UserStore) *AuthHandler {
	return &AuthHandler{userStore: userStore}
}

// CheckEmail handles GET /auth/check-email. It is public and reports whether
// the address is still free to register. A taken address is not an error.
func (h *AuthHandler) CheckEmail(w http.ResponseWriter, r *http.Request) {
	raw := strings.TrimSpace(r.URL.Query().Get("email"))
	if raw == "" {
		shared.RespondError(w, r, http.StatusBadRequest, MsgEmailRequired)
		return
	}

	email := domain.NormalizeEmail(raw)
	if err := domain.ValidateEmail(email); err != nil {
		shared.RespondError(w, r, http.StatusBadRequest, MsgInvalidEmail)
		return
	}

	exists, err := h.userStore.EmailExists(r.Context(), email)
	if err != nil {
		HandleAPIError(w, r, err, MsgUnexpected)
		return
	}

	shared.RespondSuccess(w, r, EmailAvailability{Available: !exists}, "")
}

// Me handles GET /auth/me and returns the caller's profile.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	user, err := h.userStore.GetByID(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	logger.FromContext(r.Context()).Debug("profile fetched", slog.String("user_id", userID.String()))
	shared.RespondSuccess(w, r, UserEnvelopeData{User: NewUserResponse(user)}, "")
}
