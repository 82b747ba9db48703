package api

import (
	"errors"
	"net/http"

	"github.com/questparty/questparty-api/internal/api/shared"
	"github.com/questparty/questparty-api/internal/domain"
	"github.com/questparty/questparty-api/internal/store"
)

// ProfileHandler handles updates to the caller's profile and character.
type ProfileHandler struct {
	userStore store.UserStore
}

// NewProfileHandler creates a new ProfileHandler with the given dependencies.
func NewProfileHandler(userStore store.UserStore) *ProfileHandler {
	return &ProfileHandler{userStore: userStore}
}

// UpdateProfile handles PUT /profile. Only displayName and timezone are
// recognised; at least one must be present.
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	update := req.ToUpdate()
	if err := update.Validate(); err != nil {
		respondInvalidUpdate(w, r, err, MsgEmptyProfile)
		return
	}

	user, err := h.userStore.UpdateProfile(r.Context(), userID, update)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondSuccess(w, r, UserEnvelopeData{User: NewUserResponse(user)}, "Profile updated")
}

// PatchUser handles PATCH /user. Only characterName, onboardingStep and
// onboardingCompletedAt are recognised; at least one must be present.
func (h *ProfileHandler) PatchUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req UpdateUserRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	update := req.ToUpdate()
	if err := update.Validate(); err != nil {
		respondInvalidUpdate(w, r, err, MsgEmptyUserUpdate)
		return
	}

	user, err := h.userStore.UpdateUser(r.Context(), userID, update)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondSuccess(w, r, UserEnvelopeData{User: NewUserResponse(user)}, "User updated")
}

func respondInvalidUpdate(w http.ResponseWriter, r *http.Request, err error, emptyMsg string) {
	msg := SanitizeValidationError(err)
	if errors.Is(err, domain.ErrEmptyUpdate) {
		msg = emptyMsg
	}
	shared.RespondErrorAndLog(w, r, http.StatusBadRequest, msg, err)
}
