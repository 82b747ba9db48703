package api

import (
	"log/slog"
	"net/http"

	"github.com/questparty/questparty-api/internal/api/shared"
	"github.com/questparty/questparty-api/internal/platform/logger"
	"github.com/questparty/questparty-api/internal/store"
)

// PartyHandler handles the caller's party membership.
type PartyHandler struct {
	partyStore store.PartyStore
}

// NewPartyHandler creates a new PartyHandler with the given dependencies.
func NewPartyHandler(partyStore store.PartyStore) *PartyHandler {
	return &PartyHandler{partyStore: partyStore}
}

// Leave handles POST /parties/leave. The membership removed is always the
// caller's own; a second call answers 404.
func (h *PartyHandler) Leave(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	membership, err := h.partyStore.LeaveParty(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	logger.FromContext(r.Context()).Info("user left party",
		slog.String("user_id", userID.String()),
		slog.String("party_id", membership.PartyID.String()),
		slog.String("role", string(membership.Role)))

	shared.RespondSuccess(w, r, LeavePartyResponse{PartyID: membership.PartyID}, "Left party")
}
