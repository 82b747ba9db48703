package api

import (
	"net/http"

	"github.com/questparty/questparty-api/internal/api/shared"
	"github.com/questparty/questparty-api/internal/store"
)

// VictoryHandler serves victory records. Victories are public to any
// authenticated caller and are addressed by their own ID.
type VictoryHandler struct {
	victoryStore store.VictoryStore
}

// NewVictoryHandler creates a new VictoryHandler with the given dependencies.
func NewVictoryHandler(victoryStore store.VictoryStore) *VictoryHandler {
	return &VictoryHandler{victoryStore: victoryStore}
}

// Get handles GET /victory/{id}. An ID that is not a UUID cannot name a
// victory and is answered like an unknown one.
func (h *VictoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUserID(w, r); !ok {
		return
	}

	id, err := getPathUUID(r, "id")
	if err != nil {
		shared.RespondErrorAndLog(w, r, http.StatusNotFound, MsgVictoryNotFound, err)
		return
	}

	victory, err := h.victoryStore.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondSuccess(w, r, VictoryEnvelopeData{Victory: NewVictoryResponse(victory)}, "")
}
