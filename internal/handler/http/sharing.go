package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/mood-journal/internal/app"
	"github.com/MKhiriev/mood-journal/internal/utils"
	"github.com/MKhiriev/mood-journal/models"
)

func (h *Handler) share(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromRequest(r)
	if err != nil {
		writeError(w, r, err, app.MsgShareFailed)
		return
	}

	link, err := h.services.SharingService.EnableSharing(r.Context(), identity.UserID)
	if err != nil {
		writeError(w, r, err, app.MsgShareFailed)
		return
	}

	utils.WriteJSON(w, link, http.StatusOK)
}

func (h *Handler) unshare(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromRequest(r)
	if err != nil {
		writeError(w, r, err, app.MsgUnshareFailed)
		return
	}

	if err = h.services.SharingService.DisableSharing(r.Context(), identity.UserID); err != nil {
		writeError(w, r, err, app.MsgUnshareFailed)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgSharingDisabled}, http.StatusOK)
}

func (h *Handler) sharedMoods(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	shared, err := h.services.MoodService.SharedMoods(r.Context(), token)
	if err != nil {
		writeError(w, r, err, app.MsgSharedFailed)
		return
	}

	utils.WriteJSON(w, shared, http.StatusOK)
}
