package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/mood-journal/internal/app"
	"github.com/MKhiriev/mood-journal/internal/logger"
	"github.com/MKhiriev/mood-journal/internal/utils"
	"github.com/MKhiriev/mood-journal/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), app.MsgRegisterFailed)
		return
	}

	token, err := h.services.AuthService.Register(r.Context(), creds)
	if err != nil {
		writeError(w, r, err, app.MsgRegisterFailed)
		return
	}

	log.Info().Int64("user_id", token.UserID).Msg("user registered")
	utils.WriteJSON(w, models.TokenResponse{Token: token.String()}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), app.MsgLoginFailed)
		return
	}

	token, err := h.services.AuthService.Login(r.Context(), creds)
	if err != nil {
		writeError(w, r, err, app.MsgLoginFailed)
		return
	}

	log.Debug().Int64("user_id", token.UserID).Msg("user successfully logged in")
	utils.WriteJSON(w, models.TokenResponse{Token: token.String()}, http.StatusOK)
}
