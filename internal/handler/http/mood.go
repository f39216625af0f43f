package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/mood-journal/internal/app"
	"github.com/MKhiriev/mood-journal/internal/utils"
	"github.com/MKhiriev/mood-journal/models"
)

func (h *Handler) createMood(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromRequest(r)
	if err != nil {
		writeError(w, r, err, app.MsgCreateFailed)
		return
	}

	var req models.CreateMoodRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), app.MsgCreateFailed)
		return
	}

	mood, err := h.services.MoodService.CreateMood(r.Context(), identity, req)
	if err != nil {
		writeError(w, r, err, app.MsgCreateFailed)
		return
	}

	utils.WriteJSON(w, models.CreateMoodResponse{Mood: mood}, http.StatusCreated)
}

func (h *Handler) monthlySummary(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromRequest(r)
	if err != nil {
		writeError(w, r, err, app.MsgMonthlyFailed)
		return
	}

	year, err := intParam(r, "year")
	if err != nil {
		writeError(w, r, err, app.MsgMonthlyFailed)
		return
	}
	month, err := intParam(r, "month")
	if err != nil {
		writeError(w, r, err, app.MsgMonthlyFailed)
		return
	}

	summary, err := h.services.MoodService.MonthlySummary(r.Context(), identity, models.MonthQuery{Year: year, Month: month})
	if err != nil {
		writeError(w, r, err, app.MsgMonthlyFailed)
		return
	}

	utils.WriteJSON(w, summary, http.StatusOK)
}

func (h *Handler) updateMood(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromRequest(r)
	if err != nil {
		writeError(w, r, err, app.MsgUpdateFailed)
		return
	}

	id, err := idParam(r)
	if err != nil {
		writeError(w, r, err, app.MsgUpdateFailed)
		return
	}

	var update models.MoodUpdate
	if err = json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), app.MsgUpdateFailed)
		return
	}

	mood, err := h.services.MoodService.UpdateMood(r.Context(), identity, id, update)
	if err != nil {
		writeError(w, r, err, app.MsgUpdateFailed)
		return
	}

	utils.WriteJSON(w, mood, http.StatusOK)
}

func (h *Handler) deleteMood(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromRequest(r)
	if err != nil {
		writeError(w, r, err, app.MsgDeleteFailed)
		return
	}

	id, err := idParam(r)
	if err != nil {
		writeError(w, r, err, app.MsgDeleteFailed)
		return
	}

	if err = h.services.MoodService.DeleteMood(r.Context(), identity, id); err != nil {
		writeError(w, r, err, app.MsgDeleteFailed)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgDeleted}, http.StatusOK)
}

func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromRequest(r)
	if err != nil {
		writeError(w, r, err, app.MsgStatsFailed)
		return
	}

	stats, err := h.services.MoodService.Stats(r.Context(), identity)
	if err != nil {
		writeError(w, r, err, app.MsgStatsFailed)
		return
	}

	utils.WriteJSON(w, stats, http.StatusOK)
}

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromRequest(r)
	if err != nil {
		writeError(w, r, err, app.MsgDashboardFailed)
		return
	}

	dashboard, err := h.services.MoodService.Dashboard(r.Context(), identity)
	if err != nil {
		writeError(w, r, err, app.MsgDashboardFailed)
		return
	}

	utils.WriteJSON(w, dashboard, http.StatusOK)
}

func (h *Handler) suggest(w http.ResponseWriter, r *http.Request) {
	var req models.SuggestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), app.MsgSuggestFailed)
		return
	}

	suggestions := h.services.MoodService.Suggest(r.Context(), req.Note)
	utils.WriteJSON(w, models.Suggestions{Suggestions: suggestions}, http.StatusOK)
}

func (h *Handler) publicBoard(w http.ResponseWriter, r *http.Request) {
	board, err := h.services.MoodService.PublicBoard(r.Context())
	if err != nil {
		writeError(w, r, err, app.MsgPublicFailed)
		return
	}

	utils.WriteJSON(w, board, http.StatusOK)
}

func idParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: id %q", ErrInvalidPathParam, raw)
	}
	return id, nil
}

func intParam(r *http.Request, name string) (int, error) {
	raw := chi.URLParam(r, name)
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", ErrInvalidPathParam, name, raw)
	}
	return value, nil
}
