package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/mood-journal/internal/logger"
	"github.com/MKhiriev/mood-journal/internal/service"
	"github.com/MKhiriev/mood-journal/internal/utils"
)

// errorStatuses is matched in order, so an error wrapping two sentinels
// always gets the status of the first one listed.
var errorStatuses = []struct {
	err    error
	status int
}{
	{service.ErrUnauthenticated, http.StatusUnauthorized},
	{service.ErrInvalidToken, http.StatusUnauthorized},
	{service.ErrInvalidCredentials, http.StatusUnauthorized},
	{ErrNoIdentityInContext, http.StatusUnauthorized},
	{service.ErrSharingDisabled, http.StatusForbidden},
	{service.ErrNotFound, http.StatusNotFound},
	{service.ErrValidation, http.StatusBadRequest},
	{service.ErrUsernameTaken, http.StatusBadRequest},
	{ErrInvalidPathParam, http.StatusBadRequest},
	{ErrInvalidJSON, http.StatusBadRequest},
}

// errorResponse returns the status and the client-facing message for err.
// Known sentinels answer with their own message; anything else becomes 400
// with fallback so store or driver details never reach the client.
func errorResponse(err error, fallback string) (int, string) {
	for _, known := range errorStatuses {
		if errors.Is(err, known.err) {
			return known.status, known.err.Error()
		}
	}
	return http.StatusBadRequest, fallback
}

// writeError logs err with the request logger and writes the mapped JSON
// error body.
func writeError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	status, message := errorResponse(err, fallback)

	logger.FromRequest(r).Err(err).Int("status", status).Msg(fallback)
	utils.WriteError(w, message, status)
}
