package http

import (
	"net/http"

	"github.com/MKhiriev/mood-journal/internal/logger"
	"github.com/MKhiriev/mood-journal/internal/service"
	"github.com/MKhiriev/mood-journal/internal/utils"
	"github.com/MKhiriev/mood-journal/models"
)

// auth enforces a session token on the wrapped routes.
//
// It extracts the bearer token from the "Authorization" header, resolves it
// through [service.AccessService.Authenticate] and stores the caller's id in
// the request context under [utils.UserIDCtxKey]. Missing headers, malformed
// headers, invalid tokens and share tokens are all answered with 401.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Debug().Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteError(w, service.ErrUnauthenticated.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Debug().Err(err).Send()
			utils.WriteError(w, service.ErrUnauthenticated.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		identity, err := h.services.AccessService.Authenticate(ctx, tokenString)
		if err != nil {
			writeError(w, r, err, service.ErrInvalidToken.Error())
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUserID(ctx, identity.UserID)))
	})
}

// identityFromRequest returns the caller stored by auth.
func identityFromRequest(r *http.Request) (models.Identity, error) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok || userID <= 0 {
		return models.Identity{}, ErrNoIdentityInContext
	}
	return models.Identity{UserID: userID}, nil
}
