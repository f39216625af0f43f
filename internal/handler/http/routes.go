package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router of the whole /api surface.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)

		r.Get("/api/mood/public", h.publicBoard)
		// the share token travels in the path instead of the header
		r.Get("/api/mood/shared/{token}", h.sharedMoods)

		r.Get("/api/version", h.getServerVersion)
	})

	// session routes
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/mood", h.createMood)
		r.Get("/api/mood/monthly/{year}/{month}", h.monthlySummary)
		r.Put("/api/mood/{id}", h.updateMood)
		r.Delete("/api/mood/{id}", h.deleteMood)

		r.Get("/api/mood/stats", h.stats)
		r.Get("/api/mood/dashboard", h.dashboard)
		r.Post("/api/mood/suggest", h.suggest)

		r.Post("/api/mood/share", h.share)
		r.Post("/api/mood/unshare", h.unshare)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
