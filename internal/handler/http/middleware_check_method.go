// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/mood-journal/internal/utils"
)

// CheckHTTPMethod returns the handler to register with
// [chi.Mux.MethodNotAllowed].
//
// A known path requested with a method it does not serve answers 404 instead
// of chi's 405, so callers cannot probe which paths exist. A request the
// router can in fact match is handed back to it unchanged.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}

		notFound(w, r)
	}
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteError(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
}
