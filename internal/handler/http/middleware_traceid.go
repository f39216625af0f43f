package http

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/mood-journal/internal/utils"
)

const (
	traceIDHeader = "X-Trace-ID"

	// maxTraceIDLength caps client supplied trace ids; longer ones are replaced.
	maxTraceIDLength = 128
)

// withTraceID propagates the caller's X-Trace-ID (or a fresh one) into the
// request logger and echoes it back in the response headers.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" || len(traceID) > maxTraceIDLength {
			traceID = utils.NewTraceID()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(l.WithContext(r.Context())))
	})
}
