package http

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-feed-sync/internal/utils"
)

const (
	traceIDHeader = "X-Trace-ID"

	// longer ids from the client are replaced rather than logged
	maxTraceIDLength = 128
)

// withTraceID attaches a request-scoped logger carrying trace_id to the
// context. The feed client sends its own id in X-Trace-ID, which is reused so
// both sides log the same value; otherwise a fresh UUID is generated. The id
// is echoed back in the response header and stored with [utils.WithTraceID].
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" || len(traceID) > maxTraceIDLength {
			traceID = h.traceIDs.Generate()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})

		w.Header().Set(traceIDHeader, traceID)
		ctx := utils.WithTraceID(l.WithContext(r.Context()), traceID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
