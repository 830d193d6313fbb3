package http

import (
	"net/http"

	"github.com/google/uuid"
)

const traceIDHeader = "X-Trace-ID"

// maxTraceIDLength caps caller-supplied trace ids; longer ones are replaced.
const maxTraceIDLength = 128

// withTraceID attaches a request-scoped logger stamped with the trace id
// and echoes the id back in the X-Trace-ID response header. A trace id sent
// by the caller is reused, otherwise a new one is generated.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" || len(traceID) > maxTraceIDLength {
			traceID = uuid.NewString()
		}

		l := h.logger.WithTraceID(traceID)
		r = r.WithContext(l.WithContext(r.Context()))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}
