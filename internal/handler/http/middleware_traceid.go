package http

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/pathforge/pathforge/internal/utils"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID assigns every request a trace identifier, either taken from the
// incoming X-Trace-ID header or freshly generated. The ID is attached to the
// request-scoped logger and echoed back in the response headers.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	uuids := utils.NewUUIDGenerator()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = uuids.Generate()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
		r = r.WithContext(l.WithContext(ctx))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}
