package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/shiharai/invoice-service/internal/interfaces/rest"
)

const traceHeader = "X-Trace-Id"

// TraceID attaches a trace ID to every request: the caller's X-Trace-Id when
// present, otherwise a fresh UUID. The ID is echoed on the response so every
// error envelope can be matched to a log line.
func TraceID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			traceID := r.Header.Get(traceHeader)
			if traceID == "" {
				traceID = uuid.NewString()
			}

			w.Header().Set(traceHeader, traceID)

			ctx := rest.WithTraceID(r.Context(), traceID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
