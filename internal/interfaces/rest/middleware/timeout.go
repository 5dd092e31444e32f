package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/shiharai/invoice-service/internal/interfaces/rest"
)

// Timeout cancels the request context and answers 503 after the deadline.
// The timeout body is built per request so it carries the trace ID like
// every other error envelope; TraceID must therefore wrap Timeout.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			r = r.WithContext(ctx)

			body := fmt.Sprintf(
				`{"error":{"code":"TIMEOUT","message":"Request timeout","trace_id":%q}}`,
				rest.TraceIDFromContext(r.Context()),
			)

			timeoutHandler := http.TimeoutHandler(next, timeout, body)
			timeoutHandler.ServeHTTP(w, r)
		})
	}
}
