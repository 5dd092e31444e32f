// Package rest carries the HTTP wire types: the error envelope, the JSON
// presenters and the request-scoped context values the middleware sets.
package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/shiharai/invoice-service/internal/application"
)

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	TraceID string   `json:"trace_id"`
	Details []string `json:"details,omitempty"`
}

// WriteError maps application errors to the HTTP error envelope. Anything
// that is not a ServiceError is treated as an internal failure so unexpected
// error text never reaches a client.
func WriteError(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	svcErr, ok := application.IsServiceError(err)
	if !ok {
		svcErr = application.NewInternalError(err)
	}

	traceID := TraceIDFromContext(r.Context())

	if svcErr.HTTPStatus >= http.StatusInternalServerError {
		logger.Error("request failed",
			"code", svcErr.Code,
			"error", err,
			"method", r.Method,
			"path", r.URL.Path,
			"trace_id", traceID,
		)
	}

	response := ErrorResponse{
		Error: ErrorDetail{
			Code:    svcErr.Code,
			Message: svcErr.Message,
			TraceID: traceID,
			Details: svcErr.Details,
		},
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(svcErr.HTTPStatus)
	json.NewEncoder(w).Encode(response)
}

// WriteJSON writes a success payload with the given status.
func WriteJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
