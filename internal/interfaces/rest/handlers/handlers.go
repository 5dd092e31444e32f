// Package handlers exposes the REST endpoints: registration, login, invoice
// creation/listing and the health probe.
package handlers

import (
	"encoding/json"
	"log/slog"

	"github.com/shiharai/invoice-service/internal/application/services"
)

type Handlers struct {
	authService    *services.AuthService
	invoiceService *services.InvoiceService
	logger         *slog.Logger
}

func NewHandlers(
	authService *services.AuthService,
	invoiceService *services.InvoiceService,
	logger *slog.Logger,
) *Handlers {
	return &Handlers{
		authService:    authService,
		invoiceService: invoiceService,
		logger:         logger,
	}
}

// flexString accepts a JSON string or number and keeps the raw text, so an
// amount arrives intact whether the client quotes it or not.
type flexString string

func (s *flexString) UnmarshalJSON(data []byte) error {
	raw := string(data)
	if raw == "null" {
		*s = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = flexString(v)
		return nil
	}
	*s = flexString(raw)
	return nil
}
