package handlers

import "net/http"

// NewRouter registers every route. The invoice routes sit behind the supplied
// authentication middleware; auth and health routes stay open.
func NewRouter(h *Handlers, authenticate func(http.Handler) http.Handler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/v1/auth/register", h.Register)
	mux.HandleFunc("POST /api/v1/auth/login", h.Login)
	mux.HandleFunc("GET /up", h.Up)

	mux.Handle("POST /api/v1/invoices", authenticate(http.HandlerFunc(h.CreateInvoice)))
	mux.Handle("GET /api/v1/invoices", authenticate(http.HandlerFunc(h.ListInvoices)))

	return mux
}
