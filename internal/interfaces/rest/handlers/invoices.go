package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/shiharai/invoice-service/internal/application"
	"github.com/shiharai/invoice-service/internal/application/services"
	"github.com/shiharai/invoice-service/internal/interfaces/rest"
)

type createInvoiceRequest struct {
	IssueDate      string     `json:"issue_date"`
	PaymentAmount  flexString `json:"payment_amount"`
	PaymentDueDate string     `json:"payment_due_date"`
}

type invoiceListResponse struct {
	Invoices []rest.InvoiceResponse `json:"invoices"`
}

func (h *Handlers) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	account := rest.AccountFromContext(r.Context())
	if account == nil {
		rest.WriteError(w, r, application.NewUnauthorizedError(), h.logger)
		return
	}

	var req createInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.WriteError(w, r, application.NewBadRequestError("Invalid request body"), h.logger)
		return
	}

	cmd := services.CreateInvoiceCommand{
		IssueDate:      req.IssueDate,
		PaymentAmount:  string(req.PaymentAmount),
		PaymentDueDate: req.PaymentDueDate,
	}

	invoice, err := h.invoiceService.Create(r.Context(), account.ID, cmd)
	if err != nil {
		rest.WriteError(w, r, err, h.logger)
		return
	}

	rest.WriteJSON(w, http.StatusCreated, rest.ToInvoiceResponse(invoice))
}

func (h *Handlers) ListInvoices(w http.ResponseWriter, r *http.Request) {
	account := rest.AccountFromContext(r.Context())
	if account == nil {
		rest.WriteError(w, r, application.NewUnauthorizedError(), h.logger)
		return
	}

	query := r.URL.Query()
	invoices, err := h.invoiceService.List(r.Context(), account.ID, query.Get("start_date"), query.Get("end_date"))
	if err != nil {
		rest.WriteError(w, r, err, h.logger)
		return
	}

	rest.WriteJSON(w, http.StatusOK, invoiceListResponse{
		Invoices: rest.ToInvoiceResponses(invoices),
	})
}
