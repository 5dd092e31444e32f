package rest

import (
	"time"

	"github.com/shiharai/invoice-service/internal/domain"
)

// AccountResponse is the wire shape of an account.
type AccountResponse struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Status string `json:"status"`
}

// InvoiceResponse is the wire shape of an invoice. Amounts are fixed 2-digit
// decimal strings and rates fixed 4-digit strings so clients never see float
// artifacts; dates are YYYY-MM-DD and timestamps RFC 3339.
type InvoiceResponse struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	IssueDate      string    `json:"issue_date"`
	PaymentAmount  string    `json:"payment_amount"`
	Fee            string    `json:"fee"`
	FeeRate        string    `json:"fee_rate"`
	TaxAmount      string    `json:"tax_amount"`
	TaxRate        string    `json:"tax_rate"`
	TotalAmount    string    `json:"total_amount"`
	PaymentDueDate string    `json:"payment_due_date"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		ID:     a.ID,
		Email:  a.Email,
		Status: string(a.Status),
	}
}

func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	amount := ""
	if inv.PaymentAmount != nil {
		amount = inv.PaymentAmount.String()
	}

	return InvoiceResponse{
		ID:             inv.ID,
		UserID:         inv.UserID,
		IssueDate:      domain.FormatDate(inv.IssueDate),
		PaymentAmount:  amount,
		Fee:            inv.Fee.String(),
		FeeRate:        inv.FeeRate.String(),
		TaxAmount:      inv.TaxAmount.String(),
		TaxRate:        inv.TaxRate.String(),
		TotalAmount:    inv.TotalAmount.String(),
		PaymentDueDate: domain.FormatDate(inv.PaymentDueDate),
		CreatedAt:      inv.CreatedAt,
		UpdatedAt:      inv.UpdatedAt,
	}
}

func ToInvoiceResponses(invoices []*domain.Invoice) []InvoiceResponse {
	responses := make([]InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		responses = append(responses, ToInvoiceResponse(inv))
	}
	return responses
}
