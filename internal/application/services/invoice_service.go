// Package services orchestrates the domain against the persistence and token
// ports: invoice creation/listing and account registration/login.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shiharai/invoice-service/internal/application"
	"github.com/shiharai/invoice-service/internal/domain"
	"github.com/shiharai/invoice-service/internal/infrastructure/persistence"
)

// CreateInvoiceCommand carries the client-supplied invoice fields as wire
// strings. The owner, rates and derived amounts are never client input.
type CreateInvoiceCommand struct {
	IssueDate      string
	PaymentAmount  string
	PaymentDueDate string
}

type InvoiceService struct {
	invoiceRepo application.InvoiceRepository
	calc        *domain.Calculator
}

func NewInvoiceService(invoiceRepo application.InvoiceRepository, calc *domain.Calculator) *InvoiceService {
	return &InvoiceService{
		invoiceRepo: invoiceRepo,
		calc:        calc,
	}
}

// Create derives and validates an invoice for the authenticated owner, then
// persists it. Derivation always runs before validation, and validation
// collects every violation. An unparseable date enters validation as a
// missing field, the same way the persistence layer would reject a NULL.
func (s *InvoiceService) Create(ctx context.Context, ownerID string, cmd CreateInvoiceCommand) (*domain.Invoice, error) {
	params := domain.InvoiceParams{UserID: ownerID}

	if d, err := domain.ParseDate(cmd.IssueDate); err == nil {
		params.IssueDate = d
	}
	if d, err := domain.ParseDate(cmd.PaymentDueDate); err == nil {
		params.PaymentDueDate = d
	}
	if cmd.PaymentAmount != "" {
		amount, err := domain.NewMoney(cmd.PaymentAmount)
		if err != nil {
			return nil, application.NewInvoiceCreationRejectedError("payment_amount is not a number", err)
		}
		params.PaymentAmount = &amount
	}

	invoice, err := domain.NewInvoice(params, s.calc)
	if err != nil {
		return nil, application.NewInternalError(err)
	}

	if err := invoice.Validate(); err != nil {
		verr, _ := domain.AsValidationError(err)
		return nil, application.NewInvoiceCreationFailedError(verr)
	}

	if err := s.invoiceRepo.Insert(ctx, invoice); err != nil {
		// The table constraints back up domain validation; surface them the
		// same way a validation failure would surface.
		switch {
		case persistence.IsCheckViolation(err):
			return nil, application.NewInvoiceCreationRejectedError("payment_amount must be greater than 0", err)
		case persistence.IsForeignKeyViolation(err):
			return nil, application.NewInvoiceCreationRejectedError("user_id must exist", err)
		default:
			return nil, application.NewInternalError(fmt.Errorf("insert invoice: %w", err))
		}
	}

	return invoice, nil
}

// List returns the owner's invoices, optionally bounded by an inclusive
// payment_due_date range given as YYYY-MM-DD strings. A bound that fails to
// parse is an INVALID_DATE_FORMAT error, never a silently-empty result.
func (s *InvoiceService) List(ctx context.Context, ownerID string, startDate, endDate string) ([]*domain.Invoice, error) {
	var start, end *time.Time

	if startDate != "" {
		d, err := domain.ParseDate(startDate)
		if err != nil {
			return nil, application.NewInvalidDateFormatError(err)
		}
		start = &d
	}
	if endDate != "" {
		d, err := domain.ParseDate(endDate)
		if err != nil {
			return nil, application.NewInvalidDateFormatError(err)
		}
		end = &d
	}

	invoices, err := s.invoiceRepo.ListByOwner(ctx, ownerID, start, end)
	if err != nil {
		return nil, application.NewInternalError(fmt.Errorf("list invoices: %w", err))
	}
	return invoices, nil
}
