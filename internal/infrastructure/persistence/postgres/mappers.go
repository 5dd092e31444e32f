package postgres

import (
	"github.com/shiharai/invoice-service/internal/domain"
)

// toDomainInvoice: maps db model to domain entity
func toDomainInvoice(m InvoiceModel) *domain.Invoice {
	paymentAmount := domain.MustMoney(m.PaymentAmount)
	return &domain.Invoice{
		ID:             m.ID,
		UserID:         m.UserID,
		IssueDate:      m.IssueDate.UTC(),
		PaymentAmount:  &paymentAmount,
		Fee:            domain.MustMoney(m.Fee),
		FeeRate:        domain.MustRate(m.FeeRate),
		TaxAmount:      domain.MustMoney(m.TaxAmount),
		TaxRate:        domain.MustRate(m.TaxRate),
		TotalAmount:    domain.MustMoney(m.TotalAmount),
		PaymentDueDate: m.PaymentDueDate.UTC(),
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// toDomainAccount: maps db model to domain entity
func toDomainAccount(m AccountModel) *domain.Account {
	return &domain.Account{
		ID:        m.ID,
		Email:     m.Email,
		Status:    domain.AccountStatus(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
