package postgres

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceModel mirrors the invoices table. Monetary columns are numeric(15,2)
// and rate columns numeric(5,4); decimal.Decimal round-trips them exactly.
type InvoiceModel struct {
	ID             string
	UserID         string
	IssueDate      time.Time
	PaymentAmount  decimal.Decimal
	Fee            decimal.Decimal
	FeeRate        decimal.Decimal
	TaxAmount      decimal.Decimal
	TaxRate        decimal.Decimal
	TotalAmount    decimal.Decimal
	PaymentDueDate time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// AccountModel mirrors the accounts table.
type AccountModel struct {
	ID        string
	Email     string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
