package domain

import (
	"time"
)

// Invoice is the billing aggregate. The fee, tax and total fields are always
// derived from the payment amount and rates; they are never accepted from a
// caller. The owner reference is set once at construction and never changes.
type Invoice struct {
	ID             string
	UserID         string
	IssueDate      time.Time
	PaymentAmount  *Money
	Fee            Money
	FeeRate        Rate
	TaxAmount      Money
	TaxRate        Rate
	TotalAmount    Money
	PaymentDueDate time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// InvoiceParams are the construction inputs. PaymentAmount is a pointer so a
// missing amount can flow into validation as a presence failure instead of a
// silent zero. Nil rates resolve to the calculator defaults.
type InvoiceParams struct {
	UserID         string
	IssueDate      time.Time
	PaymentAmount  *Money
	PaymentDueDate time.Time
	FeeRate        *Rate
	TaxRate        *Rate
}

// NewInvoice builds an invoice candidate and immediately runs the derivation
// engine when a payment amount is present. Derivation failures from explicit
// bad rates propagate unchanged.
func NewInvoice(p InvoiceParams, calc *Calculator) (*Invoice, error) {
	inv := &Invoice{
		UserID:         p.UserID,
		IssueDate:      p.IssueDate,
		PaymentAmount:  p.PaymentAmount,
		PaymentDueDate: p.PaymentDueDate,
	}

	if p.PaymentAmount == nil {
		return inv, nil
	}

	derived, err := calc.Derive(p.PaymentAmount, p.FeeRate, p.TaxRate)
	if err != nil {
		return nil, err
	}
	inv.apply(derived)
	return inv, nil
}

// Recalculate re-runs the derivation engine against the invoice's current
// payment amount and rates. It must be called after any change to those
// fields and before every validate-and-persist pass. Re-running it with
// unchanged inputs yields identical derived fields.
func (inv *Invoice) Recalculate(calc *Calculator) error {
	derived, err := calc.Derive(inv.PaymentAmount, &inv.FeeRate, &inv.TaxRate)
	if err != nil {
		return err
	}
	inv.apply(derived)
	return nil
}

func (inv *Invoice) apply(d DerivedFields) {
	inv.FeeRate = d.FeeRate
	inv.TaxRate = d.TaxRate
	inv.Fee = d.Fee
	inv.TaxAmount = d.TaxAmount
	inv.TotalAmount = d.TotalAmount
}

// Validate checks every structural and business invariant of a fully-derived
// invoice candidate. All applicable checks run; the result is nil or a
// ValidationError listing each violated field in check order.
func (inv *Invoice) Validate() error {
	var fields []FieldError

	if inv.UserID == "" {
		fields = append(fields, FieldError{Field: "user_id", Message: "can't be blank"})
	}
	if inv.IssueDate.IsZero() {
		fields = append(fields, FieldError{Field: "issue_date", Message: "can't be blank"})
	}
	switch {
	case inv.PaymentAmount == nil:
		fields = append(fields, FieldError{Field: "payment_amount", Message: "can't be blank"})
	case !inv.PaymentAmount.IsPositive():
		fields = append(fields, FieldError{Field: "payment_amount", Message: "must be greater than 0"})
	}
	if inv.PaymentDueDate.IsZero() {
		fields = append(fields, FieldError{Field: "payment_due_date", Message: "can't be blank"})
	}
	if !inv.IssueDate.IsZero() && !inv.PaymentDueDate.IsZero() && inv.PaymentDueDate.Before(inv.IssueDate) {
		fields = append(fields, FieldError{Field: "payment_due_date", Message: "must be on or after issue_date"})
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
