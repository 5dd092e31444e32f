package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/shiharai/invoice-service/internal/domain"
	"github.com/shiharai/invoice-service/internal/infrastructure/persistence"
)

var ErrInvoiceNotFound = errors.New("invoice not found")

type InvoiceRepository struct {
	db *persistence.DB
}

func NewInvoiceRepository(db *persistence.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

// Insert persists a validated invoice. The database assigns identity and
// timestamps, which are written back onto the entity. The table's CHECK and
// foreign key constraints back up domain validation at commit time.
func (r *InvoiceRepository) Insert(ctx context.Context, invoice *domain.Invoice) error {
	if invoice.PaymentAmount == nil {
		return domain.NewMissingAmountError()
	}

	query := `
		INSERT INTO invoices (
			user_id, issue_date, payment_amount, fee, fee_rate,
			tax_amount, tax_rate, total_amount, payment_due_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`

	err := r.db.Pool.QueryRow(ctx, query,
		invoice.UserID,
		invoice.IssueDate,
		invoice.PaymentAmount.Decimal(),
		invoice.Fee.Decimal(),
		invoice.FeeRate.Decimal(),
		invoice.TaxAmount.Decimal(),
		invoice.TaxRate.Decimal(),
		invoice.TotalAmount.Decimal(),
		invoice.PaymentDueDate,
	).Scan(&invoice.ID, &invoice.CreatedAt, &invoice.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create invoice: %w", err)
	}

	return nil
}

// FindByID retrieves an invoice
func (r *InvoiceRepository) FindByID(ctx context.Context, id string) (*domain.Invoice, error) {
	query := `
		SELECT id, user_id, issue_date, payment_amount, fee, fee_rate,
		       tax_amount, tax_rate, total_amount, payment_due_date,
		       created_at, updated_at
		FROM invoices WHERE id = $1
	`

	row := r.db.Pool.QueryRow(ctx, query, id)
	return scanInvoice(row)
}

// ListByOwner retrieves invoices for one owner, optionally bounded by an
// inclusive payment_due_date range, ordered payment_due_date DESC with ties
// broken by created_at DESC. The owner id always comes from the authenticated
// caller, never from a query parameter.
func (r *InvoiceRepository) ListByOwner(ctx context.Context, userID string, startDate, endDate *time.Time) ([]*domain.Invoice, error) {
	query := `
		SELECT id, user_id, issue_date, payment_amount, fee, fee_rate,
		       tax_amount, tax_rate, total_amount, payment_due_date,
		       created_at, updated_at
		FROM invoices WHERE user_id = $1
	`
	args := []any{userID}

	if startDate != nil {
		args = append(args, *startDate)
		query += fmt.Sprintf(" AND payment_due_date >= $%d", len(args))
	}
	if endDate != nil {
		args = append(args, *endDate)
		query += fmt.Sprintf(" AND payment_due_date <= $%d", len(args))
	}
	query += " ORDER BY payment_due_date DESC, created_at DESC"

	rows, err := r.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query invoices by user_id: %w", err)
	}

	results, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*domain.Invoice, error) {
		var m InvoiceModel
		err := row.Scan(
			&m.ID, &m.UserID, &m.IssueDate, &m.PaymentAmount, &m.Fee, &m.FeeRate,
			&m.TaxAmount, &m.TaxRate, &m.TotalAmount, &m.PaymentDueDate,
			&m.CreatedAt, &m.UpdatedAt,
		)
		return toDomainInvoice(m), err
	})

	if err != nil {
		return nil, fmt.Errorf("scan invoices: %w", err)
	}
	return results, nil
}

// scanInvoice converts a database row into a domain Invoice.
// Returns ErrInvoiceNotFound if the row doesn't exist.
func scanInvoice(row pgx.Row) (*domain.Invoice, error) {
	var m InvoiceModel
	err := row.Scan(
		&m.ID, &m.UserID, &m.IssueDate, &m.PaymentAmount, &m.Fee, &m.FeeRate,
		&m.TaxAmount, &m.TaxRate, &m.TotalAmount, &m.PaymentDueDate,
		&m.CreatedAt, &m.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("failed to scan invoice: %w", err)
	}
	return toDomainInvoice(m), nil
}
