package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/shiharai/invoice-service/internal/domain"
	"github.com/shiharai/invoice-service/internal/infrastructure/persistence"
)

var ErrAccountNotFound = errors.New("account not found")

type AccountRepository struct {
	db *persistence.DB
}

func NewAccountRepository(db *persistence.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// CreateWithPassword inserts the account and its password hash in one
// transaction, so a failed hash insert never leaves an account without
// credentials. The unique index on email surfaces as a unique violation.
func (r *AccountRepository) CreateWithPassword(ctx context.Context, account *domain.Account, passwordHash string) error {
	tx, err := r.db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO accounts (email, status)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`, account.Email, string(account.Status)).Scan(&account.ID, &account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO account_password_hashes (account_id, password_hash)
		VALUES ($1, $2)
	`, account.ID, passwordHash)
	if err != nil {
		return fmt.Errorf("failed to store password hash: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// FindByEmail retrieves an account by its normalized email
func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	query := `
		SELECT id, email, status, created_at, updated_at
		FROM accounts WHERE email = $1
	`

	row := r.db.Pool.QueryRow(ctx, query, email)
	return scanAccount(row)
}

// FindByID retrieves an account
func (r *AccountRepository) FindByID(ctx context.Context, id string) (*domain.Account, error) {
	query := `
		SELECT id, email, status, created_at, updated_at
		FROM accounts WHERE id = $1
	`

	row := r.db.Pool.QueryRow(ctx, query, id)
	return scanAccount(row)
}

// PasswordHashByAccountID returns the stored bcrypt hash for an account.
func (r *AccountRepository) PasswordHashByAccountID(ctx context.Context, accountID string) (string, error) {
	var hash string
	err := r.db.Pool.QueryRow(ctx, `
		SELECT password_hash FROM account_password_hashes WHERE account_id = $1
	`, accountID).Scan(&hash)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrAccountNotFound
		}
		return "", fmt.Errorf("failed to load password hash: %w", err)
	}
	return hash, nil
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var m AccountModel
	err := row.Scan(&m.ID, &m.Email, &m.Status, &m.CreatedAt, &m.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to scan account: %w", err)
	}
	return toDomainAccount(m), nil
}
