package application

import (
	"context"
	"time"

	"github.com/shiharai/invoice-service/internal/domain"
)

// InvoiceRepository is the port for invoice persistence.
type InvoiceRepository interface {
	Insert(ctx context.Context, invoice *domain.Invoice) error
	ListByOwner(ctx context.Context, userID string, startDate, endDate *time.Time) ([]*domain.Invoice, error)
}

// AccountRepository is the port for account persistence.
type AccountRepository interface {
	CreateWithPassword(ctx context.Context, account *domain.Account, passwordHash string) error
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	PasswordHashByAccountID(ctx context.Context, accountID string) (string, error)
}

// TokenClaims is the verified identity a bearer token carries.
type TokenClaims struct {
	AccountID string
	Email     string
}

// TokenService is the port for bearer token issuance and verification.
type TokenService interface {
	Generate(account *domain.Account) (string, error)
	Verify(token string) (*TokenClaims, error)
}
