package services_test

import (
	"context"
	"fmt"
	"time"

	"github.com/shiharai/invoice-service/internal/application"
	"github.com/shiharai/invoice-service/internal/domain"
	"github.com/shiharai/invoice-service/internal/infrastructure/persistence/postgres"
)

// In-memory fakes for the application ports. They record arguments and hand
// back canned results so service behavior is testable without a database.

type fakeInvoiceRepo struct {
	insertErr  error
	inserted   []*domain.Invoice
	listResult []*domain.Invoice
	listErr    error

	listOwner string
	listStart *time.Time
	listEnd   *time.Time
}

func (f *fakeInvoiceRepo) Insert(_ context.Context, invoice *domain.Invoice) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	invoice.ID = fmt.Sprintf("inv-%d", len(f.inserted)+1)
	invoice.CreatedAt = time.Now()
	invoice.UpdatedAt = invoice.CreatedAt
	f.inserted = append(f.inserted, invoice)
	return nil
}

func (f *fakeInvoiceRepo) ListByOwner(_ context.Context, userID string, startDate, endDate *time.Time) ([]*domain.Invoice, error) {
	f.listOwner = userID
	f.listStart = startDate
	f.listEnd = endDate
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listResult, nil
}

type fakeAccountRepo struct {
	createErr error
	accounts  map[string]*domain.Account // by email
	hashes    map[string]string          // by account id
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{
		accounts: make(map[string]*domain.Account),
		hashes:   make(map[string]string),
	}
}

func (f *fakeAccountRepo) CreateWithPassword(_ context.Context, account *domain.Account, passwordHash string) error {
	if f.createErr != nil {
		return f.createErr
	}
	account.ID = fmt.Sprintf("acct-%d", len(f.accounts)+1)
	account.CreatedAt = time.Now()
	account.UpdatedAt = account.CreatedAt
	f.accounts[account.Email] = account
	f.hashes[account.ID] = passwordHash
	return nil
}

func (f *fakeAccountRepo) FindByEmail(_ context.Context, email string) (*domain.Account, error) {
	account, ok := f.accounts[email]
	if !ok {
		return nil, postgres.ErrAccountNotFound
	}
	return account, nil
}

func (f *fakeAccountRepo) FindByID(_ context.Context, id string) (*domain.Account, error) {
	for _, account := range f.accounts {
		if account.ID == id {
			return account, nil
		}
	}
	return nil, postgres.ErrAccountNotFound
}

func (f *fakeAccountRepo) PasswordHashByAccountID(_ context.Context, accountID string) (string, error) {
	hash, ok := f.hashes[accountID]
	if !ok {
		return "", postgres.ErrAccountNotFound
	}
	return hash, nil
}

type fakeTokenService struct{}

func (fakeTokenService) Generate(account *domain.Account) (string, error) {
	return "token-" + account.ID, nil
}

func (fakeTokenService) Verify(token string) (*application.TokenClaims, error) {
	return nil, application.NewUnauthorizedError()
}
