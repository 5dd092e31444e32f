package testhelpers

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/shiharai/invoice-service/internal/application/services"
	"github.com/shiharai/invoice-service/internal/domain"
	"github.com/shiharai/invoice-service/internal/infrastructure/auth"
	"github.com/shiharai/invoice-service/internal/infrastructure/persistence/postgres"
)

// CreateAccount persists a verified account with a real bcrypt hash and
// returns it.
func CreateAccount(t *testing.T, ctx context.Context, repo *postgres.AccountRepository) *domain.Account {
	t.Helper()

	email := "user-" + uuid.NewString() + "@example.com"
	account, err := domain.NewAccount(email)
	require.NoError(t, err)

	hash, err := auth.HashPassword("s3cret-password")
	require.NoError(t, err)

	require.NoError(t, repo.CreateWithPassword(ctx, account, hash))
	require.NotEmpty(t, account.ID)

	return account
}

// DefaultCreateInvoiceCommand returns a valid invoice creation command.
func DefaultCreateInvoiceCommand() services.CreateInvoiceCommand {
	return services.CreateInvoiceCommand{
		IssueDate:      "2026-01-10",
		PaymentAmount:  "100000",
		PaymentDueDate: "2026-02-10",
	}
}

// CreateInvoice persists an invoice for the owner through the service so the
// derived fields are real.
func CreateInvoice(t *testing.T, ctx context.Context, svc *services.InvoiceService, ownerID string, cmd services.CreateInvoiceCommand) *domain.Invoice {
	t.Helper()

	invoice, err := svc.Create(ctx, ownerID, cmd)
	require.NoError(t, err)
	require.NotEmpty(t, invoice.ID)

	return invoice
}
