package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiharai/invoice-service/internal/application"
	"github.com/shiharai/invoice-service/internal/application/services"
	"github.com/shiharai/invoice-service/internal/domain"
	"github.com/shiharai/invoice-service/internal/infrastructure/persistence/postgres"
	"github.com/shiharai/invoice-service/internal/interfaces/rest/handlers"
	"github.com/shiharai/invoice-service/internal/interfaces/rest/middleware"
)

// In-memory ports so the full middleware + handler chain runs without a
// database.

type memAccounts struct {
	byEmail map[string]*domain.Account
	hashes  map[string]string
}

func newMemAccounts() *memAccounts {
	return &memAccounts{byEmail: map[string]*domain.Account{}, hashes: map[string]string{}}
}

func (m *memAccounts) CreateWithPassword(_ context.Context, account *domain.Account, passwordHash string) error {
	account.ID = fmt.Sprintf("acct-%d", len(m.byEmail)+1)
	account.CreatedAt = time.Now()
	account.UpdatedAt = account.CreatedAt
	m.byEmail[account.Email] = account
	m.hashes[account.ID] = passwordHash
	return nil
}

func (m *memAccounts) FindByEmail(_ context.Context, email string) (*domain.Account, error) {
	account, ok := m.byEmail[email]
	if !ok {
		return nil, postgres.ErrAccountNotFound
	}
	return account, nil
}

func (m *memAccounts) FindByID(_ context.Context, id string) (*domain.Account, error) {
	for _, account := range m.byEmail {
		if account.ID == id {
			return account, nil
		}
	}
	return nil, postgres.ErrAccountNotFound
}

func (m *memAccounts) PasswordHashByAccountID(_ context.Context, accountID string) (string, error) {
	hash, ok := m.hashes[accountID]
	if !ok {
		return "", postgres.ErrAccountNotFound
	}
	return hash, nil
}

type memInvoices struct {
	rows []*domain.Invoice
}

func (m *memInvoices) Insert(_ context.Context, invoice *domain.Invoice) error {
	invoice.ID = fmt.Sprintf("inv-%d", len(m.rows)+1)
	invoice.CreatedAt = time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	invoice.UpdatedAt = invoice.CreatedAt
	m.rows = append(m.rows, invoice)
	return nil
}

func (m *memInvoices) ListByOwner(_ context.Context, userID string, _, _ *time.Time) ([]*domain.Invoice, error) {
	var out []*domain.Invoice
	for _, row := range m.rows {
		if row.UserID == userID {
			out = append(out, row)
		}
	}
	return out, nil
}

type memTokens struct{}

func (memTokens) Generate(account *domain.Account) (string, error) {
	return "tok-" + account.ID, nil
}

func (memTokens) Verify(token string) (*application.TokenClaims, error) {
	id, ok := strings.CutPrefix(token, "tok-")
	if !ok {
		return nil, fmt.Errorf("bad token")
	}
	return &application.TokenClaims{AccountID: id}, nil
}

func newTestServer(t *testing.T) (http.Handler, *memAccounts) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	accounts := newMemAccounts()
	invoices := &memInvoices{}
	tokens := memTokens{}

	calc := domain.NewCalculator(domain.MustRate("0.04"), domain.MustRate("0.10"))
	h := handlers.NewHandlers(
		services.NewAuthService(accounts, tokens),
		services.NewInvoiceService(invoices, calc),
		logger,
	)

	authenticate := middleware.Authenticate(tokens, accounts, logger)
	router := http.Handler(handlers.NewRouter(h, authenticate))
	router = middleware.Recovery(logger)(router)
	router = middleware.TraceID()(router)

	return router, accounts
}

func doJSON(t *testing.T, handler http.Handler, method, target, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func register(t *testing.T, handler http.Handler, email string) string {
	t.Helper()

	rec := doJSON(t, handler, http.MethodPost, "/api/v1/auth/register", "",
		fmt.Sprintf(`{"email":%q,"password":"s3cret-password"}`, email))
	require.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		Token string `json:"jwt"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(t, body.Token)
	return body.Token
}

func TestAuthEndpoints(t *testing.T) {
	t.Run("register returns a token and the account", func(t *testing.T) {
		handler, _ := newTestServer(t)

		rec := doJSON(t, handler, http.MethodPost, "/api/v1/auth/register", "",
			`{"email":"Alice@Example.com","password":"s3cret-password"}`)

		require.Equal(t, http.StatusCreated, rec.Code)

		var body struct {
			Token   string `json:"jwt"`
			Account struct {
				ID     string `json:"id"`
				Email  string `json:"email"`
				Status string `json:"status"`
			} `json:"account"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.NotEmpty(t, body.Token)
		assert.Contains(t, rec.Body.String(), `"jwt":`)
		assert.Equal(t, "alice@example.com", body.Account.Email)
		assert.Equal(t, "verified", body.Account.Status)
	})

	t.Run("login with bad credentials returns the opaque 401", func(t *testing.T) {
		handler, _ := newTestServer(t)
		register(t, handler, "alice@example.com")

		rec := doJSON(t, handler, http.MethodPost, "/api/v1/auth/login", "",
			`{"email":"alice@example.com","password":"wrong"}`)

		require.Equal(t, http.StatusUnauthorized, rec.Code)

		var body struct {
			Error struct {
				Code    string `json:"code"`
				Message string `json:"message"`
				TraceID string `json:"trace_id"`
			} `json:"error"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "LOGIN_FAILED", body.Error.Code)
		assert.Equal(t, "Invalid email or password", body.Error.Message)
		assert.NotEmpty(t, body.Error.TraceID)
	})

	t.Run("register with a malformed body is a 400", func(t *testing.T) {
		handler, _ := newTestServer(t)

		rec := doJSON(t, handler, http.MethodPost, "/api/v1/auth/register", "", `{not json`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestInvoiceEndpoints(t *testing.T) {
	t.Run("create renders derived amounts as fixed-point strings", func(t *testing.T) {
		handler, _ := newTestServer(t)
		token := register(t, handler, "alice@example.com")

		rec := doJSON(t, handler, http.MethodPost, "/api/v1/invoices", token,
			`{"issue_date":"2026-01-10","payment_amount":100000,"payment_due_date":"2026-02-10"}`)

		require.Equal(t, http.StatusCreated, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "100000.00", body["payment_amount"])
		assert.Equal(t, "4000.00", body["fee"])
		assert.Equal(t, "0.0400", body["fee_rate"])
		assert.Equal(t, "400.00", body["tax_amount"])
		assert.Equal(t, "0.1000", body["tax_rate"])
		assert.Equal(t, "104400.00", body["total_amount"])
		assert.Equal(t, "2026-01-10", body["issue_date"])
		assert.Equal(t, "2026-02-10", body["payment_due_date"])
	})

	t.Run("create accepts the amount as a quoted string", func(t *testing.T) {
		handler, _ := newTestServer(t)
		token := register(t, handler, "alice@example.com")

		rec := doJSON(t, handler, http.MethodPost, "/api/v1/invoices", token,
			`{"issue_date":"2026-01-10","payment_amount":"100000.33","payment_due_date":"2026-02-10"}`)

		require.Equal(t, http.StatusCreated, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "4000.01", body["fee"])
		assert.Equal(t, "104400.34", body["total_amount"])
	})

	t.Run("create with empty body reports every violated field", func(t *testing.T) {
		handler, _ := newTestServer(t)
		token := register(t, handler, "alice@example.com")

		rec := doJSON(t, handler, http.MethodPost, "/api/v1/invoices", token, `{}`)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		var body struct {
			Error struct {
				Code    string   `json:"code"`
				Details []string `json:"details"`
			} `json:"error"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "INVOICE_CREATION_FAILED", body.Error.Code)
		assert.Equal(t, []string{
			"issue_date can't be blank",
			"payment_amount can't be blank",
			"payment_due_date can't be blank",
		}, body.Error.Details)
	})

	t.Run("list wraps invoices and scopes them to the caller", func(t *testing.T) {
		handler, _ := newTestServer(t)
		aliceToken := register(t, handler, "alice@example.com")
		bobToken := register(t, handler, "bob@example.com")

		rec := doJSON(t, handler, http.MethodPost, "/api/v1/invoices", aliceToken,
			`{"issue_date":"2026-01-10","payment_amount":1000,"payment_due_date":"2026-02-10"}`)
		require.Equal(t, http.StatusCreated, rec.Code)

		rec = doJSON(t, handler, http.MethodGet, "/api/v1/invoices", bobToken, "")
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Invoices []map[string]any `json:"invoices"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Empty(t, body.Invoices)
	})

	t.Run("list rejects a malformed date bound", func(t *testing.T) {
		handler, _ := newTestServer(t)
		token := register(t, handler, "alice@example.com")

		rec := doJSON(t, handler, http.MethodGet, "/api/v1/invoices?start_date=10-01-2026", token, "")

		require.Equal(t, http.StatusBadRequest, rec.Code)

		var body struct {
			Error struct {
				Code    string `json:"code"`
				Message string `json:"message"`
			} `json:"error"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "INVALID_DATE_FORMAT", body.Error.Code)
		assert.Equal(t, "Invalid date format. Use YYYY-MM-DD.", body.Error.Message)
	})

	t.Run("requests without a token are rejected", func(t *testing.T) {
		handler, _ := newTestServer(t)

		rec := doJSON(t, handler, http.MethodGet, "/api/v1/invoices", "", "")

		require.Equal(t, http.StatusUnauthorized, rec.Code)

		var body struct {
			Error struct {
				Code    string `json:"code"`
				Message string `json:"message"`
			} `json:"error"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "UNAUTHORIZED", body.Error.Code)
		assert.Equal(t, "Invalid or expired token", body.Error.Message)
	})

	t.Run("a token for a deleted account is rejected", func(t *testing.T) {
		handler, accounts := newTestServer(t)
		token := register(t, handler, "alice@example.com")
		delete(accounts.byEmail, "alice@example.com")

		rec := doJSON(t, handler, http.MethodGet, "/api/v1/invoices", token, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestTraceID(t *testing.T) {
	t.Run("echoes a caller-supplied trace id", func(t *testing.T) {
		handler, _ := newTestServer(t)

		req := httptest.NewRequest(http.MethodGet, "/up", nil)
		req.Header.Set("X-Trace-Id", "trace-123")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "trace-123", rec.Header().Get("X-Trace-Id"))
	})

	t.Run("generates one when the caller sends none", func(t *testing.T) {
		handler, _ := newTestServer(t)

		req := httptest.NewRequest(http.MethodGet, "/up", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.NotEmpty(t, rec.Header().Get("X-Trace-Id"))
	})
}

func TestHealth(t *testing.T) {
	handler, _ := newTestServer(t)

	rec := doJSON(t, handler, http.MethodGet, "/up", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"up"}`, rec.Body.String())
}
