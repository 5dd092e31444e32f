package rest

import (
	"context"

	"github.com/shiharai/invoice-service/internal/domain"
)

type contextKey string

const (
	traceIDKey contextKey = "trace_id"
	accountKey contextKey = "account"
)

func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey, traceID)
}

// TraceIDFromContext returns the request trace ID, or "" when the trace
// middleware did not run.
func TraceIDFromContext(ctx context.Context) string {
	traceID, _ := ctx.Value(traceIDKey).(string)
	return traceID
}

func WithAccount(ctx context.Context, account *domain.Account) context.Context {
	return context.WithValue(ctx, accountKey, account)
}

// AccountFromContext returns the authenticated account, or nil for requests
// that did not pass the authentication middleware.
func AccountFromContext(ctx context.Context) *domain.Account {
	account, _ := ctx.Value(accountKey).(*domain.Account)
	return account
}
