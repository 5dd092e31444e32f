package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/shiharai/invoice-service/internal/application"
	"github.com/shiharai/invoice-service/internal/interfaces/rest"
)

// Authenticate verifies the Bearer token, loads the account it names and
// stores it on the request context. Every failure mode answers with the same
// 401 so callers cannot probe which accounts exist.
func Authenticate(tokens application.TokenService, accounts application.AccountRepository, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				rest.WriteError(w, r, application.NewUnauthorizedError(), logger)
				return
			}

			claims, err := tokens.Verify(token)
			if err != nil {
				rest.WriteError(w, r, application.NewUnauthorizedError(), logger)
				return
			}

			account, err := accounts.FindByID(r.Context(), claims.AccountID)
			if err != nil {
				rest.WriteError(w, r, application.NewUnauthorizedError(), logger)
				return
			}

			ctx := rest.WithAccount(r.Context(), account)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
