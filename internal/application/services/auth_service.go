package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/shiharai/invoice-service/internal/application"
	"github.com/shiharai/invoice-service/internal/domain"
	"github.com/shiharai/invoice-service/internal/infrastructure/auth"
	"github.com/shiharai/invoice-service/internal/infrastructure/persistence"
	"github.com/shiharai/invoice-service/internal/infrastructure/persistence/postgres"
)

// AuthResult is a freshly issued token with the account it belongs to.
type AuthResult struct {
	Token   string
	Account *domain.Account
}

type AuthService struct {
	accountRepo application.AccountRepository
	tokens      application.TokenService
}

func NewAuthService(accountRepo application.AccountRepository, tokens application.TokenService) *AuthService {
	return &AuthService{
		accountRepo: accountRepo,
		tokens:      tokens,
	}
}

// Register creates a verified account with a bcrypt password hash and issues
// its first token. The account row and hash row are written in one
// transaction by the repository.
func (s *AuthService) Register(ctx context.Context, email, password string) (*AuthResult, error) {
	if password == "" {
		return nil, application.NewRegistrationFailedError("Password can't be blank")
	}

	account, err := domain.NewAccount(email)
	if err != nil {
		if errors.Is(err, domain.ErrEmailBlank) {
			return nil, application.NewRegistrationFailedError("Email can't be blank")
		}
		return nil, application.NewRegistrationFailedError("Email is invalid")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, application.NewInternalError(fmt.Errorf("hash password: %w", err))
	}

	if err := s.accountRepo.CreateWithPassword(ctx, account, hash); err != nil {
		if persistence.IsUniqueViolation(err) {
			return nil, application.NewDuplicateEmailError()
		}
		return nil, application.NewInternalError(fmt.Errorf("create account: %w", err))
	}

	token, err := s.tokens.Generate(account)
	if err != nil {
		return nil, application.NewInternalError(fmt.Errorf("issue token: %w", err))
	}

	return &AuthResult{Token: token, Account: account}, nil
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	account, err := s.accountRepo.FindByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, postgres.ErrAccountNotFound) {
			return nil, application.NewLoginFailedError()
		}
		return nil, application.NewInternalError(fmt.Errorf("find account: %w", err))
	}

	hash, err := s.accountRepo.PasswordHashByAccountID(ctx, account.ID)
	if err != nil {
		if errors.Is(err, postgres.ErrAccountNotFound) {
			return nil, application.NewLoginFailedError()
		}
		return nil, application.NewInternalError(fmt.Errorf("load password hash: %w", err))
	}

	if !auth.CheckPassword(hash, password) {
		return nil, application.NewLoginFailedError()
	}

	token, err := s.tokens.Generate(account)
	if err != nil {
		return nil, application.NewInternalError(fmt.Errorf("issue token: %w", err))
	}

	return &AuthResult{Token: token, Account: account}, nil
}
