package domain

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmailBlank   = errors.New("email can't be blank")
	ErrEmailInvalid = errors.New("email is invalid")
)

// AccountStatus mirrors the accounts.status column. Every account this
// service creates is verified immediately; the column exists so an external
// verification flow can be added without a migration.
type AccountStatus string

const StatusVerified AccountStatus = "verified"

// Account is the authenticated owner of invoices.
type Account struct {
	ID        string
	Email     string
	Status    AccountStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NormalizeEmail lowercases and trims an email for lookup and storage.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NewAccount builds a verified account candidate with a normalized email.
func NewAccount(email string) (*Account, error) {
	normalized := NormalizeEmail(email)
	if normalized == "" {
		return nil, ErrEmailBlank
	}
	if !strings.Contains(normalized, "@") {
		return nil, ErrEmailInvalid
	}

	return &Account{
		Email:  normalized,
		Status: StatusVerified,
	}, nil
}
