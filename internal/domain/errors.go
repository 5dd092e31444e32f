package domain

import (
	"errors"
	"fmt"
	"strings"
)

// DomainError represents a business logic error
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *DomainError) Unwrap() error {
	return e.Err
}

const (
	ErrCodeInvalidAmount      = "INVALID_AMOUNT"
	ErrCodeUnsupportedOperand = "UNSUPPORTED_OPERAND"
	ErrCodeValidationFailed   = "VALIDATION_FAILED"
	ErrCodeInvalidDateFormat  = "INVALID_DATE_FORMAT"
)

func NewInvalidAmountError(raw any) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidAmount,
		Message: fmt.Sprintf("invalid amount %v", raw),
	}
}

func NewMissingAmountError() *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidAmount,
		Message: "payment amount is required for derivation",
	}
}

func NewUnsupportedOperandError(operand any) *DomainError {
	return &DomainError{
		Code:    ErrCodeUnsupportedOperand,
		Message: fmt.Sprintf("cannot multiply money by %T", operand),
	}
}

func NewInvalidDateFormatError(input string) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidDateFormat,
		Message: fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", input),
	}
}

// IsErrorCode checks if an error is a DomainError with a specific code
func IsErrorCode(err error, code string) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return code == ErrCodeValidationFailed
	}
	return false
}

// FieldError is a single invariant violation attached to a named field.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) String() string {
	return e.Field + " " + e.Message
}

// ValidationError carries every violated invariant of a validation pass, in
// check order. Checks are never short-circuited, so a caller can report all
// problems at once.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages(), ", ")
}

// Messages returns one human-readable message per violated field.
func (e *ValidationError) Messages() []string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.String()
	}
	return msgs
}

// AsValidationError extracts a ValidationError from an error chain.
func AsValidationError(err error) (*ValidationError, bool) {
	var validationErr *ValidationError
	ok := errors.As(err, &validationErr)
	return validationErr, ok
}
