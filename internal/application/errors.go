package application

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/shiharai/invoice-service/internal/domain"
)

// APPLICATION-LEVEL ERRORS (Orchestration)

type ServiceError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    []string
	Err        error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

const (
	ErrCodeRegistrationFailed    = "REGISTRATION_FAILED"
	ErrCodeLoginFailed           = "LOGIN_FAILED"
	ErrCodeUnauthorized          = "UNAUTHORIZED"
	ErrCodeInvoiceCreationFailed = "INVOICE_CREATION_FAILED"
	ErrCodeInvalidDateFormat     = "INVALID_DATE_FORMAT"
	ErrCodeBadRequest            = "BAD_REQUEST"
	ErrCodeInternal              = "INTERNAL_SERVER_ERROR"
)

func NewRegistrationFailedError(message string) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeRegistrationFailed,
		Message:    message,
		HTTPStatus: http.StatusUnprocessableEntity,
	}
}

func NewDuplicateEmailError() *ServiceError {
	return &ServiceError{
		Code:       ErrCodeRegistrationFailed,
		Message:    "Email has already been taken",
		HTTPStatus: http.StatusUnprocessableEntity,
	}
}

func NewLoginFailedError() *ServiceError {
	return &ServiceError{
		Code:       ErrCodeLoginFailed,
		Message:    "Invalid email or password",
		HTTPStatus: http.StatusUnauthorized,
	}
}

func NewUnauthorizedError() *ServiceError {
	return &ServiceError{
		Code:       ErrCodeUnauthorized,
		Message:    "Invalid or expired token",
		HTTPStatus: http.StatusUnauthorized,
	}
}

// NewInvoiceCreationFailedError wraps a domain validation failure, carrying
// every violated field so clients can report all problems at once.
func NewInvoiceCreationFailedError(verr *domain.ValidationError) *ServiceError {
	messages := verr.Messages()
	return &ServiceError{
		Code:       ErrCodeInvoiceCreationFailed,
		Message:    strings.Join(messages, ", "),
		HTTPStatus: http.StatusUnprocessableEntity,
		Details:    messages,
		Err:        verr,
	}
}

func NewInvoiceCreationRejectedError(message string, err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeInvoiceCreationFailed,
		Message:    message,
		HTTPStatus: http.StatusUnprocessableEntity,
		Details:    []string{message},
		Err:        err,
	}
}

func NewInvalidDateFormatError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeInvalidDateFormat,
		Message:    "Invalid date format. Use YYYY-MM-DD.",
		HTTPStatus: http.StatusBadRequest,
		Err:        err,
	}
}

func NewBadRequestError(message string) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeBadRequest,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

func NewInternalError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeInternal,
		Message:    "An unexpected error occurred",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func IsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	ok := errors.As(err, &svcErr)
	return svcErr, ok
}
