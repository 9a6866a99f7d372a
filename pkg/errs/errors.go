package errs

import (
	"errors"
	"net/http"
)

const (
	ErrStatusInternalServer         = http.StatusInternalServerError
	ErrStatusClient                 = http.StatusBadRequest
	ErrStatusNotLoggedIn            = http.StatusUnauthorized
	ErrStatusNoPermission           = http.StatusForbidden
	ErrStatusNotFound               = http.StatusNotFound
	ErrStatusConflict               = http.StatusConflict
	ErrStatusFileSizeExceedingLimit = http.StatusRequestEntityTooLarge
)

var (
	ErrInternalServer     = errors.New("Internal server error")
	ErrValidation         = errors.New("Bad request")
	ErrNotLoggedIn        = errors.New("No token provided")
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrForbidden          = errors.New("Invalid or expired token")
	ErrNotFound           = errors.New("Resource not found")
	ErrConflict           = errors.New("Conflicting record found")
	ErrNotAnImage         = errors.New("Only image files are allowed")
	ErrPayloadTooLarge    = errors.New("Image exceeds the maximum allowed size")
)

// Ordered so that the most specific sentinel wins when an error wraps several.
var errorMap = []struct {
	err    error
	status int
}{
	{ErrValidation, ErrStatusClient},
	{ErrNotLoggedIn, ErrStatusNotLoggedIn},
	{ErrInvalidCredentials, ErrStatusNotLoggedIn},
	{ErrForbidden, ErrStatusNoPermission},
	{ErrNotFound, ErrStatusNotFound},
	{ErrConflict, ErrStatusConflict},
	{ErrNotAnImage, ErrStatusClient},
	{ErrPayloadTooLarge, ErrStatusFileSizeExceedingLimit},
	{ErrInternalServer, ErrStatusInternalServer},
}

func GetErrorStatusCode(err error) int {
	for _, e := range errorMap {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return ErrStatusInternalServer
}

// Validation wraps ErrValidation with a caller facing message.
func Validation(message string) error {
	return WithMessage(ErrValidation, message)
}

// WithMessage keeps the status of kind while replacing the message shown to
// the caller.
func WithMessage(kind error, message string) error {
	return &messageError{kind: kind, message: message}
}

type messageError struct {
	kind    error
	message string
}

func (e *messageError) Error() string {
	return e.message
}

func (e *messageError) Unwrap() error {
	return e.kind
}
