package account

import (
	"net/http"

	"github.com/pkg/errors"
)

// Provider error codes.
const (
	CodeEmailInUse        = "auth/email-already-in-use"
	CodeInvalidCredential = "auth/invalid-credential"
	CodeUserNotFound      = "auth/user-not-found"
	CodeUserDisabled      = "auth/user-disabled"
	CodeMissingFields     = "auth/missing-fields"
	CodePasswordMismatch  = "auth/password-mismatch"
	CodeWeakPassword      = "auth/weak-password"
	CodeInternal          = "auth/internal-error"
)

var (
	messages = map[string]string{
		CodeEmailInUse:        "An account with this email already exists.",
		CodeInvalidCredential: "Invalid email or password.",
		CodeUserNotFound:      "No account found for this email.",
		CodeUserDisabled:      "This account has been disabled.",
		CodeMissingFields:     "Please fill in all fields",
		CodePasswordMismatch:  "Passwords do not match",
		CodeWeakPassword:      "Password is too weak.",
		CodeInternal:          "Something went wrong. Please try again.",
	}

	statuses = map[string]int{
		CodeEmailInUse:        http.StatusConflict,
		CodeInvalidCredential: http.StatusUnauthorized,
		CodeUserNotFound:      http.StatusNotFound,
		CodeUserDisabled:      http.StatusForbidden,
		CodeMissingFields:     http.StatusBadRequest,
		CodePasswordMismatch:  http.StatusBadRequest,
		CodeWeakPassword:      http.StatusBadRequest,
	}
)

// ProviderError is a failure reported by the identity provider.
type ProviderError struct {
	Code string
}

func NewProviderError(code string) error {
	return &ProviderError{Code: code}
}

func (err *ProviderError) Error() string {
	return err.Code
}

// Message is the user-facing text for the error.
func (err *ProviderError) Message() string {
	return Message(err.Code)
}

// Status is the HTTP status the error maps to.
func (err *ProviderError) Status() int {
	if st, ok := statuses[err.Code]; ok {
		return st
	}
	return http.StatusInternalServerError
}

// Message maps a provider code to a user-facing string.
func Message(code string) string {
	if msg, ok := messages[code]; ok {
		return msg
	}
	return messages[CodeInternal]
}

// HasCode reports whether err is a ProviderError with the given code.
func HasCode(err error, code string) bool {
	var pErr *ProviderError
	return errors.As(err, &pErr) && pErr.Code == code
}
