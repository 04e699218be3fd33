package auth

import (
	"errors"
	"fmt"
)

// Errors surfaced by the auth flow. Handlers map each kind to a
// user-facing response; none is swallowed except the best-effort login
// audit write, whose failure is only logged.
var (
	// ErrDuplicateEmail: registration found an account with the same
	// normalized email.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password, so a failed login never reveals which emails exist.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrAccountNotActive: the credentials may be right but the account
	// status is inactive or suspended.
	ErrAccountNotActive = errors.New("account is inactive or suspended")

	// ErrOperationFailed: the content store was unreachable or returned
	// a malformed response. Distinct from every credential error.
	ErrOperationFailed = errors.New("auth operation failed")
)

func operationFailed(err error) error {
	return fmt.Errorf("%w: %v", ErrOperationFailed, err)
}
