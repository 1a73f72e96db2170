package errs

import "errors"

// Domain failures a client can cause and recover from.
var (
	ErrDuplicateName = errors.New("a category with this name already exists")
	ErrNotFound      = errors.New("there isn't any category with given names")
	ErrForbidden     = errors.New("the default category cannot be deleted or renamed")
	ErrEmailExists   = errors.New("email already exists")
	ErrAuth          = errors.New("missing or invalid access token")
)

// Integrity failures: these indicate corrupted state or a bug, never bad
// client input. They are logged server-side and mapped to generic messages.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvariantViolation = errors.New("default category is missing for user")
)

func IsIntegrity(err error) bool {
	return errors.Is(err, ErrUserNotFound) || errors.Is(err, ErrInvariantViolation)
}
