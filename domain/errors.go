package domain

import "errors"

// Error categories shared by every package. Handlers match these with
// errors.Is and translate them into HTTP statuses; concrete causes wrap
// one of them with fmt.Errorf("...: %w", ErrX).
var (
	ErrValidation = errors.New("validation-error")
	ErrAuth       = errors.New("auth-error")
	ErrNotFound   = errors.New("not-found")
	ErrConflict   = errors.New("conflict")
	ErrState      = errors.New("state-error")
)
