package cookie

import "errors"

var (
	// ErrEmptyName indicates the cookie was constructed without a name.
	ErrEmptyName = errors.New("cookie name cannot be empty")

	// ErrInvalidSameSite indicates a SameSite value outside Strict, Lax, None.
	ErrInvalidSameSite = errors.New("SameSite must be 'Strict', 'Lax', or 'None'")
)
