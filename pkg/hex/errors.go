package hex

import "errors"

var (
	// ErrInvariant indicates cube components that do not sum to zero.
	ErrInvariant = errors.New("hex: cube components must sum to zero")
	// ErrKey indicates a hex key that cannot be parsed.
	ErrKey = errors.New("hex: malformed hex key")
)
