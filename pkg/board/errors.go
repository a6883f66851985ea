package board

import "errors"

var (
	// ErrNotFound indicates no item is placed under the given key.
	ErrNotFound = errors.New("board: no item at key")
	// ErrBlankName indicates an empty or whitespace-only name.
	ErrBlankName = errors.New("board: name must not be blank")
	// ErrBlankFile indicates an empty or whitespace-only file name.
	ErrBlankFile = errors.New("board: file name must not be blank")
	// ErrUnknownRequest indicates a naming request id that is not pending.
	ErrUnknownRequest = errors.New("board: unknown naming request")
)
