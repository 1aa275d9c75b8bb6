package domain

import "errors"

// Error kinds surfaced by the encoder and the grid state machine. All are
// recoverable; the host translates them into user-facing messages. Callers
// match with errors.Is since operations wrap these with positional detail.
var (
	// ErrInvalidInput rejects digit sequences that are not 12 or 13
	// decimal digits, or whose supplied check digit does not verify.
	ErrInvalidInput = errors.New("invalid input")
	// ErrOutOfBounds rejects selection coordinates outside the grid.
	ErrOutOfBounds = errors.New("selection out of bounds")
	// ErrInsufficientSelection rejects a merge with fewer than two cells.
	ErrInsufficientSelection = errors.New("insufficient selection")
	// ErrEmptySelection rejects a split with no cells selected.
	ErrEmptySelection = errors.New("empty selection")
	// ErrNonContiguous rejects a merge selection with a gap in its span.
	ErrNonContiguous = errors.New("selection not contiguous")
	// ErrMixedAxisSelection rejects a merge selection spanning both
	// multiple rows and multiple columns.
	ErrMixedAxisSelection = errors.New("selection spans multiple rows and columns")
)
