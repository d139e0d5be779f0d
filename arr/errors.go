package arr

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by arr helpers.
//
// Every specific error wraps [ErrInvalidArgument], so callers may test for
// either:
//
//	if errors.Is(err, arr.ErrInvalidArgument) { ... }
var (
	// ErrInvalidArgument is the parent of every error in this package.
	ErrInvalidArgument = errors.New("arr: invalid argument")

	// ErrInvalidChunkSize is returned when Chunk is called with size <= 0.
	ErrInvalidChunkSize = fmt.Errorf("%w: chunk size must be greater than 0", ErrInvalidArgument)

	// ErrZeroStep is returned when Range is called with step == 0.
	ErrZeroStep = fmt.Errorf("%w: range step must not be zero", ErrInvalidArgument)

	// ErrNonFiniteRange is returned when a Range bound or step is NaN or ±Inf.
	ErrNonFiniteRange = fmt.Errorf("%w: range bounds and step must be finite", ErrInvalidArgument)
)
