package num

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by num helpers.
var (
	// ErrInvalidArgument is the parent of every error in this package.
	ErrInvalidArgument = errors.New("num: invalid argument")

	// ErrUnsupportedLocale is returned by FormatNumber when the locale is not
	// a valid BCP 47 tag.
	ErrUnsupportedLocale = fmt.Errorf("%w: unsupported locale", ErrInvalidArgument)
)
