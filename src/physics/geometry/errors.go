package geometry

import (
	"errors"
	"fmt"
)

// ErrGeometry is the single error kind reported by this package. Every
// contract violation wraps it.
var ErrGeometry = errors.New("geometry")

var ErrNegativeRadius = fmt.Errorf("%w: radius must not be negative", ErrGeometry)

func newError(kind error, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...))
}
