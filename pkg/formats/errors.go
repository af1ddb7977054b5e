package formats

import (
	"errors"
	"fmt"
)

// ErrMalformedData reports text that does not follow the supported OBJ/MTL
// subset: non-numeric values, missing arguments, out-of-range indices or a
// face whose vertex count has no matching topology.
var ErrMalformedData = errors.New("malformed data")

// ParseError locates a parse failure in its source text.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// malformed builds an ErrMalformedData error with context.
func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedData, fmt.Sprintf(format, args...))
}
