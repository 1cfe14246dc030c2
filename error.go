package escape

import (
	"errors"
	"fmt"
)

// ErrInvalidInputType is matched by errors.Is for every *InvalidInputTypeError.
var ErrInvalidInputType = errors.New("invalid input type")

// InvalidInputTypeError is returned by Value when the value is neither bytes, a string, a Text nor nil.
type InvalidInputTypeError struct {
	Type string // name of the offending dynamic type
}

// NewInvalidInputTypeError creates a new error for the dynamic type of v.
func NewInvalidInputTypeError(v interface{}) *InvalidInputTypeError {
	return &InvalidInputTypeError{
		Type: fmt.Sprintf("%T", v),
	}
}

// Error returns the error string, containing the name of the offending type.
func (e *InvalidInputTypeError) Error() string {
	return fmt.Sprintf("expected string or bytes, %s found", e.Type)
}

// Is reports whether target is ErrInvalidInputType.
func (e *InvalidInputTypeError) Is(target error) bool {
	return target == ErrInvalidInputType
}
