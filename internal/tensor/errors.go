package tensor

import (
	"errors"
	"fmt"
)

// Contract violations. Operations that detect them panic with an error
// wrapping one of these, so a caller that recovers can still match with
// errors.Is. Constructors driven by caller input return them instead.
var (
	ErrInvalidShape  = errors.New("tensor: invalid shape")
	ErrShapeMismatch = errors.New("tensor: shape mismatch")
	ErrOutOfRange    = errors.New("tensor: index out of range")
	ErrJaggedShape   = errors.New("tensor: jagged initializer")
	ErrRankMismatch  = errors.New("tensor: rank mismatch")
)

// fail panics with err annotated by the operation name and details.
func fail(op string, err error, format string, args ...any) {
	panic(fmt.Errorf("%s: %w: %s", op, err, fmt.Sprintf(format, args...)))
}
