package numerics

import (
	"errors"
	"fmt"
)

// ErrDomain reports arguments outside a function's domain.
var ErrDomain = errors.New("invalid arguments")

// DomainError identifies the routine and the arguments it rejected.
type DomainError struct {
	Routine string
	A       float64
	X       float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("numerics: %s: %v (a=%g, x=%g)", e.Routine, ErrDomain, e.A, e.X)
}

func (e *DomainError) Unwrap() error {
	return ErrDomain
}
