package anpass

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure kinds described in the design: malformed
// input is the parser's concern and aborts before the engine ever runs; the
// rest originate in the engine itself.
var (
	ErrMalformedInput          = errors.New("anpass: malformed input")
	ErrShapeMismatch           = errors.New("anpass: shape mismatch")
	ErrSingularNormalEquations = errors.New("anpass: fit did not converge / system singular")
	ErrNewtonDiverged          = errors.New("anpass: newton iteration did not converge")
	ErrSingularHessian         = errors.New("anpass: hessian is singular")
	ErrIOFailure               = errors.New("anpass: i/o failure")
)

// shapeError wraps ErrShapeMismatch with the offending dimensions, named
// per the caller that detected the mismatch (§7: "surfaces a diagnostic
// naming the offending dimensions").
func shapeError(where string, got, want int) error {
	return fmt.Errorf("%s: dimension mismatch, got %d want %d: %w", where, got, want, ErrShapeMismatch)
}
