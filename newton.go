package anpass

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// StationaryClass classifies a converged stationary point by the signs of
// the Hessian eigenvalues at convergence.
type StationaryClass int

const (
	Minimum StationaryClass = iota
	Maximum
	Saddle
	Indefinite
)

func (c StationaryClass) String() string {
	switch c {
	case Minimum:
		return "minimum"
	case Maximum:
		return "maximum"
	case Saddle:
		return "saddle"
	default:
		return "indefinite"
	}
}

// eigTol is the tolerance below which an eigenvalue is treated as zero when
// classifying a stationary point.
const eigTol = 1e-10

// gradIsZero reports whether g is exactly the zero vector, as happens at
// every point for a polynomial with no variable-dependent terms.
func gradIsZero(g *mat.VecDense) bool {
	for i := 0; i < g.Len(); i++ {
		if g.AtVec(i) != 0 {
			return false
		}
	}
	return true
}

// Classify derives the class of a stationary point from the eigenvalues of
// its Hessian.
func Classify(H *mat.SymDense) StationaryClass {
	var eig mat.EigenSym
	if ok := eig.Factorize(H, false); !ok {
		return Indefinite
	}
	values := eig.Values(nil)
	var pos, neg, zero bool
	for _, v := range values {
		switch {
		case math.Abs(v) < eigTol:
			zero = true
		case v > 0:
			pos = true
		default:
			neg = true
		}
	}
	switch {
	case zero:
		return Indefinite
	case pos && neg:
		return Saddle
	case pos:
		return Minimum
	case neg:
		return Maximum
	default:
		return Indefinite
	}
}

// Newton locates a stationary point of the polynomial P(F, E) by the
// iteration x_{k+1} = x_k - gamma*delta, where H*delta = g, starting from
// p.X0 (the zero vector when p.X0 is nil). It returns the converged point
// and its classification, or ErrNewtonDiverged / ErrSingularHessian.
func Newton(F *mat.VecDense, E *mat.Dense, p Params) ([]float64, StationaryClass, error) {
	m, _ := E.Dims()
	x := make([]float64, m)
	if p.X0 != nil {
		if len(p.X0) != m {
			return nil, Indefinite, shapeError("Newton: X0", len(p.X0), m)
		}
		copy(x, p.X0)
	}

	var H *mat.SymDense
	for iter := 0; iter < p.KMax; iter++ {
		g := Grad(x, F, E)
		H = Hess(x, F, E)

		delta := mat.NewVecDense(m, nil)
		if gradIsZero(g) {
			// H*delta = 0 is solved by delta = 0 regardless of
			// whether H itself is singular; a polynomial with an
			// identically zero gradient (e.g. a constant fit) is
			// already stationary everywhere.
		} else if err := delta.SolveVec(H, g); err != nil {
			return nil, Indefinite, ErrSingularHessian
		}

		maxStep := 0.0
		for i := 0; i < m; i++ {
			step := p.Gamma * delta.AtVec(i)
			x[i] -= step
			if abs := math.Abs(step); abs > maxStep {
				maxStep = abs
			}
		}
		if maxStep < p.Eps {
			return x, Classify(H), nil
		}
	}
	return nil, Indefinite, ErrNewtonDiverged
}
