package anpass

import "gonum.org/v1/gonum/mat"

// Solve performs the least-squares fit X*F ~= V by forming the normal
// equations A = X^T X, b = X^T V and factorizing A with a Cholesky
// decomposition. P >= N is required; A not being numerically positive
// definite (rank-deficient design) is reported as ErrSingularNormalEquations.
func Solve(X *mat.Dense, V []float64) (*mat.VecDense, error) {
	p, n := X.Dims()
	if len(V) != p {
		return nil, shapeError("Solve", len(V), p)
	}
	if p < n {
		return nil, shapeError("Solve: need P >= N", p, n)
	}

	var A mat.SymDense
	A.SymOuterK(1, X.T())

	b := mat.NewVecDense(n, nil)
	b.MulVec(X.T(), mat.NewVecDense(p, V))

	var chol mat.Cholesky
	if ok := chol.Factorize(&A); !ok {
		return nil, ErrSingularNormalEquations
	}

	F := mat.NewVecDense(n, nil)
	if err := chol.SolveVecTo(F, b); err != nil {
		return nil, ErrSingularNormalEquations
	}
	return F, nil
}
