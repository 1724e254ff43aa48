package anpass

import "gonum.org/v1/gonum/mat"

// Design builds the P x N design matrix X from the P x M displacement
// matrix D and the M x N exponent table E, with X[i,k] = prod_j
// D[i,j]^E[j,k] and the 0^0 = 1 convention.
func Design(D, E *mat.Dense) (*mat.Dense, error) {
	p, m := D.Dims()
	me, n := E.Dims()
	if m != me {
		return nil, shapeError("Design", m, me)
	}
	X := mat.NewDense(p, n, nil)
	for i := 0; i < p; i++ {
		for k := 0; k < n; k++ {
			prod := 1.0
			for j := 0; j < m; j++ {
				prod *= ipow(D.At(i, j), int(E.At(j, k)))
			}
			X.Set(i, k, prod)
		}
	}
	return X, nil
}
