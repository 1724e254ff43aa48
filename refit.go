package anpass

import "gonum.org/v1/gonum/mat"

// Bias is an (x*, P(x*)) pair: a stationary point and the polynomial's
// value there, used to re-reference samples before a re-fit. It is also
// the shape of an externally supplied stationary_bias.
type Bias struct {
	Disp   []float64
	Energy float64
}

// biasSamples returns D'[i,j] = D[i,j] - b.Disp[j] and V'[i] = V[i] - b.Energy.
func biasSamples(D *mat.Dense, V []float64, b Bias) (*mat.Dense, []float64) {
	p, m := D.Dims()
	Dp := mat.NewDense(p, m, nil)
	for i := 0; i < p; i++ {
		for j := 0; j < m; j++ {
			Dp.Set(i, j, D.At(i, j)-b.Disp[j])
		}
	}
	Vp := make([]float64, p)
	for i := range V {
		Vp[i] = V[i] - b.Energy
	}
	return Dp, Vp
}

// Refit re-references D and V to b and reruns the design-matrix build and
// least-squares solve, producing the re-fit coefficients F'.
func Refit(D *mat.Dense, V []float64, E *mat.Dense, b Bias) (*mat.VecDense, error) {
	Dp, Vp := biasSamples(D, V, b)
	X, err := Design(Dp, E)
	if err != nil {
		return nil, err
	}
	return Solve(X, Vp)
}
