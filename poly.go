package anpass

import "gonum.org/v1/gonum/mat"

// ipow raises x to a non-negative integer power, with the convention
// 0^0 = 1 so a column of E that is all zeros still yields a constant term.
func ipow(x float64, n int) float64 {
	if n <= 0 {
		return 1
	}
	p := 1.0
	for i := 0; i < n; i++ {
		p *= x
	}
	return p
}

// monomial evaluates the product over j != skip of x_j^E[j,k], optionally
// also skipping a second variable (skip2 < 0 means skip nothing second).
func monomial(x []float64, E *mat.Dense, k, skip, skip2 int) float64 {
	p := 1.0
	m, _ := E.Dims()
	for j := 0; j < m; j++ {
		if j == skip || j == skip2 {
			continue
		}
		p *= ipow(x[j], int(E.At(j, k)))
	}
	return p
}

// Eval returns P(x) = sum_k F_k * prod_j x_j^E[j,k].
func Eval(x []float64, F *mat.VecDense, E *mat.Dense) float64 {
	_, n := E.Dims()
	sum := 0.0
	for k := 0; k < n; k++ {
		sum += F.AtVec(k) * monomial(x, E, k, -1, -1)
	}
	return sum
}

// Grad returns the length-M gradient of P at x.
func Grad(x []float64, F *mat.VecDense, E *mat.Dense) *mat.VecDense {
	m, n := E.Dims()
	g := mat.NewVecDense(m, nil)
	for i := 0; i < m; i++ {
		sum := 0.0
		for k := 0; k < n; k++ {
			e := int(E.At(i, k))
			if e == 0 {
				continue
			}
			sum += float64(e) * F.AtVec(k) * ipow(x[i], e-1) * monomial(x, E, k, i, -1)
		}
		g.SetVec(i, sum)
	}
	return g
}

// Hess returns the symmetric M x M Hessian of P at x. Symmetry is realized
// by construction: off-diagonal entries are computed once and mirrored,
// never recomputed by swapping i and l.
func Hess(x []float64, F *mat.VecDense, E *mat.Dense) *mat.SymDense {
	m, n := E.Dims()
	H := mat.NewSymDense(m, nil)
	for i := 0; i < m; i++ {
		sum := 0.0
		for k := 0; k < n; k++ {
			e := int(E.At(i, k))
			if e < 2 {
				continue
			}
			sum += float64((e-1)*e) * F.AtVec(k) * ipow(x[i], e-2) * monomial(x, E, k, i, -1)
		}
		H.SetSym(i, i, sum)
		for l := i + 1; l < m; l++ {
			sum := 0.0
			for k := 0; k < n; k++ {
				ei := int(E.At(i, k))
				el := int(E.At(l, k))
				if ei == 0 || el == 0 {
					continue
				}
				sum += float64(ei*el) * F.AtVec(k) *
					ipow(x[i], ei-1) * ipow(x[l], el-1) *
					monomial(x, E, k, i, l)
			}
			H.SetSym(i, l, sum)
		}
	}
	return H
}
