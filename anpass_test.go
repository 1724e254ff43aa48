package anpass

import (
	"strings"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func closeEnough(got, want, tol float64) bool {
	d := got - want
	if d < 0 {
		d = -d
	}
	return d < tol
}

const linearInput = `TITLE
(1F12.8,F20.12)
  0.00000000        2.30000000
  1.00000000        3.40000000
  2.00000000        7.60000000
  3.00000000        8.10000000
  4.00000000        9.40000000
  5.00000000       13.60000000
  6.00000000       14.50000000
  7.00000000       15.90000000
  8.00000000       18.60000000
  9.00000000       21.70000000
 10.00000000       21.80000000
UNKNOWNS
2
1 0
END OF DATA
`

func TestLoadLinear(t *testing.T) {
	prob, err := parse(strings.NewReader(linearInput))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if prob.M != 1 {
		t.Errorf("M: got %d, wanted 1", prob.M)
	}
	if prob.N != 2 {
		t.Errorf("N: got %d, wanted 2", prob.N)
	}
	if len(prob.D) != 11 || len(prob.V) != 11 {
		t.Fatalf("got %d disps, %d energies, wanted 11 and 11", len(prob.D), len(prob.V))
	}
	if prob.V[2] != 7.6 {
		t.Errorf("V[2]: got %v, wanted 7.6", prob.V[2])
	}
	if prob.E == nil {
		t.Fatal("E is nil")
	}
	if prob.E.At(0, 0) != 1 || prob.E.At(0, 1) != 0 {
		t.Errorf("E: got %v %v, wanted 1 0", prob.E.At(0, 0), prob.E.At(0, 1))
	}
}

// TestScenarioL reproduces spec.md's Scenario L: a one-variable linear
// regression where Newton does not converge, yet the engine still emits
// the initial fit's coefficients.
func TestScenarioL(t *testing.T) {
	prob, err := parse(strings.NewReader(linearInput))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	res, err := Run(prob, DefaultParams())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Converged {
		t.Error("expected Newton to fail to converge for a linear fit")
	}
	if len(res.FCs) != 2 {
		t.Fatalf("got %d force constants, wanted 2", len(res.FCs))
	}
	alpha := DefaultParams().Alpha
	slope := res.FCs[0].Value / alpha
	intercept := res.FCs[1].Value / alpha
	if !closeEnough(slope, 2.040, 1e-3) {
		t.Errorf("slope: got %v, wanted ~2.040", slope)
	}
	if !closeEnough(intercept, 2.246, 1e-3) {
		t.Errorf("intercept: got %v, wanted ~2.246", intercept)
	}
}

// TestScenarioC reproduces spec.md's Scenario C: a constant fit where the
// gradient is identically zero everywhere, so Newton "converges" trivially
// at x0 and the Hessian (all zero) classifies as indefinite.
func TestScenarioC(t *testing.T) {
	V := []float64{1, 2, 3, 4, 5}
	prob := &Problem{
		M: 1,
		N: 1,
		D: [][]float64{{0}, {1}, {2}, {3}, {4}},
		V: V,
		E: mat.NewDense(1, 1, []float64{0}),
	}
	res, err := Run(prob, DefaultParams())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !res.Converged {
		t.Fatal("expected trivial convergence for a constant fit")
	}
	if res.Class != Indefinite {
		t.Errorf("class: got %v, wanted indefinite", res.Class)
	}
	mean := 0.0
	for _, v := range V {
		mean += v
	}
	mean /= float64(len(V))
	got := res.FCs[0].Value / DefaultParams().Alpha
	if !closeEnough(got, mean, 1e-9) {
		t.Errorf("F_0: got %v, wanted mean %v", got, mean)
	}
}

// TestRefitIdentity checks §8 property 5: biasing by the zero vector
// reproduces the initial fit.
func TestRefitIdentity(t *testing.T) {
	prob, err := parse(strings.NewReader(linearInput))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	D := prob.Disps()
	X, err := Design(D, prob.E)
	if err != nil {
		t.Fatalf("Design: %v", err)
	}
	F0, err := Solve(X, prob.V)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	F1, err := Refit(D, prob.V, prob.E, Bias{Disp: []float64{0}, Energy: 0})
	if err != nil {
		t.Fatalf("Refit: %v", err)
	}
	for k := 0; k < prob.N; k++ {
		if !closeEnough(F0.AtVec(k), F1.AtVec(k), 1e-10) {
			t.Errorf("F1[%d]: got %v, wanted %v", k, F1.AtVec(k), F0.AtVec(k))
		}
	}
}

func TestValidateShapeMismatch(t *testing.T) {
	prob := &Problem{
		M: 2,
		N: 1,
		D: [][]float64{{0, 0}},
		V: []float64{0, 1},
		E: mat.NewDense(2, 1, []float64{1, 1}),
	}
	if err := prob.Validate(); err == nil {
		t.Fatal("expected a shape-mismatch error")
	}
}
