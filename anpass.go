// Package anpass fits a multivariate polynomial to sampled displacements
// and energies by least squares, locates a stationary point by Newton
// iteration, re-fits the polynomial around it, and emits the coefficients
// as a force-constant table in the fixed fort.9903 format.
//
// Its primary application is a quartic force field: a fourth-order Taylor
// expansion of a molecular potential energy surface about its equilibrium
// geometry. The engine itself is general over the exponent table and works
// for any multivariate polynomial regression, including degenerate cases
// such as a single-variable linear fit.
package anpass

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// headerRe matches the one semantically load-bearing header line of the
// legacy input format, e.g. "(3F12.8,F20.12)". The captured integer is M,
// the number of displacement columns.
var headerRe = regexp.MustCompile(`(?i)^\s*\((\d+)f[0-9.]+,f[0-9.]+\)\s*$`)

// Problem is the in-memory problem description handed to Run: everything
// the engine needs, independent of how it was produced.
type Problem struct {
	M int
	N int
	// D holds P rows of length M; Disps returns it as a *mat.Dense.
	D [][]float64
	// V holds P energies aligned with D.
	V []float64
	// E is the M x N exponent table.
	E *mat.Dense
	// Bias, if non-nil, is used directly as (x*, P(x*)) and bypasses
	// Newton.
	Bias *Bias
}

// Disps returns p.D as a dense P x M matrix.
func (p *Problem) Disps() *mat.Dense {
	rows := len(p.D)
	if rows == 0 {
		return mat.NewDense(0, p.M, nil)
	}
	flat := make([]float64, 0, rows*p.M)
	for _, row := range p.D {
		flat = append(flat, row...)
	}
	return mat.NewDense(rows, p.M, flat)
}

// Validate checks the §3 invariants that are cheap to check before the
// engine runs: row widths, V alignment, and E's column count against N.
func (p *Problem) Validate() error {
	if p.M <= 0 || p.N <= 0 {
		return shapeError("Validate: M and N must be >= 1", 0, 1)
	}
	if len(p.V) != len(p.D) {
		return shapeError("Validate: len(V) != len(D)", len(p.V), len(p.D))
	}
	for i, row := range p.D {
		if len(row) != p.M {
			return shapeError("Validate: displacement row "+strconv.Itoa(i), len(row), p.M)
		}
	}
	if p.E == nil {
		return shapeError("Validate: E is nil", 0, p.N)
	}
	em, en := p.E.Dims()
	if em != p.M {
		return shapeError("Validate: rows(E) != M", em, p.M)
	}
	if en != p.N {
		return shapeError("Validate: cols(E) != N", en, p.N)
	}
	if len(p.D) < p.N {
		return shapeError("Validate: need P >= N", len(p.D), p.N)
	}
	return nil
}

// Result is everything Run produces: the initial fit, the located (or
// supplied) stationary point and its class, the re-fit coefficients, and
// the emitted force constants. Converged is false when Newton failed to
// converge or hit a singular Hessian; in that case F1/FCs are derived from
// F0 instead (the legacy degraded-emission behavior).
type Result struct {
	F0         *mat.VecDense
	Stationary Bias
	Class      StationaryClass
	Converged  bool
	F1         *mat.VecDense
	FCs        []ForceConstant
}

// Run is the orchestrator (§4.G): build the design matrix and solve for an
// initial fit, locate a stationary point (or use the supplied bias), re-fit
// around it, and emit force constants. A Newton failure is non-fatal: Run
// reports it via Warn and emits the pre-re-fit coefficients, returning a
// Result with Converged == false and a nil error.
func Run(prob *Problem, p Params) (*Result, error) {
	if err := prob.Validate(); err != nil {
		return nil, err
	}

	D := prob.Disps()
	X, err := Design(D, prob.E)
	if err != nil {
		return nil, err
	}
	F0, err := Solve(X, prob.V)
	if err != nil {
		return nil, err
	}

	res := &Result{F0: F0}

	var bias Bias
	switch {
	case prob.Bias != nil:
		bias = *prob.Bias
		res.Converged = true
	default:
		x, class, err := Newton(F0, prob.E, p)
		if err != nil {
			Warn("newton: %v, emitting pre-refit coefficients", err)
			res.F1 = F0
			res.FCs = MakeFCs(F0, prob.E, p)
			return res, nil
		}
		bias = Bias{Disp: x, Energy: Eval(x, F0, prob.E)}
		res.Class = class
		res.Converged = true
	}
	res.Stationary = bias

	F1, err := Refit(D, prob.V, prob.E, bias)
	if err != nil {
		return nil, err
	}
	res.F1 = F1
	res.FCs = MakeFCs(F1, prob.E, p)
	return res, nil
}

// Load reads a Problem from the legacy anpass input grammar (§6): a header
// line matching headerRe sets M; subsequent whitespace-separated numeric
// rows are displacements, optionally followed by one energy column when the
// row has exactly M+1 fields; an UNKNOWNS line gives N, followed by the M*N
// exponents wrapped after 16 entries per line; an optional STATIONARY POINT
// section gives a trailing bias.
func Load(filename string) (*Problem, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIOFailure, err)
	}
	defer f.Close()
	return parse(f)
}

func parse(r io.Reader) (*Problem, error) {
	scanner := bufio.NewScanner(r)
	var (
		prob       Problem
		inDisps    bool
		inUnknowns bool
		inExps     bool
		inStat     bool
		expFlat    []int
		statFlat   []float64
	)
	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		switch {
		case headerRe.MatchString(line):
			m, _ := strconv.Atoi(headerRe.FindStringSubmatch(line)[1])
			prob.M = m
			inDisps = true
		case strings.Contains(line, "UNKNOWNS"):
			inDisps = false
			inUnknowns = true
		case strings.Contains(line, "STATIONARY POINT"):
			inExps = false
			inStat = true
		case inUnknowns:
			n, err := strconv.Atoi(trimmed)
			if err != nil {
				return nil, fmt.Errorf("Load: UNKNOWNS count: %v: %w", err, ErrMalformedInput)
			}
			prob.N = n
			inUnknowns = false
			inExps = true
		case inStat:
			if trimmed == "" {
				continue
			}
			for _, f := range strings.Fields(trimmed) {
				v, err := strconv.ParseFloat(f, 64)
				if err != nil {
					return nil, fmt.Errorf("Load: STATIONARY POINT: %v: %w", err, ErrMalformedInput)
				}
				statFlat = append(statFlat, v)
			}
		case inExps:
			if trimmed == "" {
				continue
			}
			for _, f := range strings.Fields(trimmed) {
				v, err := strconv.Atoi(f)
				if err != nil {
					return nil, fmt.Errorf("Load: FUNCTION exponents: %v: %w", err, ErrMalformedInput)
				}
				expFlat = append(expFlat, v)
			}
			if len(expFlat) >= prob.M*prob.N {
				inExps = false
			}
		case inDisps:
			if trimmed == "" {
				continue
			}
			fields := strings.Fields(trimmed)
			vals := make([]float64, 0, len(fields))
			for _, f := range fields {
				v, err := strconv.ParseFloat(f, 64)
				if err != nil {
					return nil, fmt.Errorf("Load: displacement row: %v: %w", err, ErrMalformedInput)
				}
				vals = append(vals, v)
			}
			if len(vals) == prob.M+1 {
				prob.D = append(prob.D, vals[:prob.M])
				prob.V = append(prob.V, vals[prob.M])
			} else {
				prob.D = append(prob.D, vals)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("Load: scan: %v: %w", err, ErrMalformedInput)
	}

	if prob.N > 0 && len(expFlat) == prob.M*prob.N {
		E := mat.NewDense(prob.M, prob.N, nil)
		idx := 0
		for j := 0; j < prob.M; j++ {
			for k := 0; k < prob.N; k++ {
				E.Set(j, k, float64(expFlat[idx]))
				idx++
			}
		}
		prob.E = E
	}
	if len(statFlat) >= prob.M+1 {
		prob.Bias = &Bias{Disp: statFlat[:prob.M], Energy: statFlat[prob.M]}
	}
	return &prob, nil
}
