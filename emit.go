package anpass

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"gonum.org/v1/gonum/mat"
)

// fcWidth is the fixed index-tuple width the emitter writes: the maximum
// Taylor order this format supports (fourth order, for a QFF).
const fcWidth = 4

// ForceConstant is one emitted record: an index tuple of length fcWidth
// naming the variables involved (with multiplicity), and the scalar force
// constant value.
type ForceConstant struct {
	Index []int
	Value float64
}

// MakeFCs converts fitted coefficients F into force-constant records, one
// per column of E, in column order. Scalar value is alpha * F_k *
// prod_j m(E[j,k]), with m the term-order multiplicity (0!..4!).
func MakeFCs(F *mat.VecDense, E *mat.Dense, p Params) []ForceConstant {
	m, n := E.Dims()
	fcs := make([]ForceConstant, n)
	for k := 0; k < n; k++ {
		mult := 1.0
		for j := 0; j < m; j++ {
			mult *= factorial(int(E.At(j, k)))
		}
		fcs[k] = ForceConstant{
			Index: TermIndices(E, k, fcWidth),
			Value: p.Alpha * F.AtVec(k) * mult,
		}
	}
	return fcs
}

// Write9903 writes fcs in the fixed fort.9903 format: four right-aligned
// 5-wide integer indices followed by a 12-fractional-digit real, one
// record per line, no header or trailer.
func Write9903(w io.Writer, fcs []ForceConstant) error {
	bw := bufio.NewWriter(w)
	for _, fc := range fcs {
		for _, idx := range fc.Index {
			if _, err := fmt.Fprintf(bw, "%5d", idx); err != nil {
				return fmt.Errorf("%w: %v", ErrIOFailure, err)
			}
		}
		if _, err := fmt.Fprintf(bw, "%20.12f\n", fc.Value); err != nil {
			return fmt.Errorf("%w: %v", ErrIOFailure, err)
		}
	}
	return bw.Flush()
}

// WriteFort9903 creates filename and writes fcs to it in fort.9903 format.
func WriteFort9903(filename string, fcs []ForceConstant) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIOFailure, err)
	}
	defer f.Close()
	return Write9903(f, fcs)
}
