package anpass

import "gonum.org/v1/gonum/mat"

// TermIndices decodes exponent-table column k into the sorted-descending
// tuple of variable indices (1-based) that spec.md's force-constant format
// encodes: for each variable j, repeat j+1 exactly E[j,k] times, concatenate
// across j in descending variable order, then right-pad with zeros to
// width. Iterating j from M-1 down to 0 and appending a run of j+1's for
// each already yields the tuple in descending order; no separate sort is
// needed.
func TermIndices(E *mat.Dense, k, width int) []int {
	m, _ := E.Dims()
	idx := make([]int, 0, width)
	for j := m - 1; j >= 0; j-- {
		e := int(E.At(j, k))
		for r := 0; r < e; r++ {
			idx = append(idx, j+1)
		}
	}
	if len(idx) > width {
		panic("anpass: TermIndices: Taylor order of column exceeds width")
	}
	for len(idx) < width {
		idx = append(idx, 0)
	}
	return idx
}

// factorial returns n! for n >= 0, the combinatorial multiplicity the
// emitter applies per Taylor order: m(0)=m(1)=1, m(2)=2, m(3)=6, m(4)=24.
func factorial(n int) float64 {
	f := 1.0
	for i := 2; i <= n; i++ {
		f *= float64(i)
	}
	return f
}
