package anpass

// Params carries the tunables that the legacy program hardcoded as
// constants. Nothing here is read from global state; every stage that needs
// one of these takes it as an explicit argument.
type Params struct {
	// Gamma damps each Newton step: x_{k+1} = x_k - Gamma*delta.
	Gamma float64
	// Eps is the convergence tolerance on max_i |Gamma*delta_i|.
	Eps float64
	// KMax is the maximum number of Newton iterations.
	KMax int
	// X0 is the initial iterate. A nil X0 defaults to the zero vector
	// when Newton runs.
	X0 []float64
	// Alpha is the Hartree-to-aJ conversion factor applied by the
	// force-constant emitter.
	Alpha float64
}

// DefaultParams returns the parameters the legacy anpass/spectro pipeline
// used unconditionally.
func DefaultParams() Params {
	return Params{
		Gamma: 0.5,
		Eps:   1.1e-8,
		KMax:  100,
		Alpha: 4.359813653,
	}
}
