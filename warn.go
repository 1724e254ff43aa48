package anpass

import "fmt"

// Warnings counts the non-fatal degradations reported by Warn, so a caller
// (or a test) can check whether any occurred without scraping stdout.
var Warnings int

// Warn prints a warning message and increments Warnings. It is how the
// orchestrator reports NewtonDiverged/SingularHessian without aborting the
// run, matching the legacy program's own Warn helper.
func Warn(format string, a ...interface{}) {
	fmt.Printf("warning: "+format+"\n", a...)
	Warnings++
}
