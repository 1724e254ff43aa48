/*
anpass fits a polynomial to a set of sampled displacements and energies,
locates its stationary point, re-fits around it, and writes the result as
a force-constant table.
*/
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ntBre/anpass"
)

const help = `usage: anpass [flags] infile

Reads infile in the legacy anpass input format, fits a polynomial to its
displacements and energies, locates a stationary point by Newton iteration
(unless infile supplies one directly), re-fits around it, and writes
fort.9903 in the current directory.

Flags:
`

var (
	gamma  = flag.Float64("gamma", 0.5, "Newton step damping factor")
	eps    = flag.Float64("eps", 1.1e-8, "Newton convergence tolerance")
	kmax   = flag.Int("kmax", 100, "maximum Newton iterations")
	alpha  = flag.Float64("alpha", 4.359813653, "Hartree-to-aJ conversion factor")
	output = flag.String("o", "fort.9903", "output file")
)

func main() {
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), help)
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	infile := flag.Arg(0)

	prob, err := anpass.Load(infile)
	if err != nil {
		log.Fatalf("anpass: %v", err)
	}

	params := anpass.Params{Gamma: *gamma, Eps: *eps, KMax: *kmax, Alpha: *alpha}
	res, err := anpass.Run(prob, params)
	if err != nil {
		log.Fatalf("anpass: %v", err)
	}
	if !res.Converged {
		fmt.Fprintf(os.Stderr, "anpass: warning: newton did not converge, "+
			"emitting coefficients from the initial fit\n")
	}

	if err := anpass.WriteFort9903(*output, res.FCs); err != nil {
		log.Fatalf("anpass: %v", err)
	}
}
