package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

const linearFixture = `TITLE
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

// TestCLISmoke builds and runs the binary against a linear-regression
// fixture (spec.md's Scenario L) and checks that it exits 0 and writes
// fort.9903, even though Newton never converges for a pure linear fit.
func TestCLISmoke(t *testing.T) {
	if testing.Short() {
		t.Skip("builds a binary; skip with -short")
	}
	dir := t.TempDir()
	infile := filepath.Join(dir, "anpass.in")
	if err := os.WriteFile(infile, []byte(linearFixture), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	outfile := filepath.Join(dir, "fort.9903")

	bin := filepath.Join(dir, "anpass")
	build := exec.Command("go", "build", "-o", bin, ".")
	if out, err := build.CombinedOutput(); err != nil {
		t.Fatalf("go build: %v\n%s", err, out)
	}

	run := exec.Command(bin, "-o", outfile, infile)
	if out, err := run.CombinedOutput(); err != nil {
		t.Fatalf("run: %v\n%s", err, out)
	}
	if _, err := os.Stat(outfile); err != nil {
		t.Fatalf("expected %s to exist: %v", outfile, err)
	}
}
