// SPDX-License-Identifier: MIT

// Command plu reads a matrix file and prints its LU or PLU factors.
//
//	plu -in a.yaml [-mode lu|plu] [-precision n] [-verify] [-trace] [-log-level info]
//
// Exit status is 0 on success, 1 on usage or input errors and 2 when the
// matrix has no factorization reachable by the selected mode.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"

	logging "github.com/ipfs/go-log/v2"

	"github.com/katalvlaran/denselu/internal/matrixfile"
	"github.com/katalvlaran/denselu/matrix"
	"github.com/katalvlaran/denselu/matrix/decompose"
)

var log = logging.Logger("plu")

const (
	exitOK        = 0
	exitUsage     = 1
	exitNoFactors = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("plu", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		inPath    = fs.String("in", "", "Path to the matrix file (YAML or JSON)")
		mode      = fs.String("mode", "plu", "Factorization: lu or plu")
		precision = fs.Int("precision", matrix.DefaultPrecision, "Decimals per entry (overrides the file)")
		verify    = fs.Bool("verify", false, "Print the largest reconstruction error")
		trace     = fs.Bool("trace", false, "Print the elementary row operations performed")
		logLevel  = fs.String("log-level", "warn", "Log level (debug, info, warn, error)")
	)
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	level, err := logging.LevelFromString(*logLevel)
	if err != nil {
		fmt.Fprintf(stderr, "invalid log level %q, using warn\n", *logLevel)
		level = logging.LevelWarn
	}
	logging.SetAllLoggers(level)

	if *inPath == "" {
		fmt.Fprintln(stderr, "plu: -in is required")
		fs.Usage()
		return exitUsage
	}
	precisionSet := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "precision" {
			precisionSet = true
		}
	})
	if precisionSet && *precision < 0 {
		fmt.Fprintf(stderr, "plu: -precision must be >= 0, got %d\n", *precision)
		return exitUsage
	}
	if *mode != "lu" && *mode != "plu" {
		fmt.Fprintf(stderr, "plu: unknown mode %q\n", *mode)
		return exitUsage
	}

	file, err := matrixfile.Load(*inPath)
	if err != nil {
		fmt.Fprintf(stderr, "plu: %v\n", err)
		return exitUsage
	}
	prec := file.Precision
	if precisionSet {
		prec = *precision
	}
	a := file.Matrix
	log.Debugf("loaded %dx%d matrix from %s", a.Rows(), a.Cols(), *inPath)

	var opts []decompose.Option
	tr := &decompose.Trace{}
	if *trace {
		opts = append(opts, decompose.WithTrace(tr))
	}
	d := decompose.New(opts...)

	var L, U, P *matrix.Dense
	switch *mode {
	case "lu":
		L, U, err = d.LUExplain(a)
		if err == nil {
			P = matrix.Identity(a.Rows())
		}
	default:
		L, U, P, err = d.PLUExplain(a)
	}
	if err != nil {
		fmt.Fprintf(stderr, "plu: %v\n", err)
		if errors.Is(err, matrix.ErrNilMatrix) {
			return exitUsage
		}
		return exitNoFactors
	}

	printMatrix(stdout, "L", L, prec)
	printMatrix(stdout, "U", U, prec)
	if *mode == "plu" {
		printMatrix(stdout, "P", P, prec)
	}
	if *verify {
		fmt.Fprintf(stdout, "max |LU - PA| = %g\n", maxAbsDiff(matrix.Mul(L, U), matrix.Mul(P, a)))
	}
	if *trace {
		fmt.Fprintf(stdout, "trace:\n%s\n", tr)
	}

	return exitOK
}

func printMatrix(w io.Writer, name string, m *matrix.Dense, prec int) {
	fmt.Fprintf(w, "%s =\n%s\n", name, matrix.Render(m, prec))
}

// maxAbsDiff returns max |a[i][j] - b[i][j]| for same-shaped a and b.
func maxAbsDiff(a, b *matrix.Dense) float64 {
	diff := matrix.Sub(a, b)
	worst := 0.0
	diff.Do(func(_, _ int, v float64) bool {
		worst = math.Max(worst, math.Abs(v))
		return true
	})

	return worst
}
