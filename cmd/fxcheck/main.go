// fxcheck runs fixed-point test vectors against the Narrow and Wide formats
// and prints a pass/fail report.
package main

import (
	"context"
	_ "embed"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"text/tabwriter"

	"golang.org/x/sync/errgroup"

	"github.com/avdva/qfixed"
)

var (
	vectorsFlag  = flag.String("vectors", "", "comma separated list of YAML `files` with test vectors. Defaults to the built-in vectors")
	parallelFlag = flag.Int("parallel", runtime.GOMAXPROCS(0), "maximum `number` of files loaded or vectors run concurrently")
	failedFlag   = flag.Bool("failed", false, "report failed vectors only")
	debugFlag    = flag.Bool("debug", false, "log inexact operations to stderr")
)

//go:embed vectors.yaml
var builtinVectors []byte

func main() {
	log.SetFlags(0)
	log.SetPrefix("fxcheck: ")
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), help)
		fmt.Fprintln(flag.CommandLine.Output(), "\nOptional arguments:")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 0 {
		flag.Usage()
		os.Exit(2)
	}
	if *parallelFlag < 1 {
		log.Fatalf("-parallel must be positive, got %d", *parallelFlag)
	}
	if *debugFlag {
		qfixed.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	ctx := context.Background()
	vectors, err := loadAll(ctx, splitList(*vectorsFlag), *parallelFlag)
	if err != nil {
		log.Fatal(err)
	}
	results, err := runAll(ctx, vectors, *parallelFlag)
	if err != nil {
		log.Fatal(err)
	}
	failed, err := report(os.Stdout, results, *failedFlag)
	if err != nil {
		log.Fatal(err)
	}
	if failed > 0 {
		os.Exit(1)
	}
}

func splitList(s string) []string {
	var result []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}
	return result
}

// loadAll reads vector files concurrently and assigns ids to vectors without one.
// With no files the built-in vectors are used.
func loadAll(ctx context.Context, files []string, parallel int) ([]Vector, error) {
	if len(files) == 0 {
		vectors, err := parseVectors(builtinVectors)
		if err != nil {
			return nil, fmt.Errorf("built-in vectors: %w", err)
		}
		return assignIDs(vectors), nil
	}
	loaded := make([][]Vector, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(file)
			if err != nil {
				return err
			}
			vectors, err := parseVectors(data)
			if err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}
			loaded[i] = vectors
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	var result []Vector
	for _, vectors := range loaded {
		result = append(result, vectors...)
	}
	return assignIDs(result), nil
}

func assignIDs(vectors []Vector) []Vector {
	for i := range vectors {
		if vectors[i].ID == "" {
			vectors[i].ID = fmt.Sprintf("TC_%02d", i+1)
		}
	}
	return vectors
}

// runAll runs the vectors concurrently, results keep the order of vectors.
func runAll(ctx context.Context, vectors []Vector, parallel int) ([]Result, error) {
	results := make([]Result, len(vectors))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)
	for i, v := range vectors {
		i, v := i, v
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := run(v)
			if err != nil {
				return fmt.Errorf("%s: %w", v.ID, err)
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// report prints the results and a summary. It returns the number of failed vectors.
func report(w io.Writer, results []Result, failedOnly bool) (int, error) {
	tw := tabwriter.NewWriter(w, 0, 8, 1, ' ', 0)
	var failed int
	for _, r := range results {
		if !r.Pass {
			failed++
		} else if failedOnly {
			continue
		}
		fmt.Fprintln(tw, r.String())
	}
	fmt.Fprintln(tw)
	fmt.Fprintf(tw, "total:\t%d\n", len(results))
	fmt.Fprintf(tw, "passed:\t%d\n", len(results)-failed)
	fmt.Fprintf(tw, "failed:\t%d\n", failed)
	return failed, tw.Flush()
}

const help = `fxcheck runs arithmetic test vectors against the Q3.4 (8-bit) and
Q7.8 (16-bit) formats and reports the results.
Usage:
	fxcheck [-vectors files] [-parallel n] [-failed] [-debug]

Each vector is a YAML map with the keys desc, op (add, sub, mul, div),
width (8 or 16), a, b, expected, status (ok, saturated, div_by_zero, invalid)
and an optional epsilon. Operands are numbers or one of the symbols
max, min, lsb, half_lsb, below_res, nan, optionally negated.
The exit code is 1 if any vector fails.
`
