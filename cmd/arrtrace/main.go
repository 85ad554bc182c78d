// Command arrtrace prints how a dynamic array's size and capacity evolve.
//
// Usage:
//
//	arrtrace [flags]
//
// Without -script it pushes -n integers onto an empty array and prints one
// row per push, marking the pushes that reallocated the buffer. With -script
// it replays a YAML operation script instead.
//
// Examples:
//
//	arrtrace -n 20
//	arrtrace -n 20 -max-cap 8
//	arrtrace -script ops.yaml
//
// Script format:
//
//	reserve: 2
//	ops:
//	  - {op: push, value: 1}
//	  - {op: insert, index: 0, value: 99}
//	  - {op: erase, index: 1}
//	  - {op: at, index: 5}
//
// Supported ops: push, pop, insert, erase, set, at, reserve, resize, clear.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-container/container/dynarray"
	"github.com/cwbudde/algo-container/internal/trace"
)

func main() {
	n := flag.Int("n", 16, "number of pushes in growth mode")
	script := flag.String("script", "", "YAML operation script to replay")
	maxCap := flag.Int("max-cap", 0, "refuse allocations above this many slots (0 = unlimited)")
	contents := flag.Bool("contents", true, "print array contents")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: arrtrace [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints size and capacity of a dynamic array after each operation.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  arrtrace -n 20\n")
		fmt.Fprintf(os.Stderr, "  arrtrace -n 20 -max-cap 8\n")
		fmt.Fprintf(os.Stderr, "  arrtrace -script ops.yaml\n")
	}
	flag.Parse()

	opts := []dynarray.Option{dynarray.WithMaxCapacity(*maxCap)}

	var (
		rows []trace.Row
		err  error
	)
	if *script != "" {
		rows, err = replayFile(*script, opts)
	} else {
		if *n < 0 {
			fmt.Fprintf(os.Stderr, "error: -n must not be negative\n")
			os.Exit(2)
		}
		rows, err = trace.Growth(*n, opts...)
	}

	// Rows up to a failing step are still worth showing.
	if len(rows) > 0 {
		if werr := printRows(os.Stdout, rows, *contents); werr != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", werr)
			os.Exit(1)
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func replayFile(path string, opts []dynarray.Option) ([]trace.Row, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := trace.ParseScript(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return trace.Replay(s, opts...)
}

func printRows(w io.Writer, rows []trace.Row, withContents bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	header := "Step\tOp\tSize\tCap\tRealloc\tResult"
	rule := "----\t--\t----\t---\t-------\t------"
	if withContents {
		header += "\tContents"
		rule += "\t--------"
	}
	if _, err := fmt.Fprintln(tw, header); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	if _, err := fmt.Fprintln(tw, rule); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}

	for _, r := range rows {
		realloc := ""
		if r.Realloc {
			realloc = "*"
		}
		line := fmt.Sprintf("%d\t%s\t%d\t%d\t%s\t%s", r.Step, r.Op, r.Size, r.Cap, realloc, r.Result)
		if withContents {
			line += "\t" + r.Contents
		}
		if _, err := fmt.Fprintln(tw, line); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}
