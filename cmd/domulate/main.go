// Command domulate runs trigger scenario files against the headless
// harness and reports per-step failures.
//
// Usage:
//
//	domulate [-q] scenario.yaml [scenario.yaml ...]
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/domulate/domulate/scenario"
)

func main() {
	quiet := flag.Bool("q", false, "only print failures")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: domulate [-q] scenario.yaml [scenario.yaml ...]")
		os.Exit(2)
	}

	failed := false
	for _, path := range flag.Args() {
		s, err := scenario.LoadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			failed = true
			continue
		}
		failures, err := scenario.Run(s)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s: %v\n", path, s.Name, err)
			failed = true
			continue
		}
		if len(failures) > 0 {
			failed = true
			fmt.Printf("FAIL %s: %s\n", path, s.Name)
			for _, f := range failures {
				fmt.Printf("  %s\n", f)
			}
			continue
		}
		if !*quiet {
			fmt.Printf("ok   %s: %s (%d steps)\n", path, s.Name, len(s.Steps))
		}
	}
	if failed {
		os.Exit(1)
	}
}
