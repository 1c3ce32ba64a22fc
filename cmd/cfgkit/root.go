package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cfgkit",
	Short: "Analyze and transform context-free grammars and finite automata",
	Long: `cfgkit is an educational toolkit for formal-language algorithms:
- Computes FIRST/FOLLOW sets and LL(1) predictive tables with conflict detection.
- Eliminates left recursion and performs left factoring.
- Validates grammars for unreachable and non-productive nonterminals.
- Converts an NFA into a completed, minimized DFA.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}

// readSource opens the optional file argument of a command, falling back
// to stdin.
func readSource(args []string) (string, io.ReadCloser, error) {
	if len(args) == 0 {
		return "stdin", io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return "", nil, fmt.Errorf("Cannot open the source file %s: %w", args[0], err)
	}
	return args[0], f, nil
}

// writeOutput opens the -o target of a command, falling back to stdout.
// The returned closer is a no-op for stdout.
func writeOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("Cannot write an output file: %w", err)
	}
	return f, func() { f.Close() }, nil
}
