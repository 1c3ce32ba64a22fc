package main

import (
	"fmt"
	"os"

	"github.com/hizake/cfgkit/grammar"
	"github.com/spf13/cobra"
)

var transformFlags = struct {
	leftRecursion *bool
	factor        *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "transform",
		Short:   "Rewrite a grammar by left-recursion elimination and left factoring",
		Example: `  cfgkit transform grammar.txt --left-recursion`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runTransform,
	}
	transformFlags.leftRecursion = cmd.Flags().Bool("left-recursion", false, "eliminate direct and indirect left recursion")
	transformFlags.factor = cmd.Flags().Bool("factor", false, "extract common prefixes among alternatives")
	rootCmd.AddCommand(cmd)
}

func runTransform(cmd *cobra.Command, args []string) error {
	g, _, err := readGrammar(args)
	if err != nil {
		return err
	}

	// Both rewrites apply when neither is requested explicitly.
	all := !*transformFlags.leftRecursion && !*transformFlags.factor
	if all || *transformFlags.leftRecursion {
		g = grammar.EliminateLeftRecursion(g)
	}
	if all || *transformFlags.factor {
		g = grammar.LeftFactor(g)
	}

	fmt.Fprint(os.Stdout, g.String())
	return nil
}
