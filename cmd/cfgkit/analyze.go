package main

import (
	"encoding/json"
	"fmt"

	verr "github.com/hizake/cfgkit/error"
	"github.com/hizake/cfgkit/grammar"
	"github.com/hizake/cfgkit/spec"
	"github.com/spf13/cobra"
)

var analyzeFlags = struct {
	output    *string
	transform *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "analyze",
		Short:   "Compute FIRST/FOLLOW sets, the LL(1) table, and validation diagnostics for a grammar",
		Example: `  cfgkit analyze grammar.txt -o report.json`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runAnalyze,
	}
	analyzeFlags.output = cmd.Flags().StringP("output", "o", "", "output file path (default stdout)")
	analyzeFlags.transform = cmd.Flags().Bool("transform", false, "eliminate left recursion and left-factor before analyzing")
	rootCmd.AddCommand(cmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	g, root, err := readGrammar(args)
	if err != nil {
		return err
	}
	if *analyzeFlags.transform {
		g = grammar.LeftFactor(grammar.EliminateLeftRecursion(g))
	}

	report := genReport(g, root)

	w, done, err := writeOutput(*analyzeFlags.output)
	if err != nil {
		return err
	}
	defer done()

	b, err := json.Marshal(report)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%v\n", string(b))
	return nil
}

func readGrammar(args []string) (*grammar.Grammar, *spec.RootNode, error) {
	name, src, err := readSource(args)
	if err != nil {
		return nil, nil, err
	}
	defer src.Close()

	root, err := spec.Parse(src)
	if err != nil {
		return nil, nil, &verr.SourceError{
			Cause:      err,
			SourceName: name,
		}
	}
	b := grammar.GrammarBuilder{
		AST: root,
	}
	g, err := b.Build()
	if err != nil {
		return nil, nil, err
	}
	return g, root, nil
}

func genReport(g *grammar.Grammar, root *spec.RootNode) *spec.Report {
	fst := grammar.GenFirstSet(g)
	flw := grammar.GenFollowSet(g, fst)
	tbl := grammar.GenParsingTable(g, fst, flw)
	val := grammar.Validate(g)

	report := &spec.Report{
		Start:        g.Start(),
		Grammar:      g.String(),
		Terminals:    g.Terminals(),
		NonTerminals: g.NonTerminals(),
		LL1:          tbl.IsLL1(),
		Validation: &spec.ValidationEntry{
			Undefined:     val.Undefined,
			Unreachable:   val.Unreachable,
			NeverUsed:     val.NeverUsed,
			NonProductive: val.NonProductive,
			Reachable:     val.Reachable,
			Productive:    val.Productive,
		},
	}

	for _, nt := range g.NonTerminals() {
		if e, ok := fst.Find(nt); ok {
			report.First = append(report.First, &spec.FirstEntry{
				NonTerminal: nt,
				Symbols:     e.Symbols(),
				Empty:       e.Empty(),
			})
		}
		if e, ok := flw.Find(nt); ok {
			report.Follow = append(report.Follow, &spec.FollowEntry{
				NonTerminal: nt,
				Symbols:     e.Symbols(),
				EOF:         e.EOF(),
			})
		}
		for _, la := range tbl.LookAheads(nt) {
			report.Table = append(report.Table, &spec.TableEntry{
				NonTerminal:  nt,
				LookAhead:    la,
				Alternatives: altStrings(tbl.Find(nt, la)),
			})
		}
	}
	for _, c := range tbl.Conflicts() {
		report.Conflicts = append(report.Conflicts, &spec.ConflictEntry{
			NonTerminal:  c.NonTerminal,
			LookAhead:    c.LookAhead,
			Alternatives: altStrings(c.Alternatives),
		})
	}
	if root != nil {
		for _, sk := range root.Skipped {
			report.SkippedLines = append(report.SkippedLines, &spec.SkippedLine{
				Row:  sk.Row,
				Text: sk.Text,
			})
		}
	}
	return report
}

func altStrings(alts []grammar.Alternative) []string {
	ss := make([]string, len(alts))
	for i, alt := range alts {
		ss[i] = alt.String()
	}
	return ss
}
