package main

import (
	"encoding/json"
	"fmt"

	"github.com/hizake/cfgkit/automaton"
	verr "github.com/hizake/cfgkit/error"
	"github.com/hizake/cfgkit/spec"
	"github.com/spf13/cobra"
)

var nfa2dfaFlags = struct {
	output     *string
	noMinimize *bool
	text       *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "nfa2dfa",
		Short:   "Convert an NFA description into a completed, minimized DFA",
		Example: `  cfgkit nfa2dfa machine.txt -o dfa.json`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runNFA2DFA,
	}
	nfa2dfaFlags.output = cmd.Flags().StringP("output", "o", "", "output file path (default stdout)")
	nfa2dfaFlags.noMinimize = cmd.Flags().Bool("no-minimize", false, "stop after subset construction and completion")
	nfa2dfaFlags.text = cmd.Flags().Bool("text", false, "write the five-section description format instead of JSON")
	rootCmd.AddCommand(cmd)
}

func runNFA2DFA(cmd *cobra.Command, args []string) error {
	name, src, err := readSource(args)
	if err != nil {
		return err
	}
	defer src.Close()

	ast, err := spec.ParseAutomaton(src)
	if err != nil {
		return &verr.SourceError{
			Cause:      err,
			SourceName: name,
		}
	}
	b := automaton.AutomatonBuilder{
		AST: ast,
	}
	nfa, err := b.Build()
	if err != nil {
		return err
	}

	dfa, err := automaton.Determinize(nfa)
	if err != nil {
		return err
	}
	dfa = automaton.Complete(dfa)
	if !*nfa2dfaFlags.noMinimize {
		dfa, err = automaton.Minimize(dfa)
		if err != nil {
			return err
		}
	}

	w, done, err := writeOutput(*nfa2dfaFlags.output)
	if err != nil {
		return err
	}
	defer done()

	if *nfa2dfaFlags.text {
		fmt.Fprint(w, dfa.String())
		return nil
	}
	out, err := json.Marshal(genAutomatonDescription(dfa))
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%v\n", string(out))
	return nil
}

func genAutomatonDescription(a *automaton.Automaton) *spec.AutomatonDescription {
	desc := &spec.AutomatonDescription{
		States:    a.States(),
		Alphabet:  a.Alphabet(),
		Start:     a.Start(),
		Accepting: a.Accepting(),
	}
	for _, state := range a.States() {
		for _, sym := range a.Alphabet() {
			dests := a.Destinations(state, sym)
			if len(dests) == 0 {
				continue
			}
			desc.Transitions = append(desc.Transitions, &spec.TransitionDesc{
				From:   state,
				Symbol: sym,
				To:     dests,
			})
		}
	}
	return desc
}
