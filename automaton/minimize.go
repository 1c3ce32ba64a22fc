package automaton

import (
	"errors"
	"sort"
	"strconv"
	"strings"
)

// ErrNoStates is reported when an algorithm needs at least one state to
// produce a meaningful result: determinization of an automaton without a
// start state, or minimization of an automaton with no states left after
// reduction.
var ErrNoStates = errors.New("automaton has no states")

// Complete returns a DFA with a transition for every state/symbol pair,
// routing every missing pair to a single shared dead state that loops on
// itself. The input is returned unchanged (as a copy) when nothing was
// missing.
func Complete(d *Automaton) *Automaton {
	out := d.Clone()
	dead := freshStateName(out, EmptySetSymbol)
	completed := false
	for _, state := range out.States() {
		for _, sym := range out.Alphabet() {
			if len(out.Destinations(state, sym)) > 0 {
				continue
			}
			out.AddTransition(state, sym, dead)
			completed = true
		}
	}
	if completed {
		for _, sym := range out.Alphabet() {
			out.AddTransition(dead, sym, dead)
		}
	}
	return out
}

// RemoveUnreachable drops every state not reachable from the start state,
// along with its transitions and accepting mark.
func RemoveUnreachable(d *Automaton) *Automaton {
	reachable := map[string]struct{}{}
	var visit func(state string)
	visit = func(state string) {
		if _, ok := reachable[state]; ok {
			return
		}
		reachable[state] = struct{}{}
		for _, sym := range append(d.Alphabet(), Epsilon) {
			for _, dest := range d.Destinations(state, sym) {
				visit(dest)
			}
		}
	}
	if d.Start() != "" {
		visit(d.Start())
	}

	out := NewAutomaton()
	for _, sym := range d.Alphabet() {
		out.addSymbol(sym)
	}
	for _, state := range d.States() {
		if _, ok := reachable[state]; !ok {
			continue
		}
		out.AddState(state)
		if d.IsAccepting(state) {
			out.AddAccepting(state)
		}
	}
	out.SetStart(d.Start())
	for _, state := range out.States() {
		for _, sym := range append(d.Alphabet(), Epsilon) {
			for _, dest := range d.Destinations(state, sym) {
				if _, ok := reachable[dest]; ok {
					out.AddTransition(state, sym, dest)
				}
			}
		}
	}
	return out
}

// Minimize reduces a DFA to its minimal equivalent by partition
// refinement. Blocks start as accepting vs. non-accepting states and are
// split until every pair of states in a block transitions into the same
// blocks on every symbol. Each final block becomes one state named by its
// sorted member list.
func Minimize(d *Automaton) (*Automaton, error) {
	r := RemoveUnreachable(d)

	var blocks [][]string
	if acc := r.Accepting(); len(acc) > 0 {
		blocks = append(blocks, acc)
	}
	var nonAcc []string
	for _, s := range r.States() {
		if !r.IsAccepting(s) {
			nonAcc = append(nonAcc, s)
		}
	}
	if len(nonAcc) > 0 {
		blocks = append(blocks, nonAcc)
	}
	if len(blocks) == 0 {
		return nil, ErrNoStates
	}

	alphabet := r.Alphabet()
	for {
		blockOf := indexBlocks(blocks)
		var refined [][]string
		split := false
		for _, block := range blocks {
			if len(block) == 1 {
				refined = append(refined, block)
				continue
			}
			var sigOrder []string
			groups := map[string][]string{}
			for _, state := range block {
				sig := signature(r, state, alphabet, blockOf)
				if _, ok := groups[sig]; !ok {
					sigOrder = append(sigOrder, sig)
				}
				groups[sig] = append(groups[sig], state)
			}
			if len(sigOrder) > 1 {
				split = true
			}
			for _, sig := range sigOrder {
				refined = append(refined, groups[sig])
			}
		}
		blocks = refined
		if !split {
			break
		}
	}

	blockOf := indexBlocks(blocks)
	out := NewAutomaton()
	for _, sym := range alphabet {
		out.addSymbol(sym)
	}
	names := make([]string, len(blocks))
	for i, block := range blocks {
		names[i] = blockName(block)
		out.AddState(names[i])
	}
	for i, block := range blocks {
		for _, member := range block {
			if r.IsAccepting(member) {
				out.AddAccepting(names[i])
				break
			}
		}
	}
	out.SetStart(names[blockOf[r.Start()]])
	for i, block := range blocks {
		representative := block[0]
		for _, sym := range alphabet {
			dests := r.Destinations(representative, sym)
			if len(dests) == 0 {
				continue
			}
			out.AddTransition(names[i], sym, names[blockOf[dests[0]]])
		}
	}
	return out, nil
}

func indexBlocks(blocks [][]string) map[string]int {
	blockOf := map[string]int{}
	for i, block := range blocks {
		for _, state := range block {
			blockOf[state] = i
		}
	}
	return blockOf
}

// signature encodes, per alphabet symbol in fixed order, the block a
// state's destination currently belongs to, with a sentinel for missing
// transitions.
func signature(d *Automaton, state string, alphabet []string, blockOf map[string]int) string {
	parts := make([]string, len(alphabet))
	for i, sym := range alphabet {
		dests := d.Destinations(state, sym)
		if len(dests) == 0 {
			parts[i] = "-"
			continue
		}
		parts[i] = strconv.Itoa(blockOf[dests[0]])
	}
	return strings.Join(parts, ",")
}

func blockName(block []string) string {
	members := make([]string, len(block))
	copy(members, block)
	sort.Strings(members)
	return strings.Join(members, ",")
}

func freshStateName(a *Automaton, base string) string {
	name := base
	for a.HasState(name) {
		name += "'"
	}
	return name
}
