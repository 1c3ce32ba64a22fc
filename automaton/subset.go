package automaton

import (
	"strings"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

func newStateSet(states ...string) *treeset.Set {
	set := treeset.NewWith(utils.StringComparator)
	for _, s := range states {
		set.Add(s)
	}
	return set
}

// setName is the canonical name of a state set: its members sorted and
// comma-joined, which the treeset's ordered iteration gives directly. The
// empty set gets the distinguished empty-set symbol.
func setName(set *treeset.Set) string {
	if set.Size() == 0 {
		return EmptySetSymbol
	}
	members := make([]string, 0, set.Size())
	for _, v := range set.Values() {
		members = append(members, v.(string))
	}
	return strings.Join(members, ",")
}

// epsilonClosure expands a state set with everything reachable through
// epsilon transitions alone.
func epsilonClosure(a *Automaton, set *treeset.Set) *treeset.Set {
	closure := newStateSet()
	worklist := arraylist.New()
	for _, v := range set.Values() {
		closure.Add(v)
		worklist.Add(v)
	}
	for i := 0; i < worklist.Size(); i++ {
		v, _ := worklist.Get(i)
		for _, dest := range a.Destinations(v.(string), Epsilon) {
			if closure.Contains(dest) {
				continue
			}
			closure.Add(dest)
			worklist.Add(dest)
		}
	}
	return closure
}

// move returns the union of destinations reachable from the set on one
// non-epsilon symbol.
func move(a *Automaton, set *treeset.Set, sym string) *treeset.Set {
	dests := newStateSet()
	for _, v := range set.Values() {
		for _, dest := range a.Destinations(v.(string), sym) {
			dests.Add(dest)
		}
	}
	return dests
}

// Determinize converts an NFA into an equivalent DFA by subset
// construction. DFA states are named after their underlying NFA state
// sets; a DFA state accepts iff its set contains an accepting NFA state.
// Transitions into the empty set are omitted entirely. An automaton
// without a start state cannot be determinized.
func Determinize(n *Automaton) (*Automaton, error) {
	if n.Start() == "" {
		return nil, ErrNoStates
	}
	dfa := NewAutomaton()
	for _, sym := range n.Alphabet() {
		dfa.addSymbol(sym)
	}

	startSet := epsilonClosure(n, newStateSet(n.Start()))
	startName := setName(startSet)
	dfa.AddState(startName)
	dfa.SetStart(startName)

	sets := map[string]*treeset.Set{startName: startSet}
	worklist := arraylist.New()
	worklist.Add(startName)

	for i := 0; i < worklist.Size(); i++ {
		v, _ := worklist.Get(i)
		name := v.(string)
		current := sets[name]
		for _, sym := range n.Alphabet() {
			target := epsilonClosure(n, move(n, current, sym))
			if target.Size() == 0 {
				continue
			}
			targetName := setName(target)
			if _, ok := sets[targetName]; !ok {
				sets[targetName] = target
				dfa.AddState(targetName)
				worklist.Add(targetName)
			}
			dfa.AddTransition(name, sym, targetName)
		}
	}

	for name, set := range sets {
		for _, v := range set.Values() {
			if n.IsAccepting(v.(string)) {
				dfa.AddAccepting(name)
				break
			}
		}
	}
	return dfa, nil
}
