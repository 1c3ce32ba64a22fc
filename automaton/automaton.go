package automaton

import (
	"strings"

	"github.com/hizake/cfgkit/spec"
)

const (
	// Epsilon labels spontaneous transitions. It is never part of the
	// alphabet.
	Epsilon = "ε"
	// EmptySetSymbol names the empty state set and the dead state added by
	// completion.
	EmptySetSymbol = "∅"
)

// Automaton is a finite automaton over named states. The transition
// relation maps a state and a symbol (or Epsilon) to a set of destination
// states, so the same model covers NFAs and DFAs; a DFA is the special
// case with no epsilon transitions and at most one destination per pair.
type Automaton struct {
	states      []string
	stateSet    map[string]struct{}
	alphabet    []string
	alphabetSet map[string]struct{}
	start       string
	accepting   map[string]struct{}
	transitions map[string]map[string][]string
}

func NewAutomaton() *Automaton {
	return &Automaton{
		stateSet:    map[string]struct{}{},
		alphabetSet: map[string]struct{}{},
		accepting:   map[string]struct{}{},
		transitions: map[string]map[string][]string{},
	}
}

// AutomatonBuilder builds an Automaton from the parsed AST of an
// automaton description.
type AutomatonBuilder struct {
	AST *spec.AutomatonNode
}

func (b *AutomatonBuilder) Build() (*Automaton, error) {
	if b.AST == nil || len(b.AST.States) == 0 {
		return nil, spec.SynErrNoState
	}
	a := NewAutomaton()
	for _, s := range b.AST.States {
		a.AddState(s)
	}
	for _, sym := range b.AST.Alphabet {
		a.addSymbol(sym)
	}
	a.SetStart(b.AST.Start)
	for _, s := range b.AST.Accepting {
		a.AddAccepting(s)
	}
	for _, tr := range b.AST.Transitions {
		a.AddTransition(tr.From, tr.Symbol, tr.To...)
	}
	return a, nil
}

func (a *Automaton) AddState(name string) {
	if _, ok := a.stateSet[name]; ok {
		return
	}
	a.stateSet[name] = struct{}{}
	a.states = append(a.states, name)
}

func (a *Automaton) addSymbol(sym string) {
	if sym == Epsilon {
		return
	}
	if _, ok := a.alphabetSet[sym]; ok {
		return
	}
	a.alphabetSet[sym] = struct{}{}
	a.alphabet = append(a.alphabet, sym)
}

func (a *Automaton) SetStart(name string) {
	if name == "" {
		return
	}
	a.AddState(name)
	a.start = name
}

func (a *Automaton) AddAccepting(name string) {
	a.AddState(name)
	a.accepting[name] = struct{}{}
}

// AddTransition records destinations for a state/symbol pair, implicitly
// declaring every mentioned state and any new non-epsilon symbol.
func (a *Automaton) AddTransition(from, sym string, to ...string) {
	a.AddState(from)
	a.addSymbol(sym)
	row, ok := a.transitions[from]
	if !ok {
		row = map[string][]string{}
		a.transitions[from] = row
	}
	for _, dest := range to {
		a.AddState(dest)
		if contains(row[sym], dest) {
			continue
		}
		row[sym] = append(row[sym], dest)
	}
}

// States returns the states in declaration order.
func (a *Automaton) States() []string {
	states := make([]string, len(a.states))
	copy(states, a.states)
	return states
}

// Alphabet returns the input symbols in declaration order. The order is
// fixed per automaton; minimization signatures depend on it.
func (a *Automaton) Alphabet() []string {
	alphabet := make([]string, len(a.alphabet))
	copy(alphabet, a.alphabet)
	return alphabet
}

func (a *Automaton) Start() string {
	return a.start
}

func (a *Automaton) IsAccepting(name string) bool {
	_, ok := a.accepting[name]
	return ok
}

// Accepting returns the accepting states in declaration order.
func (a *Automaton) Accepting() []string {
	var acc []string
	for _, s := range a.states {
		if a.IsAccepting(s) {
			acc = append(acc, s)
		}
	}
	return acc
}

func (a *Automaton) HasState(name string) bool {
	_, ok := a.stateSet[name]
	return ok
}

// Destinations returns the transition image of a state/symbol pair.
func (a *Automaton) Destinations(from, sym string) []string {
	row, ok := a.transitions[from]
	if !ok {
		return nil
	}
	return row[sym]
}

func (a *Automaton) Clone() *Automaton {
	c := NewAutomaton()
	for _, s := range a.states {
		c.AddState(s)
	}
	for _, sym := range a.alphabet {
		c.addSymbol(sym)
	}
	c.start = a.start
	for s := range a.accepting {
		c.accepting[s] = struct{}{}
	}
	for from, row := range a.transitions {
		for sym, dests := range row {
			c.AddTransition(from, sym, dests...)
		}
	}
	return c
}

// String renders the automaton in the five-section description format.
func (a *Automaton) String() string {
	var b strings.Builder
	b.WriteString("States: ")
	b.WriteString(strings.Join(a.states, ","))
	b.WriteString("\nAlphabet: ")
	b.WriteString(strings.Join(a.alphabet, ","))
	b.WriteString("\nStart: ")
	b.WriteString(a.start)
	b.WriteString("\nAccept: ")
	b.WriteString(strings.Join(a.Accepting(), ","))
	b.WriteString("\nTransitions:\n")
	for _, from := range a.states {
		row := a.transitions[from]
		if row == nil {
			continue
		}
		for _, sym := range a.transitionSymbols(from) {
			b.WriteString(from)
			b.WriteString(",")
			b.WriteString(sym)
			b.WriteString("->")
			b.WriteString(strings.Join(row[sym], ","))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// transitionSymbols returns the symbols a state transitions on, in
// alphabet order with epsilon last.
func (a *Automaton) transitionSymbols(from string) []string {
	row := a.transitions[from]
	var syms []string
	for _, sym := range a.alphabet {
		if _, ok := row[sym]; ok {
			syms = append(syms, sym)
		}
	}
	if _, ok := row[Epsilon]; ok {
		syms = append(syms, Epsilon)
	}
	return syms
}

func contains(list []string, name string) bool {
	for _, s := range list {
		if s == name {
			return true
		}
	}
	return false
}
