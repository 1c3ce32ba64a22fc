package grammar

import (
	"sort"
	"unicode"
	"unicode/utf8"
)

// Validation is the diagnostic report over a grammar. None of the sets is
// a hard failure; callers decide what to surface.
type Validation struct {
	// Undefined lists symbols written like nonterminals, leading uppercase
	// letter, that occur in a right-hand side but have no productions.
	Undefined []string
	// Unreachable lists defined nonterminals not reachable from the start
	// symbol.
	Unreachable []string
	// NeverUsed lists defined nonterminals, start excluded, that occur in
	// no right-hand side.
	NeverUsed []string
	// NonProductive lists defined nonterminals that derive no terminal
	// string.
	NonProductive []string
	Reachable     []string
	Productive    []string
}

// Validate analyzes a grammar for undefined, unreachable, unused, and
// non-productive nonterminals.
func Validate(g *Grammar) *Validation {
	defined := g.NonTerminals()

	used := map[string]struct{}{}
	undefinedSet := map[string]struct{}{}
	for _, nt := range defined {
		for _, alt := range g.Alternatives(nt) {
			for _, sym := range alt {
				if g.IsNonTerminal(sym) {
					used[sym] = struct{}{}
					continue
				}
				if namedLikeNonTerminal(sym) {
					undefinedSet[sym] = struct{}{}
				}
			}
		}
	}

	reachable := map[string]struct{}{}
	var visit func(nt string)
	visit = func(nt string) {
		if _, ok := reachable[nt]; ok {
			return
		}
		reachable[nt] = struct{}{}
		for _, alt := range g.Alternatives(nt) {
			for _, sym := range alt {
				if g.IsNonTerminal(sym) {
					visit(sym)
				}
			}
		}
	}
	if g.IsNonTerminal(g.Start()) {
		visit(g.Start())
	}

	var unreachable []string
	for _, nt := range defined {
		if _, ok := reachable[nt]; !ok {
			unreachable = append(unreachable, nt)
		}
	}

	var neverUsed []string
	for _, nt := range defined {
		if nt == g.Start() {
			continue
		}
		if _, ok := used[nt]; !ok {
			neverUsed = append(neverUsed, nt)
		}
	}

	productive := map[string]struct{}{}
	for {
		more := false
		for _, nt := range defined {
			if _, ok := productive[nt]; ok {
				continue
			}
			for _, alt := range g.Alternatives(nt) {
				if altProductive(g, alt, productive) {
					productive[nt] = struct{}{}
					more = true
					break
				}
			}
		}
		if !more {
			break
		}
	}

	var nonProductive []string
	for _, nt := range defined {
		if _, ok := productive[nt]; !ok {
			nonProductive = append(nonProductive, nt)
		}
	}

	return &Validation{
		Undefined:     sortedKeys(undefinedSet),
		Unreachable:   sorted(unreachable),
		NeverUsed:     sorted(neverUsed),
		NonProductive: sorted(nonProductive),
		Reachable:     sortedKeys(reachable),
		Productive:    sortedKeys(productive),
	}
}

// altProductive reports whether every symbol of an alternative is a
// terminal, epsilon, or an already-known-productive nonterminal.
func altProductive(g *Grammar, alt Alternative, productive map[string]struct{}) bool {
	for _, sym := range alt {
		if sym == Epsilon || !g.IsNonTerminal(sym) {
			continue
		}
		if _, ok := productive[sym]; !ok {
			return false
		}
	}
	return true
}

func sorted(syms []string) []string {
	sort.Strings(syms)
	return syms
}

// namedLikeNonTerminal reports whether a symbol follows the nonterminal
// spelling convention, a leading uppercase letter.
func namedLikeNonTerminal(sym string) bool {
	r, _ := utf8.DecodeRuneInString(sym)
	return unicode.IsUpper(r)
}

func sortedKeys(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	syms := make([]string, 0, len(set))
	for sym := range set {
		syms = append(syms, sym)
	}
	sort.Strings(syms)
	return syms
}
