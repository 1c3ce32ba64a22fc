package grammar

import (
	"strings"

	verr "github.com/hizake/cfgkit/error"
	"github.com/hizake/cfgkit/spec"
)

const (
	// Epsilon is the empty-string symbol.
	Epsilon = "ε"
	// EndMarker is the input-end symbol. It appears only in FOLLOW sets and
	// parsing-table lookaheads, never inside a production.
	EndMarker = "$"
)

// Alternative is one right-hand side of a production: an ordered, non-empty
// sequence of symbols. The epsilon alternative is the single-element
// sequence containing only Epsilon.
type Alternative []string

func (a Alternative) String() string {
	return strings.Join(a, " ")
}

func (a Alternative) Equal(o Alternative) bool {
	if len(a) != len(o) {
		return false
	}
	for i := range a {
		if a[i] != o[i] {
			return false
		}
	}
	return true
}

func (a Alternative) IsEpsilon() bool {
	return len(a) == 1 && a[0] == Epsilon
}

func (a Alternative) clone() Alternative {
	c := make(Alternative, len(a))
	copy(c, a)
	return c
}

// Grammar is the symbol model all analyses operate on: an ordered mapping
// from nonterminal to its alternatives. Declaration order is meaningful;
// it drives the enumeration order of the transformations and keeps every
// derived artifact deterministic. A symbol is a nonterminal iff it is a key
// of the mapping; every other symbol is a terminal.
type Grammar struct {
	start        string
	nonTerminals []string
	alts         map[string][]Alternative
}

// GrammarBuilder builds a Grammar from the parsed AST of grammar source
// text. The start symbol is the LHS of the first production.
type GrammarBuilder struct {
	AST *spec.RootNode
}

func (b *GrammarBuilder) Build() (*Grammar, error) {
	if b.AST == nil || len(b.AST.Productions) == 0 {
		return nil, &verr.SourceError{Cause: spec.SynErrNoProduction}
	}
	g := &Grammar{
		alts: map[string][]Alternative{},
	}
	g.start = b.AST.Productions[0].LHS
	for _, prod := range b.AST.Productions {
		for _, alt := range prod.Alternatives {
			g.AddAlternative(prod.LHS, Alternative(alt.Symbols).clone())
		}
	}
	return g, nil
}

func NewGrammar(start string) *Grammar {
	return &Grammar{
		start: start,
		alts:  map[string][]Alternative{},
	}
}

// AddAlternative appends an alternative to a nonterminal, declaring the
// nonterminal at the end of the declaration order if it is new. An empty
// alternative is normalized to the epsilon alternative.
func (g *Grammar) AddAlternative(lhs string, alt Alternative) {
	if len(alt) == 0 {
		alt = Alternative{Epsilon}
	}
	if _, ok := g.alts[lhs]; !ok {
		g.nonTerminals = append(g.nonTerminals, lhs)
	}
	g.alts[lhs] = append(g.alts[lhs], alt)
}

func (g *Grammar) Start() string {
	return g.start
}

// NonTerminals returns the nonterminals in declaration order.
func (g *Grammar) NonTerminals() []string {
	nts := make([]string, len(g.nonTerminals))
	copy(nts, g.nonTerminals)
	return nts
}

func (g *Grammar) Alternatives(nt string) []Alternative {
	return g.alts[nt]
}

func (g *Grammar) IsNonTerminal(sym string) bool {
	_, ok := g.alts[sym]
	return ok
}

// Terminals returns every symbol that occurs in a right-hand side and has
// no production of its own, excluding the epsilon marker.
func (g *Grammar) Terminals() []string {
	seen := map[string]struct{}{}
	var terms []string
	for _, nt := range g.nonTerminals {
		for _, alt := range g.alts[nt] {
			for _, sym := range alt {
				if sym == Epsilon || g.IsNonTerminal(sym) {
					continue
				}
				if _, ok := seen[sym]; ok {
					continue
				}
				seen[sym] = struct{}{}
				terms = append(terms, sym)
			}
		}
	}
	return terms
}

// hasSymbol reports whether a name is already taken anywhere in the symbol
// universe. Fresh names generated by the transformations must avoid every
// existing symbol, terminals included.
func (g *Grammar) hasSymbol(name string) bool {
	if _, ok := g.alts[name]; ok {
		return true
	}
	for _, nt := range g.nonTerminals {
		for _, alt := range g.alts[nt] {
			for _, sym := range alt {
				if sym == name {
					return true
				}
			}
		}
	}
	return false
}

// Clone returns a deep copy. Transformations never alias the sequences of
// the grammar they were given.
func (g *Grammar) Clone() *Grammar {
	c := &Grammar{
		start:        g.start,
		nonTerminals: make([]string, len(g.nonTerminals)),
		alts:         map[string][]Alternative{},
	}
	copy(c.nonTerminals, g.nonTerminals)
	for nt, alts := range g.alts {
		cAlts := make([]Alternative, len(alts))
		for i, alt := range alts {
			cAlts[i] = alt.clone()
		}
		c.alts[nt] = cAlts
	}
	return c
}

// String renders the grammar in its canonical textual form, one production
// per line in declaration order.
func (g *Grammar) String() string {
	var b strings.Builder
	for _, nt := range g.nonTerminals {
		b.WriteString(nt)
		b.WriteString(" -> ")
		for i, alt := range g.alts[nt] {
			if i > 0 {
				b.WriteString(" | ")
			}
			b.WriteString(alt.String())
		}
		b.WriteString("\n")
	}
	return b.String()
}

// setAlternatives replaces the alternatives of an existing nonterminal.
func (g *Grammar) setAlternatives(nt string, alts []Alternative) {
	g.alts[nt] = alts
}
