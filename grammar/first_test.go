package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type first struct {
	nt      string
	symbols []string
	empty   bool
}

func TestGenFirstSet(t *testing.T) {
	tests := []struct {
		caption string
		src     string
		first   []first
	}{
		{
			caption: "expression grammar",
			src:     exprGrammarSrc,
			first: []first{
				{nt: "E", symbols: []string{"(", "id"}},
				{nt: "E'", symbols: []string{"+"}, empty: true},
				{nt: "T", symbols: []string{"(", "id"}},
				{nt: "T'", symbols: []string{"*"}, empty: true},
				{nt: "F", symbols: []string{"(", "id"}},
			},
		},
		{
			caption: "a nullable chain propagates to the head",
			src: `
S -> A B c
A -> a | ε
B -> b | ε
`,
			first: []first{
				{nt: "S", symbols: []string{"a", "b", "c"}},
				{nt: "A", symbols: []string{"a"}, empty: true},
				{nt: "B", symbols: []string{"b"}, empty: true},
			},
		},
		{
			caption: "an epsilon-only nonterminal is nullable",
			src: `
S -> A b
A -> ε
`,
			first: []first{
				{nt: "S", symbols: []string{"b"}},
				{nt: "A", symbols: []string{}, empty: true},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			g := genGrammar(t, tt.src)
			fst := GenFirstSet(g)
			for _, want := range tt.first {
				e, ok := fst.Find(want.nt)
				require.True(t, ok, "FIRST(%v) was not found", want.nt)
				assert.ElementsMatch(t, want.symbols, e.Symbols(), "FIRST(%v)", want.nt)
				assert.Equal(t, want.empty, e.Empty(), "FIRST(%v) nullability", want.nt)
			}
		})
	}
}

func TestGenFirstSet_NeverContainsEndMarker(t *testing.T) {
	g := genGrammar(t, exprGrammarSrc)
	fst := GenFirstSet(g)
	for _, nt := range g.NonTerminals() {
		e, ok := fst.Find(nt)
		require.True(t, ok)
		assert.False(t, e.Contains(EndMarker), "FIRST(%v) contains the end marker", nt)
	}
}
