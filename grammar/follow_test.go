package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type follow struct {
	nt      string
	symbols []string
	eof     bool
}

func TestGenFollowSet(t *testing.T) {
	tests := []struct {
		caption string
		src     string
		follow  []follow
	}{
		{
			caption: "expression grammar",
			src:     exprGrammarSrc,
			follow: []follow{
				{nt: "E", symbols: []string{")"}, eof: true},
				{nt: "E'", symbols: []string{")"}, eof: true},
				{nt: "T", symbols: []string{"+", ")"}, eof: true},
				{nt: "T'", symbols: []string{"+", ")"}, eof: true},
				{nt: "F", symbols: []string{"*", "+", ")"}, eof: true},
			},
		},
		{
			caption: "a nullable suffix passes the parent FOLLOW down",
			src: `
S -> A B
A -> a
B -> b | ε
`,
			follow: []follow{
				{nt: "S", symbols: []string{}, eof: true},
				{nt: "A", symbols: []string{"b"}, eof: true},
				{nt: "B", symbols: []string{}, eof: true},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			g := genGrammar(t, tt.src)
			fst := GenFirstSet(g)
			flw := GenFollowSet(g, fst)
			for _, want := range tt.follow {
				e, ok := flw.Find(want.nt)
				require.True(t, ok, "FOLLOW(%v) was not found", want.nt)
				assert.ElementsMatch(t, want.symbols, e.Symbols(), "FOLLOW(%v)", want.nt)
				assert.Equal(t, want.eof, e.EOF(), "FOLLOW(%v) end marker", want.nt)
			}
		})
	}
}

func TestGenFollowSet_Properties(t *testing.T) {
	g := genGrammar(t, exprGrammarSrc)
	fst := GenFirstSet(g)
	flw := GenFollowSet(g, fst)

	start, ok := flw.Find(g.Start())
	require.True(t, ok)
	assert.True(t, start.EOF(), "FOLLOW(start) must contain the end marker")

	for _, nt := range g.NonTerminals() {
		e, ok := flw.Find(nt)
		require.True(t, ok)
		assert.False(t, e.Contains(Epsilon), "FOLLOW(%v) contains epsilon", nt)
	}
}
