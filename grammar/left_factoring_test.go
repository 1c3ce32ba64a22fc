package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLeftFactor(t *testing.T) {
	tests := []struct {
		caption string
		src     string
		want    string
	}{
		{
			caption: "dangling-else style common prefix",
			src: `
S -> i E t S | i E t S e S | a
E -> b
`,
			want: "S -> i E t S S_fact | a\nE -> b\nS_fact -> ε | e S\n",
		},
		{
			caption: "a deeper shared prefix is factored by later passes",
			src: `
S -> a b c | a b d | a e
`,
			want: "S -> a S_fact\nS_fact -> b S_fact_fact | e\nS_fact_fact -> c | d\n",
		},
		{
			caption: "independent groups are factored independently",
			src: `
S -> a b | a c | d e | d f
`,
			want: "S -> a S_fact | d S_fact_fact\nS_fact -> b | c\nS_fact_fact -> e | f\n",
		},
		{
			caption: "no shared prefixes leave the grammar unchanged",
			src: `
S -> a | b C
C -> c
`,
			want: "S -> a | b C\nC -> c\n",
		},
		{
			caption: "epsilon alternatives are never grouped",
			src: `
S -> ε | a | ε
`,
			want: "S -> ε | a | ε\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			g := genGrammar(t, tt.src)
			out := LeftFactor(g)
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestLeftFactor_Fixpoint(t *testing.T) {
	srcs := []string{
		"S -> i E t S | i E t S e S | a\nE -> b\n",
		"S -> a b c | a b d | a e\n",
		"S -> a b | a c | d e | d f\n",
	}
	for _, src := range srcs {
		out := LeftFactor(genGrammar(t, src))
		for _, nt := range out.NonTerminals() {
			alts := out.Alternatives(nt)
			for i := 0; i < len(alts); i++ {
				for j := i + 1; j < len(alts); j++ {
					if alts[i][0] == Epsilon || alts[j][0] == Epsilon {
						continue
					}
					assert.NotEqual(t, alts[i][0], alts[j][0],
						"%v keeps alternatives %q and %q with a shared prefix", nt, alts[i], alts[j])
				}
			}
		}
	}
}

func TestLeftFactor_DoesNotMutateInput(t *testing.T) {
	g := genGrammar(t, "S -> a b | a c\n")
	before := g.String()
	LeftFactor(g)
	assert.Equal(t, before, g.String())
}
