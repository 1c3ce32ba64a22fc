package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		caption string
		src     string
		want    *Validation
	}{
		{
			caption: "a clean grammar reports nothing",
			src:     exprGrammarSrc,
			want: &Validation{
				Reachable:  []string{"E", "E'", "F", "T", "T'"},
				Productive: []string{"E", "E'", "F", "T", "T'"},
			},
		},
		{
			caption: "a disconnected nonterminal is unreachable and never used",
			src:     ambiguousGrammarSrc,
			want: &Validation{
				Unreachable: []string{"C"},
				NeverUsed:   []string{"C"},
				Reachable:   []string{"A", "B", "S"},
				Productive:  []string{"A", "B", "C", "S"},
			},
		},
		{
			caption: "an uppercase symbol without productions is undefined",
			src: `
S -> A X
A -> a
`,
			want: &Validation{
				Undefined:  []string{"X"},
				Reachable:  []string{"A", "S"},
				Productive: []string{"A", "S"},
			},
		},
		{
			caption: "a nonterminal that only rewrites to itself is non-productive",
			src: `
S -> A | b
A -> A a
`,
			want: &Validation{
				NonProductive: []string{"A"},
				Reachable:     []string{"A", "S"},
				Productive:    []string{"S"},
			},
		},
		{
			caption: "mutual recursion without a terminal base case is non-productive",
			src: `
S -> A
A -> B
B -> A
`,
			want: &Validation{
				NonProductive: []string{"A", "B", "S"},
				Reachable:     []string{"A", "B", "S"},
			},
		},
		{
			caption: "an epsilon alternative makes a nonterminal productive",
			src: `
S -> A a
A -> ε
`,
			want: &Validation{
				Reachable:  []string{"A", "S"},
				Productive: []string{"A", "S"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			v := Validate(genGrammar(t, tt.src))
			assert.Equal(t, tt.want.Undefined, v.Undefined)
			assert.Equal(t, tt.want.Unreachable, v.Unreachable)
			assert.Equal(t, tt.want.NeverUsed, v.NeverUsed)
			assert.Equal(t, tt.want.NonProductive, v.NonProductive)
			assert.Equal(t, tt.want.Reachable, v.Reachable)
			assert.Equal(t, tt.want.Productive, v.Productive)
		})
	}
}
