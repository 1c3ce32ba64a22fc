package spec

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAutomaton(t *testing.T) {
	tests := []struct {
		caption string
		src     string
		node    *AutomatonNode
		skipped int
		err     error
	}{
		{
			caption: "five labeled sections",
			src: `
States: q0,q1,q2
Alphabet: a,b
Start: q0
Accept: q2
Transitions:
q0,a->q0
q0,b->q1
q1,b->q2
`,
			node: &AutomatonNode{
				States:    []string{"q0", "q1", "q2"},
				Alphabet:  []string{"a", "b"},
				Start:     "q0",
				Accepting: []string{"q2"},
				Transitions: []*TransitionNode{
					{From: "q0", Symbol: "a", To: []string{"q0"}},
					{From: "q0", Symbol: "b", To: []string{"q1"}},
					{From: "q1", Symbol: "b", To: []string{"q2"}},
				},
			},
		},
		{
			caption: "labels are case-insensitive and lists may follow on later lines",
			src: `
states:
q0, q1
alphabet: a
transitions:
q0,a->q1
`,
			node: &AutomatonNode{
				States:   []string{"q0", "q1"},
				Alphabet: []string{"a"},
				Start:    "q0",
				Transitions: []*TransitionNode{
					{From: "q0", Symbol: "a", To: []string{"q1"}},
				},
			},
		},
		{
			caption: "states mentioned only by transitions are added implicitly",
			src: `
Alphabet: a
Transitions:
q0,a->q1,q2
`,
			node: &AutomatonNode{
				States:   []string{"q0", "q1", "q2"},
				Alphabet: []string{"a"},
				Start:    "q0",
				Transitions: []*TransitionNode{
					{From: "q0", Symbol: "a", To: []string{"q1", "q2"}},
				},
			},
		},
		{
			caption: "the epsilon word labels an epsilon transition",
			src: `
States: q0,q1
Transitions:
q0,epsilon->q1
`,
			node: &AutomatonNode{
				States: []string{"q0", "q1"},
				Start:  "q0",
				Transitions: []*TransitionNode{
					{From: "q0", Symbol: EpsilonMarker, To: []string{"q1"}},
				},
			},
		},
		{
			caption: "a start line with several names is skipped",
			src: `
States: q0,q1
Start: q1,q0
`,
			node: &AutomatonNode{
				States: []string{"q0", "q1"},
				Start:  "q0",
			},
			skipped: 1,
		},
		{
			caption: "malformed transition rows are skipped",
			src: `
States: q0
Transitions:
q0->q0
q0,a,b->q0
q0,a->
`,
			node: &AutomatonNode{
				States: []string{"q0"},
				Start:  "q0",
			},
			skipped: 3,
		},
		{
			caption: "a description with no determinable state fails",
			src:     "Alphabet: a,b\n",
			err:     SynErrNoState,
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			node, err := ParseAutomaton(strings.NewReader(tt.src))
			if tt.err != nil {
				assert.Equal(t, tt.err, err)
				assert.Nil(t, node)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.node.States, node.States)
			assert.Equal(t, tt.node.Alphabet, node.Alphabet)
			assert.Equal(t, tt.node.Start, node.Start)
			assert.Equal(t, tt.node.Accepting, node.Accepting)
			require.Len(t, node.Transitions, len(tt.node.Transitions))
			for i, want := range tt.node.Transitions {
				got := node.Transitions[i]
				assert.Equal(t, want.From, got.From)
				assert.Equal(t, want.Symbol, got.Symbol)
				assert.Equal(t, want.To, got.To)
			}
			assert.Len(t, node.Skipped, tt.skipped)
		})
	}
}
