package spec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenizeSymbols(t *testing.T) {
	tests := []struct {
		caption string
		src     string
		symbols []string
	}{
		{
			caption: "explicit whitespace is trusted",
			src:     "if ( E ) S else S",
			symbols: []string{"if", "(", "E", ")", "S", "else", "S"},
		},
		{
			caption: "the word epsilon is normalized in the whitespace path",
			src:     "a epsilon b",
			symbols: []string{"a", EpsilonMarker, "b"},
		},
		{
			caption: "a scan segments text without whitespace",
			src:     "(E)id",
			symbols: []string{"(", "E", ")", "id"},
		},
		{
			caption: "an uppercase letter takes its primed suffix",
			src:     "T'+a",
			symbols: []string{"T'", "+", "a"},
		},
		{
			caption: "an uppercase letter takes trailing word characters",
			src:     "Expr_1+x",
			symbols: []string{"Expr_1", "+", "x"},
		},
		{
			caption: "lowercase and digit runs form one terminal",
			src:     "id42*y",
			symbols: []string{"id42", "*", "y"},
		},
		{
			caption: "multi-character operators are single tokens",
			src:     "a==b",
			symbols: []string{"a", "==", "b"},
		},
		{
			caption: "conjunction operator",
			src:     "x&&y",
			symbols: []string{"x", "&&", "y"},
		},
		{
			caption: "epsilon glyph",
			src:     "ε",
			symbols: []string{EpsilonMarker},
		},
		{
			caption: "epsilon word",
			src:     "epsilon",
			symbols: []string{EpsilonMarker},
		},
		{
			caption: "an empty alternative is the epsilon sequence",
			src:     "   ",
			symbols: []string{EpsilonMarker},
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			syms, err := tokenizeSymbols(tt.src)
			assert.NoError(t, err)
			assert.Equal(t, tt.symbols, syms)
		})
	}
}
