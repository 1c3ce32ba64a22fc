package grammar

import (
	"strings"
	"testing"

	"github.com/hizake/cfgkit/spec"
	"github.com/stretchr/testify/require"
)

func genGrammar(t *testing.T, src string) *Grammar {
	t.Helper()

	root, err := spec.Parse(strings.NewReader(src))
	require.NoError(t, err)
	b := GrammarBuilder{
		AST: root,
	}
	g, err := b.Build()
	require.NoError(t, err)
	return g
}

func alt(syms ...string) Alternative {
	return Alternative(syms)
}
