package automaton

import (
	"strings"
	"testing"

	"github.com/hizake/cfgkit/spec"
	"github.com/stretchr/testify/require"
)

func genAutomaton(t *testing.T, src string) *Automaton {
	t.Helper()

	ast, err := spec.ParseAutomaton(strings.NewReader(src))
	require.NoError(t, err)
	b := AutomatonBuilder{
		AST: ast,
	}
	a, err := b.Build()
	require.NoError(t, err)
	return a
}
