package spec

import (
	"strings"
	"sync"

	mlcompiler "github.com/nihei9/maleeni/compiler"
	mldriver "github.com/nihei9/maleeni/driver"
	mlspec "github.com/nihei9/maleeni/spec"
)

const (
	// EpsilonMarker is the canonical spelling of the empty-string symbol.
	// The literal word "epsilon" is accepted on input and normalized to it.
	EpsilonMarker = "ε"

	epsilonWord = "epsilon"
)

const (
	kindNameEpsilon     = mlspec.LexKindName("epsilon")
	kindNameOperator    = mlspec.LexKindName("operator")
	kindNameNonTerminal = mlspec.LexKindName("nonterminal")
	kindNameTerminal    = mlspec.LexKindName("terminal")
	kindNamePunct       = mlspec.LexKindName("punctuation")
)

// symbolLexSpec segments an alternative written without whitespace.
// Longest match wins; ties are broken by entry order, so the epsilon
// spellings and the multi-character operators take precedence over the
// catch-all single-character entry.
var symbolLexSpec = &mlspec.LexSpec{
	Name: "symbol",
	Entries: []*mlspec.LexEntry{
		{
			Kind:    kindNameEpsilon,
			Pattern: mlspec.LexPattern(`ε|epsilon`),
		},
		{
			Kind:    kindNameOperator,
			Pattern: mlspec.LexPattern(`==|!=|<=|>=|\|\||&&`),
		},
		{
			Kind:    kindNameNonTerminal,
			Pattern: mlspec.LexPattern(`[A-Z]['0-9A-Za-z_]*`),
		},
		{
			Kind:    kindNameTerminal,
			Pattern: mlspec.LexPattern(`[0-9a-z]+`),
		},
		{
			Kind:    kindNamePunct,
			Pattern: mlspec.LexPattern(`.`),
		},
	},
}

var (
	symbolLexOnce sync.Once
	symbolLex     *mlspec.CompiledLexSpec
	symbolLexErr  error
)

func compiledSymbolLexSpec() (*mlspec.CompiledLexSpec, error) {
	symbolLexOnce.Do(func() {
		symbolLex, symbolLexErr, _ = mlcompiler.Compile(symbolLexSpec, mlcompiler.CompressionLevel(mlcompiler.CompressionLevelMax))
	})
	return symbolLex, symbolLexErr
}

// tokenizeSymbols splits the text of one alternative into symbol tokens.
// When the author wrote explicit whitespace, the whitespace is trusted and
// each field is one symbol. Otherwise a lexical scan segments the text.
// An empty alternative yields the single-element epsilon sequence.
func tokenizeSymbols(text string) ([]string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return []string{EpsilonMarker}, nil
	}

	if strings.ContainsAny(text, " \t") {
		fields := strings.Fields(text)
		syms := make([]string, len(fields))
		for i, f := range fields {
			if f == epsilonWord || f == EpsilonMarker {
				syms[i] = EpsilonMarker
			} else {
				syms[i] = f
			}
		}
		return syms, nil
	}

	cspec, err := compiledSymbolLexSpec()
	if err != nil {
		return nil, err
	}
	d, err := mldriver.NewLexer(mldriver.NewLexSpec(cspec), strings.NewReader(text))
	if err != nil {
		return nil, err
	}

	var syms []string
	for {
		tok, err := d.Next()
		if err != nil {
			return nil, err
		}
		if tok.EOF {
			break
		}
		if tok.Invalid {
			// Tolerant scanning: undecodable bytes are dropped.
			continue
		}
		switch cspec.KindNames[tok.KindID] {
		case kindNameEpsilon:
			syms = append(syms, EpsilonMarker)
		default:
			syms = append(syms, string(tok.Lexeme))
		}
	}
	if len(syms) == 0 {
		syms = []string{EpsilonMarker}
	}
	return syms, nil
}
