package spec

import (
	"bufio"
	"io"
	"strings"
)

type RootNode struct {
	Productions []*ProductionNode
	Skipped     []*SkippedLineNode
}

type ProductionNode struct {
	LHS          string
	Alternatives []*AlternativeNode
	Row          int
}

type AlternativeNode struct {
	Symbols []string
}

// SkippedLineNode records a non-empty line the parser could not recognize.
// Tolerant parsing skips such lines instead of failing, but callers may
// want them for diagnostics.
type SkippedLineNode struct {
	Row  int
	Text string
}

// arrow spellings accepted between a LHS and its alternatives.
var arrows = []string{"->", "→"}

// Parse reads grammar source text, one production per line, in the form
//
//	LHS -> ALT1 | ALT2 | ...
//
// Lines without a recognizable arrow are skipped. Parse fails only when no
// production at all could be recognized.
func Parse(src io.Reader) (*RootNode, error) {
	root := &RootNode{}
	row := 0
	s := bufio.NewScanner(src)
	for s.Scan() {
		row++
		line := s.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		prod, ok, err := parseProductionLine(trimmed, row)
		if err != nil {
			return nil, err
		}
		if !ok {
			root.Skipped = append(root.Skipped, &SkippedLineNode{
				Row:  row,
				Text: trimmed,
			})
			continue
		}
		root.Productions = append(root.Productions, prod)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	if len(root.Productions) == 0 {
		return nil, SynErrNoProduction
	}
	return root, nil
}

func parseProductionLine(line string, row int) (*ProductionNode, bool, error) {
	lhs, rhs, ok := splitArrow(line)
	if !ok {
		return nil, false, nil
	}
	lhs = strings.TrimSpace(lhs)
	if lhs == "" || strings.ContainsAny(lhs, " \t") {
		return nil, false, nil
	}

	prod := &ProductionNode{
		LHS: lhs,
		Row: row,
	}
	for _, altText := range strings.Split(rhs, "|") {
		syms, err := tokenizeSymbols(altText)
		if err != nil {
			return nil, false, err
		}
		prod.Alternatives = append(prod.Alternatives, &AlternativeNode{
			Symbols: syms,
		})
	}
	return prod, true, nil
}

func splitArrow(line string) (string, string, bool) {
	for _, arrow := range arrows {
		if i := strings.Index(line, arrow); i >= 0 {
			return line[:i], line[i+len(arrow):], true
		}
	}
	return "", "", false
}
