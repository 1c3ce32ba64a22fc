package spec

import (
	"bufio"
	"io"
	"strings"
)

type AutomatonNode struct {
	States      []string
	Alphabet    []string
	Start       string
	Accepting   []string
	Transitions []*TransitionNode
	Skipped     []*SkippedLineNode
}

type TransitionNode struct {
	From   string
	Symbol string
	To     []string
	Row    int
}

type automatonSection int

const (
	sectionNone automatonSection = iota
	sectionStates
	sectionAlphabet
	sectionStart
	sectionAccept
	sectionTransitions
)

var sectionLabels = map[string]automatonSection{
	"states":      sectionStates,
	"alphabet":    sectionAlphabet,
	"start":       sectionStart,
	"accept":      sectionAccept,
	"transitions": sectionTransitions,
}

// ParseAutomaton reads an automaton description made of five labeled
// sections (States, Alphabet, Start, Accept, Transitions; labels are
// case-insensitive). List sections take comma-separated names, either on
// the label line or on the following lines. Transition rows take the form
//
//	fromState,symbol->dest1,dest2,...
//
// Malformed rows are skipped. ParseAutomaton fails only when no state can
// be determined at all.
func ParseAutomaton(src io.Reader) (*AutomatonNode, error) {
	node := &AutomatonNode{}
	section := sectionNone
	row := 0
	s := bufio.NewScanner(src)
	for s.Scan() {
		row++
		line := strings.TrimSpace(s.Text())
		if line == "" {
			continue
		}
		if sec, rest, ok := matchSectionLabel(line); ok {
			section = sec
			if rest == "" {
				continue
			}
			line = rest
		}
		if !parseSectionLine(node, section, line, row) {
			node.Skipped = append(node.Skipped, &SkippedLineNode{
				Row:  row,
				Text: line,
			})
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}

	completeStates(node)
	if len(node.States) == 0 {
		return nil, SynErrNoState
	}
	if node.Start == "" {
		node.Start = node.States[0]
	}
	return node, nil
}

func matchSectionLabel(line string) (automatonSection, string, bool) {
	i := strings.Index(line, ":")
	if i < 0 {
		return sectionNone, "", false
	}
	label := strings.ToLower(strings.TrimSpace(line[:i]))
	sec, ok := sectionLabels[label]
	if !ok {
		return sectionNone, "", false
	}
	return sec, strings.TrimSpace(line[i+1:]), true
}

func parseSectionLine(node *AutomatonNode, section automatonSection, line string, row int) bool {
	switch section {
	case sectionStates:
		node.States = append(node.States, splitNameList(line)...)
	case sectionAlphabet:
		for _, sym := range splitNameList(line) {
			if sym == epsilonWord || sym == EpsilonMarker {
				continue
			}
			node.Alphabet = append(node.Alphabet, sym)
		}
	case sectionStart:
		names := splitNameList(line)
		// A start section names exactly one state; anything else is
		// malformed and reported as a skipped line.
		if len(names) != 1 {
			return false
		}
		node.Start = names[0]
	case sectionAccept:
		node.Accepting = append(node.Accepting, splitNameList(line)...)
	case sectionTransitions:
		tr, ok := parseTransitionLine(line, row)
		if !ok {
			return false
		}
		node.Transitions = append(node.Transitions, tr)
	default:
		return false
	}
	return true
}

func parseTransitionLine(line string, row int) (*TransitionNode, bool) {
	left, right, ok := splitArrow(line)
	if !ok {
		return nil, false
	}
	lhs := splitNameList(left)
	if len(lhs) != 2 {
		return nil, false
	}
	to := splitNameList(right)
	if len(to) == 0 {
		return nil, false
	}
	sym := lhs[1]
	if sym == epsilonWord {
		sym = EpsilonMarker
	}
	return &TransitionNode{
		From:   lhs[0],
		Symbol: sym,
		To:     to,
		Row:    row,
	}, true
}

func splitNameList(text string) []string {
	var names []string
	for _, n := range strings.Split(text, ",") {
		n = strings.TrimSpace(n)
		if n != "" {
			names = append(names, n)
		}
	}
	return names
}

// completeStates adds any state mentioned by the start, accept, or
// transition entries that was omitted from the States section.
func completeStates(node *AutomatonNode) {
	seen := map[string]struct{}{}
	var states []string
	add := func(name string) {
		if name == "" {
			return
		}
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		states = append(states, name)
	}
	for _, s := range node.States {
		add(s)
	}
	add(node.Start)
	for _, s := range node.Accepting {
		add(s)
	}
	for _, tr := range node.Transitions {
		add(tr.From)
		for _, to := range tr.To {
			add(to)
		}
	}
	node.States = states
}
