package grammar

import "sort"

// Conflict is a multiply-defined predictive-table cell: two or more
// alternatives of the same nonterminal compete for one lookahead.
type Conflict struct {
	NonTerminal  string
	LookAhead    string
	Alternatives []Alternative
}

// ParsingTable is the LL(1) predictive table of a grammar. Lookaheads are
// terminals or the end marker. A grammar is LL(1) iff every cell holds at
// most one alternative.
type ParsingTable struct {
	nonTerminals []string
	cells        map[string]map[string][]Alternative
	conflicts    []*Conflict
}

// Find returns the alternatives registered for a cell. A valid LL(1)
// grammar yields at most one.
func (t *ParsingTable) Find(nt, lookAhead string) []Alternative {
	row, ok := t.cells[nt]
	if !ok {
		return nil
	}
	return row[lookAhead]
}

func (t *ParsingTable) Conflicts() []*Conflict {
	return t.conflicts
}

func (t *ParsingTable) IsLL1() bool {
	return len(t.conflicts) == 0
}

// LookAheads returns the lookahead symbols registered for a nonterminal in
// sorted order.
func (t *ParsingTable) LookAheads(nt string) []string {
	row, ok := t.cells[nt]
	if !ok {
		return nil
	}
	las := make([]string, 0, len(row))
	for la := range row {
		las = append(las, la)
	}
	sort.Strings(las)
	return las
}

func (t *ParsingTable) register(nt, lookAhead string, alt Alternative) {
	row, ok := t.cells[nt]
	if !ok {
		row = map[string][]Alternative{}
		t.cells[nt] = row
	}
	for _, registered := range row[lookAhead] {
		if registered.Equal(alt) {
			return
		}
	}
	row[lookAhead] = append(row[lookAhead], alt)
}

// GenParsingTable builds the predictive table from the FIRST and FOLLOW
// sets. For every production A → α, α is registered under every terminal
// of FIRST(α); when α is nullable it is additionally registered under
// every symbol of FOLLOW(A), the end marker included. Registration is
// idempotent. Cells holding two or more alternatives are collected as
// conflicts.
func GenParsingTable(g *Grammar, fst *FirstSet, flw *FollowSet) *ParsingTable {
	t := &ParsingTable{
		nonTerminals: g.NonTerminals(),
		cells:        map[string]map[string][]Alternative{},
	}
	for _, nt := range t.nonTerminals {
		for _, alt := range g.Alternatives(nt) {
			e := fst.findSequence(alt)
			for _, sym := range e.Symbols() {
				t.register(nt, sym, alt)
			}
			if !e.empty {
				continue
			}
			if follow, ok := flw.Find(nt); ok {
				for _, sym := range follow.Symbols() {
					t.register(nt, sym, alt)
				}
				if follow.EOF() {
					t.register(nt, EndMarker, alt)
				}
			}
		}
	}

	for _, nt := range t.nonTerminals {
		for _, la := range t.LookAheads(nt) {
			alts := t.cells[nt][la]
			if len(alts) < 2 {
				continue
			}
			t.conflicts = append(t.conflicts, &Conflict{
				NonTerminal:  nt,
				LookAhead:    la,
				Alternatives: alts,
			})
		}
	}
	return t
}
