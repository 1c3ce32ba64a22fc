package grammar

import "sort"

// FollowEntry is the FOLLOW set of one nonterminal. The end marker is
// tracked apart from the terminal symbols; epsilon never occurs in a
// FOLLOW set.
type FollowEntry struct {
	symbols map[string]struct{}
	eof     bool
}

func newFollowEntry() *FollowEntry {
	return &FollowEntry{
		symbols: map[string]struct{}{},
		eof:     false,
	}
}

func (e *FollowEntry) add(sym string) bool {
	if _, ok := e.symbols[sym]; ok {
		return false
	}
	e.symbols[sym] = struct{}{}
	return true
}

func (e *FollowEntry) addEOF() bool {
	if !e.eof {
		e.eof = true
		return true
	}
	return false
}

func (e *FollowEntry) merge(fst *FirstEntry, flw *FollowEntry) bool {
	changed := false
	if fst != nil {
		for sym := range fst.symbols {
			if e.add(sym) {
				changed = true
			}
		}
	}
	if flw != nil {
		for sym := range flw.symbols {
			if e.add(sym) {
				changed = true
			}
		}
		if flw.eof && e.addEOF() {
			changed = true
		}
	}
	return changed
}

func (e *FollowEntry) Contains(sym string) bool {
	_, ok := e.symbols[sym]
	return ok
}

// EOF reports whether the entry contains the end marker.
func (e *FollowEntry) EOF() bool {
	return e.eof
}

func (e *FollowEntry) Symbols() []string {
	syms := make([]string, 0, len(e.symbols))
	for sym := range e.symbols {
		syms = append(syms, sym)
	}
	sort.Strings(syms)
	return syms
}

// FollowSet maps every nonterminal of a grammar to its FOLLOW entry.
type FollowSet struct {
	set map[string]*FollowEntry
}

func (flw *FollowSet) Find(nt string) (*FollowEntry, bool) {
	e, ok := flw.set[nt]
	return e, ok
}

// GenFollowSet computes the FOLLOW sets of a grammar by fixed-point
// iteration over the already-computed FIRST sets. Only the start symbol is
// seeded with the end marker.
func GenFollowSet(g *Grammar, fst *FirstSet) *FollowSet {
	flw := &FollowSet{
		set: map[string]*FollowEntry{},
	}
	for _, nt := range g.NonTerminals() {
		flw.set[nt] = newFollowEntry()
	}
	if e, ok := flw.set[g.Start()]; ok {
		e.addEOF()
	}

	for {
		more := false
		for _, lhs := range g.NonTerminals() {
			for _, alt := range g.Alternatives(lhs) {
				for i, sym := range alt {
					e, ok := flw.set[sym]
					if !ok {
						continue
					}
					rest := fst.findSequence(alt[i+1:])
					if e.merge(rest, nil) {
						more = true
					}
					if rest.empty {
						if e.merge(nil, flw.set[lhs]) {
							more = true
						}
					}
				}
			}
		}
		if !more {
			break
		}
	}
	return flw
}
