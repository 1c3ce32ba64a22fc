package grammar

import "sort"

// FirstEntry is the FIRST set of one nonterminal or symbol sequence. The
// nullability of the entry is tracked apart from the terminal symbols, so
// the symbol set never contains the epsilon marker.
type FirstEntry struct {
	symbols map[string]struct{}
	empty   bool
}

func newFirstEntry() *FirstEntry {
	return &FirstEntry{
		symbols: map[string]struct{}{},
		empty:   false,
	}
}

func (e *FirstEntry) add(sym string) bool {
	if _, ok := e.symbols[sym]; ok {
		return false
	}
	e.symbols[sym] = struct{}{}
	return true
}

func (e *FirstEntry) addEmpty() bool {
	if !e.empty {
		e.empty = true
		return true
	}
	return false
}

func (e *FirstEntry) mergeExceptEmpty(target *FirstEntry) bool {
	if target == nil {
		return false
	}
	changed := false
	for sym := range target.symbols {
		if e.add(sym) {
			changed = true
		}
	}
	return changed
}

func (e *FirstEntry) merge(target *FirstEntry) bool {
	changed := e.mergeExceptEmpty(target)
	if target.empty && e.addEmpty() {
		changed = true
	}
	return changed
}

// Contains reports whether the entry contains a terminal.
func (e *FirstEntry) Contains(sym string) bool {
	_, ok := e.symbols[sym]
	return ok
}

// Empty reports whether the entry contains the epsilon marker.
func (e *FirstEntry) Empty() bool {
	return e.empty
}

// Symbols returns the terminals of the entry in sorted order.
func (e *FirstEntry) Symbols() []string {
	syms := make([]string, 0, len(e.symbols))
	for sym := range e.symbols {
		syms = append(syms, sym)
	}
	sort.Strings(syms)
	return syms
}

// FirstSet maps every nonterminal of a grammar to its FIRST entry.
type FirstSet struct {
	g   *Grammar
	set map[string]*FirstEntry
}

func newFirstSet(g *Grammar) *FirstSet {
	fst := &FirstSet{
		g:   g,
		set: map[string]*FirstEntry{},
	}
	for _, nt := range g.NonTerminals() {
		fst.set[nt] = newFirstEntry()
	}
	return fst
}

func (fst *FirstSet) Find(nt string) (*FirstEntry, bool) {
	e, ok := fst.set[nt]
	return e, ok
}

// findSequence computes the FIRST entry of a symbol sequence under the
// current table. Scanning continues past a symbol only while that symbol
// may vanish; a sequence whose scanned symbols were all nullable is itself
// nullable.
func (fst *FirstSet) findSequence(seq []string) *FirstEntry {
	entry := newFirstEntry()
	for _, sym := range seq {
		if sym == Epsilon {
			entry.addEmpty()
			return entry
		}
		if !fst.g.IsNonTerminal(sym) {
			entry.add(sym)
			return entry
		}
		e := fst.set[sym]
		entry.mergeExceptEmpty(e)
		if !e.empty {
			return entry
		}
	}
	entry.addEmpty()
	return entry
}

// GenFirstSet computes the FIRST sets of a grammar by fixed-point
// iteration. Each entry only grows and is bounded by the terminal
// alphabet, so the iteration terminates.
func GenFirstSet(g *Grammar) *FirstSet {
	fst := newFirstSet(g)
	for {
		more := false
		for _, nt := range g.NonTerminals() {
			acc := fst.set[nt]
			for _, alt := range g.Alternatives(nt) {
				if acc.merge(fst.findSequence(alt)) {
					more = true
				}
			}
		}
		if !more {
			break
		}
	}
	return fst
}
