package grammar

// LeftFactor returns a grammar in which no nonterminal keeps two
// alternatives sharing a nonempty common symbol prefix. Extraction is
// iterated to a fixpoint: factoring one prefix can reveal a deeper shared
// prefix, and helper nonterminals are themselves re-examined.
func LeftFactor(g *Grammar) *Grammar {
	out := g.Clone()
	for {
		changed := false
		// The declaration order grows while factoring; re-reading it each
		// pass picks up the helper nonterminals.
		for _, nt := range out.NonTerminals() {
			if factorOnce(out, nt) {
				changed = true
			}
		}
		if !changed {
			break
		}
	}
	return out
}

// factorOnce extracts the longest common prefix of every group of
// alternatives of nt sharing a first symbol. It reports whether any
// extraction happened.
func factorOnce(g *Grammar, nt string) bool {
	alts := g.Alternatives(nt)
	if len(alts) < 2 {
		return false
	}

	// Group alternatives by first symbol, preserving the order of first
	// occurrence.
	var heads []string
	groups := map[string][]int{}
	for i, alt := range alts {
		head := alt[0]
		if _, ok := groups[head]; !ok {
			heads = append(heads, head)
		}
		groups[head] = append(groups[head], i)
	}

	changed := false
	dropped := map[int]bool{}
	replacement := map[int]Alternative{}
	for _, head := range heads {
		members := groups[head]
		if len(members) < 2 || head == Epsilon {
			continue
		}
		prefix := alts[members[0]].clone()
		for _, idx := range members[1:] {
			prefix = commonPrefix(prefix, alts[idx])
		}
		if len(prefix) == 0 {
			continue
		}

		fresh := freshName(g, nt, "_fact")
		for _, idx := range members {
			g.AddAlternative(fresh, normalize(alts[idx][len(prefix):].clone()))
		}
		replacement[members[0]] = append(prefix, fresh)
		for _, idx := range members[1:] {
			dropped[idx] = true
		}
		changed = true
	}
	if !changed {
		return false
	}

	var newAlts []Alternative
	for i, alt := range alts {
		if dropped[i] {
			continue
		}
		if repl, ok := replacement[i]; ok {
			newAlts = append(newAlts, repl)
			continue
		}
		newAlts = append(newAlts, alt)
	}
	g.setAlternatives(nt, newAlts)
	return true
}

// commonPrefix returns the longest common symbol prefix of two
// alternatives, stopping at the first mismatch.
func commonPrefix(a, b Alternative) Alternative {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return a[:i]
}
