package grammar

// EliminateLeftRecursion returns an equivalent grammar with no direct or
// indirect left recursion, using the ordered-elimination algorithm over the
// declaration order. Helper nonterminals introduced for immediate recursion
// are appended to the order and processed by later outer iterations.
func EliminateLeftRecursion(g *Grammar) *Grammar {
	out := g.Clone()
	order := out.NonTerminals()

	for i := 0; i < len(order); i++ {
		ai := order[i]

		// Substitute away alternatives that begin with an earlier
		// nonterminal so any indirect recursion becomes immediate.
		for j := 0; j < i; j++ {
			aj := order[j]
			var rewritten []Alternative
			for _, alt := range out.Alternatives(ai) {
				if alt[0] != aj {
					rewritten = append(rewritten, alt)
					continue
				}
				rest := alt[1:]
				for _, delta := range out.Alternatives(aj) {
					rewritten = append(rewritten, concat(delta, rest))
				}
			}
			out.setAlternatives(ai, rewritten)
		}

		var alphas, betas []Alternative
		selfLoopDropped := false
		for _, alt := range out.Alternatives(ai) {
			if alt[0] == ai {
				alpha := normalize(alt[1:])
				if alpha.IsEpsilon() {
					// A bare self loop derives nothing; keeping it would
					// leave the helper nonterminal left-recursive.
					selfLoopDropped = true
					continue
				}
				alphas = append(alphas, alpha)
			} else {
				betas = append(betas, alt)
			}
		}
		if len(alphas) == 0 {
			if selfLoopDropped {
				out.setAlternatives(ai, betas)
			}
			continue
		}

		fresh := freshName(out, ai, "'")
		var newAlts []Alternative
		for _, beta := range betas {
			newAlts = append(newAlts, concat(beta, Alternative{fresh}))
		}
		if len(newAlts) == 0 {
			newAlts = append(newAlts, Alternative{fresh})
		}
		out.setAlternatives(ai, newAlts)

		for _, alpha := range alphas {
			out.AddAlternative(fresh, concat(alpha, Alternative{fresh}))
		}
		out.AddAlternative(fresh, Alternative{Epsilon})
		order = append(order, fresh)
	}
	return out
}

// concat joins two symbol sequences, degrading concatenation with epsilon
// to the non-epsilon operand. Two epsilon operands yield the epsilon
// alternative, never an empty sequence.
func concat(x, y Alternative) Alternative {
	joined := make(Alternative, 0, len(x)+len(y))
	for _, sym := range x {
		if sym != Epsilon {
			joined = append(joined, sym)
		}
	}
	for _, sym := range y {
		if sym != Epsilon {
			joined = append(joined, sym)
		}
	}
	return normalize(joined)
}

// normalize turns an empty sequence into the epsilon alternative.
func normalize(alt Alternative) Alternative {
	if len(alt) == 0 {
		return Alternative{Epsilon}
	}
	return alt
}

// freshName derives an unused symbol name by appending the marker to the
// base until it collides with nothing in the symbol universe. The
// extension is always the same, so generated names are reproducible.
func freshName(g *Grammar, base, marker string) string {
	name := base + marker
	for g.hasSymbol(name) {
		name += marker
	}
	return name
}
