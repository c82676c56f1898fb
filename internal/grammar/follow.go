package grammar

// FollowSets maps every nonterminal to its FOLLOW set: the set of terminals
// (and possibly EndMarker) that can appear immediately after that
// nonterminal in some derivation from the start symbol.
type FollowSets map[string]map[string]bool

// FOLLOW computes the FOLLOW set of every nonterminal in g by the canonical
// fixed-point procedure, given the already-computed FIRST sets. The start
// symbol's FOLLOW set is seeded with EndMarker. The automaton construction
// in this toolkit does not consult FOLLOW (LR(1) lookaheads are carried and
// propagated through CLOSURE/GOTO directly); FOLLOW is retained purely as a
// diagnostic and is exposed for callers building grammar-quality tooling on
// top of this package.
func FOLLOW(g Grammar, first FirstSets) FollowSets {
	sets := FollowSets{}
	for _, nt := range g.NonTerminals() {
		sets[nt] = map[string]bool{}
	}
	sets[g.start][EndMarker] = true

	for {
		added := 0

		for _, head := range g.headOrder {
			rule := g.rules[head]
			for _, body := range rule.Productions {
				if body.IsEpsilon() {
					continue
				}
				for i, sym := range body {
					if !g.IsNonTerminal(sym) {
						continue
					}

					rest := body[i+1:]
					restFirst := FIRSTOfString(first, rest)

					for t := range restFirst {
						if t == Epsilon {
							continue
						}
						if !sets[sym][t] {
							sets[sym][t] = true
							added++
						}
					}

					if restFirst[Epsilon] {
						for t := range sets[head] {
							if !sets[sym][t] {
								sets[sym][t] = true
								added++
							}
						}
					}
				}
			}
		}

		if added == 0 {
			break
		}
	}

	return sets
}
