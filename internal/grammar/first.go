package grammar

// FirstSets maps every grammar symbol (terminal and nonterminal) to its
// FIRST set: the set of terminals that can begin some string derived from
// that symbol, plus Epsilon if the symbol can derive the empty string.
type FirstSets map[string]map[string]bool

// FIRST computes the FIRST set of every symbol in g by the canonical
// fixed-point procedure: start every terminal's FIRST set at itself, then
// repeatedly scan every production applying the standard FIRST-of-body
// rules, counting how many set elements were added in a pass, and halting
// only once a full pass adds nothing. This is the textbook worklist
// algorithm, not a recursive memoized descent: grammars with mutual or
// cyclic nonterminal references converge correctly either way.
func FIRST(g Grammar) FirstSets {
	sets := FirstSets{}

	for _, t := range g.Terminals() {
		sets[t] = map[string]bool{t: true}
	}
	sets[EndMarker] = map[string]bool{EndMarker: true}
	for _, nt := range g.NonTerminals() {
		if _, ok := sets[nt]; !ok {
			sets[nt] = map[string]bool{}
		}
	}

	for {
		added := 0

		for _, head := range g.headOrder {
			rule := g.rules[head]
			for _, body := range rule.Productions {
				added += addFirstOfBodyInto(sets, head, body)
			}
		}

		if added == 0 {
			break
		}
	}

	return sets
}

// addFirstOfBodyInto applies one pass of the FIRST(body) rule to sets[head]
// and returns how many new elements were added.
func addFirstOfBodyInto(sets FirstSets, head string, body Production) int {
	added := 0

	if body.IsEpsilon() {
		if !sets[head][Epsilon] {
			sets[head][Epsilon] = true
			added++
		}
		return added
	}

	allNullableSoFar := true
	for _, sym := range body {
		symFirst := sets[sym]
		for t := range symFirst {
			if t == Epsilon {
				continue
			}
			if !sets[head][t] {
				sets[head][t] = true
				added++
			}
		}
		if !symFirst[Epsilon] {
			allNullableSoFar = false
			break
		}
	}

	if allNullableSoFar {
		if !sets[head][Epsilon] {
			sets[head][Epsilon] = true
			added++
		}
	}

	return added
}

// FIRSTOfString computes FIRST of an arbitrary sequence of grammar symbols:
// the union of FIRST(syms[0]), FIRST(syms[1]), ... stopping at the first
// symbol whose FIRST set does not contain Epsilon, with Epsilon itself
// included only if every symbol in the sequence is nullable (including the
// empty sequence, whose FIRST is {Epsilon}).
func FIRSTOfString(sets FirstSets, syms []string) map[string]bool {
	out := map[string]bool{}

	if len(syms) == 0 {
		out[Epsilon] = true
		return out
	}

	allNullableSoFar := true
	for _, sym := range syms {
		symFirst := sets[sym]
		for t := range symFirst {
			if t != Epsilon {
				out[t] = true
			}
		}
		if !symFirst[Epsilon] {
			allNullableSoFar = false
			break
		}
	}

	if allNullableSoFar {
		out[Epsilon] = true
	}

	return out
}
