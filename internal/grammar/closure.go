package grammar

// ItemSet is an unordered collection of LR1Items, keyed by their string form
// so membership tests are cheap and deterministic.
type ItemSet map[string]LR1Item

func NewItemSet(items ...LR1Item) ItemSet {
	s := ItemSet{}
	for _, it := range items {
		s.Add(it)
	}
	return s
}

// Add inserts it into the set if not already present, and reports whether
// it was newly added.
func (s ItemSet) Add(it LR1Item) bool {
	key := it.String()
	if _, ok := s[key]; ok {
		return false
	}
	s[key] = it
	return true
}

func (s ItemSet) Items() []LR1Item {
	out := make([]LR1Item, 0, len(s))
	for _, it := range s {
		out = append(out, it)
	}
	return out
}

// Closure computes the CLOSURE of a set of LR1Items against g: repeatedly,
// for every item [A -> α . B β, a] in the set with B a nonterminal, and for
// every production B -> γ of B, the item [B -> . γ, b] is added for every
// terminal b in FIRST(β a). The process repeats until a full pass adds
// nothing new.
func Closure(g Grammar, first FirstSets, items ItemSet) ItemSet {
	closure := ItemSet{}
	for _, it := range items.Items() {
		closure.Add(it)
	}

	for {
		added := 0

		for _, it := range closure.Items() {
			nextSym, ok := it.NextSymbol()
			if !ok || !g.IsNonTerminal(nextSym) {
				continue
			}

			rule, ok := g.Rule(nextSym)
			if !ok {
				continue
			}

			beta := it.Right[1:]
			lookaheadSeq := append(append([]string{}, beta...), it.Lookahead)
			lookaheads := FIRSTOfString(first, lookaheadSeq)

			for ruleIdx, body := range rule.Productions {
				base := StartItem(nextSym, ruleIdx, body)
				for la := range lookaheads {
					if la == Epsilon {
						continue
					}
					newItem := LR1Item{LR0Item: base, Lookahead: la}
					if closure.Add(newItem) {
						added++
					}
				}
			}
		}

		if added == 0 {
			break
		}
	}

	return closure
}

// Goto computes the item set reached from items on symbol sym: advance the
// dot over sym in every item of items whose next symbol is sym, then take
// the closure of the result. Returns an empty set if no item in items has
// sym as its next symbol.
func Goto(g Grammar, first FirstSets, items ItemSet, sym string) ItemSet {
	moved := ItemSet{}
	for _, it := range items.Items() {
		nextSym, ok := it.NextSymbol()
		if !ok || nextSym != sym {
			continue
		}
		moved.Add(LR1Item{LR0Item: it.Advanced(), Lookahead: it.Lookahead})
	}
	if len(moved) == 0 {
		return moved
	}
	return Closure(g, first, moved)
}
