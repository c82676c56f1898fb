// Package automaton builds the canonical LR(1) collection of item sets (the
// viable-prefix automaton) for a grammar: component C of the parser
// generator. States are numbered deterministically so two runs over the
// same grammar always produce byte-identical tables.
package automaton

import (
	"sort"
	"strings"

	"github.com/dekarrin/lrtoolkit/internal/grammar"
)

// State is one numbered node of the canonical collection: a closed LR(1)
// item set.
type State struct {
	Index int
	Items grammar.ItemSet
}

// Key returns a canonical string identifying the item set's contents,
// independent of insertion order, used to detect when GOTO reaches a state
// already in the collection.
func (s State) Key() string {
	return itemSetKey(s.Items)
}

func itemSetKey(items grammar.ItemSet) string {
	strs := make([]string, 0, len(items))
	for _, it := range items.Items() {
		strs = append(strs, it.String())
	}
	sort.Strings(strs)
	return strings.Join(strs, "\n")
}

// Automaton is the canonical collection of LR(1) states plus the GOTO
// transitions between them, over the grammar's full alphabet (terminals and
// nonterminals).
type Automaton struct {
	States      []State
	Start       int
	Transitions map[int]map[string]int
	First       grammar.FirstSets
}

// Build constructs the canonical LR(1) viable-prefix automaton for g. g must
// already be augmented (Build(rs, augment=true)) so that state 0's item set
// is seeded from the single augmented start production; this guarantees a
// unique accepting item.
//
// Symbols are tried, at every state, in a fixed order — terminals then
// nonterminals, each lexicographic — so the resulting state numbering is
// reproducible across runs over the same grammar.
func Build(g grammar.Grammar) Automaton {
	first := grammar.FIRST(g)

	startRule, _ := g.Rule(g.StartSymbol())
	startItem := grammar.LR1Item{
		LR0Item:   grammar.StartItem(g.StartSymbol(), 0, startRule.Productions[0]),
		Lookahead: grammar.EndMarker,
	}
	startItems := grammar.Closure(g, first, grammar.NewItemSet(startItem))

	states := []State{{Index: 0, Items: startItems}}
	keyToIndex := map[string]int{itemSetKey(startItems): 0}
	transitions := map[int]map[string]int{}

	symbols := orderedAlphabet(g)

	for i := 0; i < len(states); i++ {
		cur := states[i]
		for _, sym := range symbols {
			next := grammar.Goto(g, first, cur.Items, sym)
			if len(next) == 0 {
				continue
			}

			key := itemSetKey(next)
			toIndex, exists := keyToIndex[key]
			if !exists {
				toIndex = len(states)
				keyToIndex[key] = toIndex
				states = append(states, State{Index: toIndex, Items: next})
			}

			if transitions[cur.Index] == nil {
				transitions[cur.Index] = map[string]int{}
			}
			transitions[cur.Index][sym] = toIndex
		}
	}

	return Automaton{
		States:      states,
		Start:       0,
		Transitions: transitions,
		First:       first,
	}
}

// orderedAlphabet returns every grammar symbol (terminals first, then
// nonterminals), each group lexicographic, matching the deterministic
// iteration order the canonical-collection construction requires.
func orderedAlphabet(g grammar.Grammar) []string {
	out := make([]string, 0, len(g.Terminals())+len(g.NonTerminals()))
	out = append(out, g.Terminals()...)
	out = append(out, g.NonTerminals()...)
	return out
}

// GotoState returns the state reached from state `from` on symbol sym, and
// whether such a transition exists.
func (a Automaton) GotoState(from int, sym string) (int, bool) {
	row, ok := a.Transitions[from]
	if !ok {
		return 0, false
	}
	to, ok := row[sym]
	return to, ok
}
