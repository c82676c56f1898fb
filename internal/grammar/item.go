package grammar

import "fmt"

// LR0Item is a grammar rule with a dot marking how much of its body has been
// matched so far: Left holds the symbols before the dot, Right the symbols
// still to come.
type LR0Item struct {
	Head  string
	Rule  int
	Left  []string
	Right []string
}

// AtEnd reports whether the dot has reached the end of the production (a
// candidate for reduction).
func (it LR0Item) AtEnd() bool {
	return len(it.Right) == 0
}

// NextSymbol returns the symbol immediately after the dot and true, or ""
// and false if the dot is at the end.
func (it LR0Item) NextSymbol() (string, bool) {
	if it.AtEnd() {
		return "", false
	}
	return it.Right[0], true
}

// Advanced returns a copy of it with the dot moved one position to the
// right. Panics if the dot is already at the end; callers must check AtEnd
// first.
func (it LR0Item) Advanced() LR0Item {
	if it.AtEnd() {
		panic("cannot advance an LR0Item whose dot is already at the end")
	}
	next := LR0Item{
		Head:  it.Head,
		Rule:  it.Rule,
		Left:  make([]string, len(it.Left)+1),
		Right: append([]string{}, it.Right[1:]...),
	}
	copy(next.Left, it.Left)
	next.Left[len(it.Left)] = it.Right[0]
	return next
}

func (it LR0Item) String() string {
	return fmt.Sprintf("[%s -> %s . %s]", it.Head, joinSyms(it.Left), joinSyms(it.Right))
}

func (it LR0Item) Equal(o LR0Item) bool {
	return it.Head == o.Head && it.Rule == o.Rule && len(it.Left) == len(o.Left) && sameSyms(it.Left, o.Left) && sameSyms(it.Right, o.Right)
}

// LR1Item is an LR0Item paired with a single lookahead terminal.
type LR1Item struct {
	LR0Item
	Lookahead string
}

func (it LR1Item) String() string {
	return fmt.Sprintf("[%s -> %s . %s, %s]", it.Head, joinSyms(it.Left), joinSyms(it.Right), it.Lookahead)
}

func (it LR1Item) Equal(o LR1Item) bool {
	return it.Lookahead == o.Lookahead && it.LR0Item.Equal(o.LR0Item)
}

// Core strips the lookahead from an LR1Item, yielding the LR0Item it is
// based on. Two LR1Items sharing a Core but differing in Lookahead belong to
// the same LALR-mergeable class; this toolkit builds canonical (unmerged)
// LR(1) collections and never merges items by Core.
func (it LR1Item) Core() LR0Item {
	return it.LR0Item
}

func joinSyms(syms []string) string {
	out := ""
	for i, s := range syms {
		if i > 0 {
			out += " "
		}
		out += s
	}
	return out
}

func sameSyms(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// StartItem builds the initial LR0Item for production index ruleIdx of
// head's rule: dot at position 0, nothing consumed yet.
func StartItem(head string, ruleIdx int, body Production) LR0Item {
	right := []string{}
	if !body.IsEpsilon() {
		right = append(right, []string(body)...)
	}
	return LR0Item{Head: head, Rule: ruleIdx, Left: nil, Right: right}
}
