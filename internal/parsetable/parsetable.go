// Package parsetable derives the ACTION/GOTO tables the parse driver
// consults from a canonical LR(1) automaton: component D of the parser
// generator.
//
// Conflict policy is a deliberate departure from naive textbook LR(1)
// table construction: a shift/reduce conflict at a given (state, terminal)
// cell is resolved by always choosing to shift, deterministically, rather
// than rejecting the grammar. A reduce/reduce conflict, or any conflict
// that involves an Accept action, is not resolvable and is reported as a
// NotLR1 error instead.
package parsetable

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dekarrin/lrtoolkit/internal/automaton"
	"github.com/dekarrin/lrtoolkit/internal/grammar"
	"github.com/dekarrin/lrtoolkit/internal/lrerr"
)

// ActionType distinguishes the four kinds of ACTION table cell.
type ActionType int

const (
	Error ActionType = iota
	Shift
	Reduce
	Accept
)

func (t ActionType) String() string {
	switch t {
	case Shift:
		return "Shift"
	case Reduce:
		return "Reduce"
	case Accept:
		return "Accept"
	default:
		return "Error"
	}
}

// Action is a single ACTION table cell.
type Action struct {
	Type ActionType

	// State is the destination state, valid when Type is Shift.
	State int

	// Head and RuleIndex identify the production to reduce by, valid when
	// Type is Reduce.
	Head      string
	RuleIndex int
}

func (a Action) String() string {
	switch a.Type {
	case Shift:
		return fmt.Sprintf("s%d", a.State)
	case Reduce:
		return fmt.Sprintf("r%s,%d", a.Head, a.RuleIndex)
	case Accept:
		return "Accept"
	default:
		return ""
	}
}

// Table is the full set of parser-driver decision tables for a grammar.
type Table struct {
	Grammar   grammar.Grammar
	Automaton automaton.Automaton

	// Action[state][terminal] is the action to take on seeing terminal with
	// the state stack's top state being state.
	Action map[int]map[string]Action

	// Goto[state][nonterminal] is the state to push after reducing to
	// nonterminal while state is atop the state stack.
	Goto map[int]map[string]int

	// Diagnostics records one line per shift/reduce conflict resolved in
	// shift's favor, so callers can see which ambiguities the builder
	// silently preferred shift over.
	Diagnostics []string
}

// Build derives the ACTION/GOTO tables from an already-constructed
// canonical LR(1) automaton over g, which must be the same (augmented)
// grammar the automaton was built from. It returns a NotLR1 lrerr.Error if
// the grammar is not (deterministic-shift) LR(1): a reduce/reduce conflict,
// or any conflict touching an Accept action, at the same (state, terminal)
// cell.
func Build(g grammar.Grammar, a automaton.Automaton) (Table, error) {
	t := Table{
		Grammar:   g,
		Automaton: a,
		Action:    map[int]map[string]Action{},
		Goto:      map[int]map[string]int{},
	}

	for _, state := range a.States {
		for _, it := range state.Items.Items() {
			nextSym, hasNext := it.NextSymbol()

			if !hasNext {
				isAccept := it.Head == grammar.AugmentedStart && it.Lookahead == grammar.EndMarker
				var candidate Action
				if isAccept {
					candidate = Action{Type: Accept}
				} else {
					candidate = Action{Type: Reduce, Head: it.Head, RuleIndex: it.Rule}
				}
				if err := t.place(state.Index, it.Lookahead, candidate); err != nil {
					return Table{}, err
				}
				continue
			}

			if g.IsTerminal(nextSym) {
				to, ok := a.GotoState(state.Index, nextSym)
				if !ok {
					continue
				}
				if err := t.place(state.Index, nextSym, Action{Type: Shift, State: to}); err != nil {
					return Table{}, err
				}
			}
		}

		for sym, to := range a.Transitions[state.Index] {
			if !g.IsNonTerminal(sym) {
				continue
			}
			if t.Goto[state.Index] == nil {
				t.Goto[state.Index] = map[string]int{}
			}
			t.Goto[state.Index][sym] = to
		}
	}

	return t, nil
}

// place installs candidate into cell (state, sym), applying the
// shift-always-wins conflict policy, or returns a NotLR1 error if the
// conflict cannot be resolved deterministically.
func (t *Table) place(state int, sym string, candidate Action) error {
	if t.Action[state] == nil {
		t.Action[state] = map[string]Action{}
	}

	existing, ok := t.Action[state][sym]
	if !ok {
		t.Action[state][sym] = candidate
		return nil
	}

	if existing == candidate {
		return nil
	}

	switch {
	case existing.Type == Shift && candidate.Type == Reduce:
		t.Diagnostics = append(t.Diagnostics, fmt.Sprintf("state %d, symbol %q: shift preferred over reduce by %s -> production %d", state, sym, candidate.Head, candidate.RuleIndex))
		return nil // keep existing shift.
	case existing.Type == Reduce && candidate.Type == Shift:
		t.Diagnostics = append(t.Diagnostics, fmt.Sprintf("state %d, symbol %q: shift preferred over reduce by %s -> production %d", state, sym, existing.Head, existing.RuleIndex))
		t.Action[state][sym] = candidate // shift wins.
		return nil
	case existing.Type == Accept || candidate.Type == Accept:
		return lrerr.Newf(lrerr.NotLR1, "state %d, symbol %q: accept conflicts with %s", state, sym, otherOf(existing, candidate))
	case existing.Type == Reduce && candidate.Type == Reduce:
		return lrerr.Newf(lrerr.NotLR1, "state %d, symbol %q: reduce/reduce conflict between %s and %s", state, sym, existing, candidate)
	default:
		return lrerr.Newf(lrerr.NotLR1, "state %d, symbol %q: unresolvable conflict between %s and %s", state, sym, existing, candidate)
	}
}

func otherOf(existing, candidate Action) Action {
	if existing.Type == Accept {
		return candidate
	}
	return existing
}

// String renders every non-error cell of the table as one line each, in
// ascending state order then lexicographic symbol order, giving a stable
// dump suitable for tests and debugging.
func (t Table) String() string {
	var sb strings.Builder

	states := make([]int, 0, len(t.Automaton.States))
	for _, s := range t.Automaton.States {
		states = append(states, s.Index)
	}
	sort.Ints(states)

	for _, s := range states {
		row := t.Action[s]
		syms := make([]string, 0, len(row))
		for sym := range row {
			syms = append(syms, sym)
		}
		sort.Strings(syms)
		for _, sym := range syms {
			fmt.Fprintf(&sb, "(%d, %s): %s\n", s, sym, row[sym])
		}

		gotoRow := t.Goto[s]
		gsyms := make([]string, 0, len(gotoRow))
		for sym := range gotoRow {
			gsyms = append(gsyms, sym)
		}
		sort.Strings(gsyms)
		for _, sym := range gsyms {
			fmt.Fprintf(&sb, "(%d, %s): goto %d\n", s, sym, gotoRow[sym])
		}
	}

	return sb.String()
}
