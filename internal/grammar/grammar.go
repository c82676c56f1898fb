// Package grammar owns the rule set of a context-free grammar and computes
// the FIRST and FOLLOW sets needed to build an LR(1) automaton over it. It
// corresponds to components A and B of the parser-generator core: the
// symbol/token model and the grammar analyzer.
package grammar

import (
	"fmt"
	"strings"

	"github.com/dekarrin/lrtoolkit/internal/lrerr"
	"github.com/dekarrin/lrtoolkit/internal/util"
)

// Reserved sentinel symbols. EPSILON denotes an empty production; ENDMARKER
// is appended to every token stream and is the lookahead of the initial
// augmented item; AUGMENTED_START is the synthetic nonterminal introduced
// when a grammar is built with augmentation.
const (
	Epsilon         = "ε"
	EndMarker       = "$end"
	AugmentedStart  = "$start"
)

// Production is an ordered sequence of symbols making up one alternative of
// a rule. A production of length 1 containing only Epsilon denotes the
// empty production.
type Production []string

// IsEpsilon reports whether p is the empty production.
func (p Production) IsEpsilon() bool {
	return len(p) == 1 && p[0] == Epsilon
}

// String renders the production space-separated, or "ε" for the empty
// production.
func (p Production) String() string {
	if p.IsEpsilon() {
		return Epsilon
	}
	return strings.Join([]string(p), " ")
}

// Equal reports whether p and o contain the same symbols in the same order.
func (p Production) Equal(o Production) bool {
	if len(p) != len(o) {
		return false
	}
	for i := range p {
		if p[i] != o[i] {
			return false
		}
	}
	return true
}

// Rule is all productions for a single nonterminal head. The position of a
// production within Productions is its rule index: stable, and used to
// identify which production a Reduce action applies.
type Rule struct {
	Head        string
	Productions []Production
}

func (r Rule) String() string {
	alts := make([]string, len(r.Productions))
	for i := range r.Productions {
		alts[i] = r.Productions[i].String()
	}
	return fmt.Sprintf("%s -> %s", r.Head, strings.Join(alts, " | "))
}

// Grammar is an immutable-after-construction mapping from head to ordered
// rule list, plus the start symbol. Terminals and nonterminals are computed
// from the rule set at construction time: every rule head is a nonterminal;
// every other symbol appearing on any right-hand side is a terminal.
type Grammar struct {
	start         string
	originalStart string
	augmented     bool

	headOrder []string
	rules     map[string]Rule

	terminals    util.StringSet
	nonterminals util.StringSet
}

// RuleSet is the raw input to Build: an ordered list of heads (defining both
// nonterminal-ness and the deterministic order rules were declared in) and,
// for each head, its ordered list of productions.
type RuleSet struct {
	HeadOrder []string
	Bodies    map[string][]Production
	Start     string
}

// Build constructs a Grammar from rs. If augment is true, a synthetic rule
// AUGMENTED_START -> start is inserted as rule 0 of a new head, and
// AUGMENTED_START becomes the effective start symbol; the original start is
// preserved and reachable via OriginalStart.
//
// Build returns a GrammarMalformed error if a head is declared with no
// productions, or if the requested start symbol is not a declared head.
func Build(rs RuleSet, augment bool) (Grammar, error) {
	g := Grammar{
		start:         rs.Start,
		originalStart: rs.Start,
		rules:         map[string]Rule{},
		terminals:     util.NewStringSet(),
		nonterminals:  util.NewStringSet(),
	}

	if rs.Start == "" {
		return Grammar{}, lrerr.New(lrerr.GrammarMalformed, "no start symbol given")
	}

	for _, head := range rs.HeadOrder {
		bodies, ok := rs.Bodies[head]
		if !ok || len(bodies) == 0 {
			return Grammar{}, lrerr.Newf(lrerr.GrammarMalformed, "nonterminal %q has no rules", head)
		}
		g.headOrder = append(g.headOrder, head)
		g.rules[head] = Rule{Head: head, Productions: append([]Production{}, bodies...)}
		g.nonterminals.Add(head)
	}

	if _, ok := g.rules[rs.Start]; !ok {
		return Grammar{}, lrerr.Newf(lrerr.GrammarMalformed, "start symbol %q has no rules defined for it", rs.Start)
	}

	if augment {
		g.augmented = true
		g.headOrder = append([]string{AugmentedStart}, g.headOrder...)
		g.rules[AugmentedStart] = Rule{
			Head:        AugmentedStart,
			Productions: []Production{{rs.Start}},
		}
		g.nonterminals.Add(AugmentedStart)
		g.start = AugmentedStart
	}

	// every RHS symbol that isn't a declared head is a terminal.
	for _, head := range g.headOrder {
		for _, body := range g.rules[head].Productions {
			if body.IsEpsilon() {
				continue
			}
			for _, sym := range body {
				if !g.nonterminals.Has(sym) {
					g.terminals.Add(sym)
				}
			}
		}
	}

	return g, nil
}

// Augmented returns true if this grammar was constructed with augment=true.
func (g Grammar) Augmented() bool {
	return g.augmented
}

// StartSymbol returns the effective start symbol: AUGMENTED_START if the
// grammar was built with augmentation, else the original start symbol.
func (g Grammar) StartSymbol() string {
	return g.start
}

// OriginalStart returns the start symbol the caller requested, even if the
// grammar was augmented (in which case StartSymbol returns AUGMENTED_START
// instead).
func (g Grammar) OriginalStart() string {
	return g.originalStart
}

// Rule returns the rule for the given nonterminal head and whether it
// exists.
func (g Grammar) Rule(head string) (Rule, bool) {
	r, ok := g.rules[head]
	return r, ok
}

// NonTerminals returns every nonterminal symbol, in lexicographic order
// (spec requires a deterministic terminals-then-nonterminals iteration
// order for canonical-collection construction to be reproducible).
func (g Grammar) NonTerminals() []string {
	return util.OrderedKeys(g.nonterminals)
}

// Terminals returns every terminal symbol, in lexicographic order,
// excluding EndMarker (which is never a grammar-declared terminal; it is an
// out-of-band sentinel used only as a lookahead/action key).
func (g Grammar) Terminals() []string {
	return util.OrderedKeys(g.terminals)
}

// IsTerminal reports whether sym is a terminal of this grammar (or the
// EndMarker sentinel).
func (g Grammar) IsTerminal(sym string) bool {
	return sym == EndMarker || g.terminals.Has(sym)
}

// IsNonTerminal reports whether sym is a nonterminal of this grammar.
func (g Grammar) IsNonTerminal(sym string) bool {
	return g.nonterminals.Has(sym)
}

// HeadOrder returns the nonterminal heads in declaration order (with
// AUGMENTED_START first, if present).
func (g Grammar) HeadOrder() []string {
	return append([]string{}, g.headOrder...)
}
