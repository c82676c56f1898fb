package parsetable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dekarrin/lrtoolkit/internal/automaton"
	"github.com/dekarrin/lrtoolkit/internal/grammar"
	"github.com/dekarrin/lrtoolkit/internal/lrerr"
)

func arithExpr() grammar.RuleSet {
	return grammar.RuleSet{
		HeadOrder: []string{"E", "T", "F"},
		Start:     "E",
		Bodies: map[string][]grammar.Production{
			"E": {{"E", "+", "T"}, {"T"}},
			"T": {{"T", "*", "F"}, {"F"}},
			"F": {{"(", "E", ")"}, {"id"}},
		},
	}
}

// danglingElse is the classic shift/reduce ambiguity: S -> if E then S | if
// E then S else S | x, E -> y.
func danglingElse() grammar.RuleSet {
	return grammar.RuleSet{
		HeadOrder: []string{"S", "E"},
		Start:     "S",
		Bodies: map[string][]grammar.Production{
			"S": {
				{"if", "E", "then", "S"},
				{"if", "E", "then", "S", "else", "S"},
				{"x"},
			},
			"E": {{"y"}},
		},
	}
}

// reduceReduceAmbiguous cannot be resolved deterministically: on seeing the
// single terminal "a" after reducing nothing, the parser can't tell whether
// to reduce to A or to B.
func reduceReduceAmbiguous() grammar.RuleSet {
	return grammar.RuleSet{
		HeadOrder: []string{"S", "A", "B"},
		Start:     "S",
		Bodies: map[string][]grammar.Production{
			"S": {{"A"}, {"B"}},
			"A": {{"a"}},
			"B": {{"a"}},
		},
	}
}

func Test_Build_arithExprHasNoConflicts(t *testing.T) {
	g, err := grammar.Build(arithExpr(), true)
	require.NoError(t, err)

	a := automaton.Build(g)
	table, err := Build(g, a)
	require.NoError(t, err)
	assert.Empty(t, table.Diagnostics)
}

func Test_Build_danglingElseShiftWins(t *testing.T) {
	g, err := grammar.Build(danglingElse(), true)
	require.NoError(t, err)

	a := automaton.Build(g)
	table, err := Build(g, a)
	require.NoError(t, err, "a shift/reduce conflict must resolve, not fail construction")
	assert.NotEmpty(t, table.Diagnostics, "the dangling-else ambiguity should be logged as a resolved shift/reduce conflict")
}

func Test_Build_reduceReduceConflictIsNotLR1(t *testing.T) {
	g, err := grammar.Build(reduceReduceAmbiguous(), true)
	require.NoError(t, err)

	a := automaton.Build(g)
	_, err = Build(g, a)
	require.Error(t, err)
	assert.True(t, lrerr.Is(err, lrerr.NotLR1))
}
