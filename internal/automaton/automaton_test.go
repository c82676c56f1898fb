package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dekarrin/lrtoolkit/internal/grammar"
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

func Test_Build_stateZeroIsClosureOfAugmentedStart(t *testing.T) {
	g, err := grammar.Build(arithExpr(), true)
	require.NoError(t, err)

	a := Build(g)
	require.NotEmpty(t, a.States)
	assert.Equal(t, 0, a.Start)

	var sawAugmented bool
	for _, it := range a.States[0].Items.Items() {
		if it.Head == grammar.AugmentedStart {
			sawAugmented = true
		}
	}
	assert.True(t, sawAugmented)
}

func Test_Build_isDeterministicAcrossRuns(t *testing.T) {
	g, err := grammar.Build(arithExpr(), true)
	require.NoError(t, err)

	a1 := Build(g)
	a2 := Build(g)

	require.Equal(t, len(a1.States), len(a2.States))
	for i := range a1.States {
		assert.Equal(t, a1.States[i].Key(), a2.States[i].Key(), "state %d should have identical item sets across runs", i)
	}
}

func Test_Build_transitionsStayWithinStateBounds(t *testing.T) {
	g, err := grammar.Build(arithExpr(), true)
	require.NoError(t, err)

	a := Build(g)
	for from, row := range a.Transitions {
		assert.Less(t, from, len(a.States))
		for sym, to := range row {
			assert.Less(t, to, len(a.States), "transition on %q lands outside state table", sym)
		}
	}
}

func Test_GotoState_unknownSymbolIsAbsent(t *testing.T) {
	g, err := grammar.Build(arithExpr(), true)
	require.NoError(t, err)

	a := Build(g)
	_, ok := a.GotoState(a.Start, "nonexistent-symbol")
	assert.False(t, ok)
}
