package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dekarrin/lrtoolkit/internal/automaton"
	"github.com/dekarrin/lrtoolkit/internal/grammar"
	"github.com/dekarrin/lrtoolkit/internal/lrerr"
	"github.com/dekarrin/lrtoolkit/internal/parsetable"
	"github.com/dekarrin/lrtoolkit/internal/synstream"
)

func buildTable(t *testing.T, rs grammar.RuleSet) parsetable.Table {
	t.Helper()
	g, err := grammar.Build(rs, true)
	require.NoError(t, err)
	a := automaton.Build(g)
	table, err := parsetable.Build(g, a)
	require.NoError(t, err)
	return table
}

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

var (
	classPlus = synstream.NewClass("+", "plus", synstream.ClassOperator)
	classStar = synstream.NewClass("*", "star", synstream.ClassOperator)
	classID   = synstream.NewClass("id", "identifier", synstream.ClassIdentifier)
)

func tok(class synstream.TokenClass, lexeme string) synstream.Token {
	return synstream.NewToken(class, lexeme, 1, 1)
}

func streamOf(tokens ...synstream.Token) synstream.TokenStream {
	all := append(append([]synstream.Token{}, tokens...), synstream.NewEndMarker(1, 1))
	return synstream.NewSliceStream(all)
}

func Test_Parse_arithmeticExpression(t *testing.T) {
	table := buildTable(t, arithExpr())
	p := New(table)

	stream := streamOf(
		tok(classID, "id"), tok(classPlus, "+"),
		tok(classID, "id"), tok(classStar, "*"), tok(classID, "id"),
	)

	tree, err := p.Parse(stream)
	require.NoError(t, err)
	require.NotNil(t, tree)

	assert.Equal(t, grammar.AugmentedStart, tree.Value)
	require.Len(t, tree.Children, 1)
	assert.Equal(t, "E", tree.Children[0].Value)

	leaves := tree.Leaves()
	lexemes := make([]string, len(leaves))
	for i, l := range leaves {
		lexemes[i] = l.Lexeme()
	}
	assert.Equal(t, []string{"id", "+", "id", "*", "id"}, lexemes)
}

func Test_Parse_epsilonProduction(t *testing.T) {
	rs := grammar.RuleSet{
		HeadOrder: []string{"S", "A", "B"},
		Start:     "S",
		Bodies: map[string][]grammar.Production{
			"S": {{"A", "B"}},
			"A": {{"a"}, {grammar.Epsilon}},
			"B": {{"b"}},
		},
	}
	table := buildTable(t, rs)
	p := New(table)

	classB := synstream.NewClass("b", "b", synstream.ClassLiteral)

	stream := streamOf(tok(classB, "b"))
	tree, err := p.Parse(stream)
	require.NoError(t, err)

	root := tree.Children[0] // S
	require.Equal(t, "S", root.Value)
	require.Len(t, root.Children, 2)
	assert.Equal(t, "A", root.Children[0].Value)
	assert.Empty(t, root.Children[0].Children, "A should reduce via its epsilon alternative")
	assert.Equal(t, "B", root.Children[1].Value)
	require.Len(t, root.Children[1].Children, 1)
	assert.Equal(t, "b", root.Children[1].Children[0].Source.Lexeme())
}

func Test_Parse_unexpectedTokenReportsExpectedSet(t *testing.T) {
	table := buildTable(t, arithExpr())
	p := New(table)

	// "id +" then end of input: a term is expected after '+', not ENDMARKER.
	stream := streamOf(tok(classID, "id"), tok(classPlus, "+"))

	_, err := p.Parse(stream)
	require.Error(t, err)
	assert.True(t, lrerr.Is(err, lrerr.ParseError))
	assert.Contains(t, err.Error(), "id")
	assert.Contains(t, err.Error(), "(")
}

// danglingElse is the classic shift/reduce ambiguity: S -> if E then S | if
// E then S else S | x, E -> y. Mirrors parsetable's danglingElse fixture.
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

var (
	classIf   = synstream.NewClass("if", "if", synstream.ClassKeyword)
	classThen = synstream.NewClass("then", "then", synstream.ClassKeyword)
	classElse = synstream.NewClass("else", "else", synstream.ClassKeyword)
	classX    = synstream.NewClass("x", "x", synstream.ClassLiteral)
	classY    = synstream.NewClass("y", "y", synstream.ClassLiteral)
)

// Test_Parse_danglingElseBindsToInnerIf drives "if y then if y then x else
// x" through the parser and asserts the resulting tree attaches the else
// clause to the inner if, per the shift-wins conflict policy: shift always
// wins at the point where the parser must choose between reducing the
// inner "if E then S" (no else) and shifting the dangling "else".
func Test_Parse_danglingElseBindsToInnerIf(t *testing.T) {
	table := buildTable(t, danglingElse())
	p := New(table)

	stream := streamOf(
		tok(classIf, "if"), tok(classY, "y"), tok(classThen, "then"),
		tok(classIf, "if"), tok(classY, "y"), tok(classThen, "then"),
		tok(classX, "x"), tok(classElse, "else"), tok(classX, "x"),
	)

	tree, err := p.Parse(stream)
	require.NoError(t, err)
	require.NotNil(t, tree)

	outer := tree.Children[0]
	require.Equal(t, "S", outer.Value)
	require.Len(t, outer.Children, 4, "outer S should reduce via if E then S (no else)")

	inner := outer.Children[3]
	require.Equal(t, "S", inner.Value)
	require.Len(t, inner.Children, 6, "inner S should reduce via if E then S else S, binding the else to the inner if")
	assert.Equal(t, "else", inner.Children[4].Value)
}

func Test_Parse_traceListenerReceivesSteps(t *testing.T) {
	table := buildTable(t, arithExpr())
	p := New(table)

	var lines []string
	p.RegisterTraceListener(func(s string) {
		lines = append(lines, s)
	})

	stream := streamOf(tok(classID, "id"))
	_, err := p.Parse(stream)
	require.NoError(t, err)
	require.NotEmpty(t, lines)
	assert.Equal(t, "accept", lines[len(lines)-1])
}
