// Package parse implements the shift/reduce parse driver: component E of
// the parser generator. Given a parser table and a token stream, it builds
// a concrete syntax tree, or a ParseError describing exactly what terminals
// would have been accepted at the point parsing failed.
package parse

import (
	"fmt"

	"github.com/dekarrin/lrtoolkit/internal/lrerr"
	"github.com/dekarrin/lrtoolkit/internal/parsetable"
	"github.com/dekarrin/lrtoolkit/internal/synstream"
	"github.com/dekarrin/lrtoolkit/internal/util"
)

// Parser runs the shift/reduce algorithm against a fixed parser table. The
// zero value is not usable; construct with New.
type Parser struct {
	table parsetable.Table
	trace func(string)
}

// New returns a Parser driven by t.
func New(t parsetable.Table) *Parser {
	return &Parser{table: t}
}

// RegisterTraceListener installs fn to be called with one human-readable
// line per shift, reduce, and accept step taken during Parse. Passing nil
// disables tracing. Intended for debugging and golden-trace tests, not for
// production control flow.
func (p *Parser) RegisterTraceListener(fn func(string)) {
	p.trace = fn
}

func (p *Parser) notify(format string, args ...interface{}) {
	if p.trace != nil {
		p.trace(fmt.Sprintf(format, args...))
	}
}

// Parse consumes stream to completion and returns the resulting concrete
// syntax tree, already Finalized into source order. On failure it returns a
// ParseError (wrapped as an *lrerr.Error of Kind lrerr.ParseError) naming the
// offending token and the set of terminals that would have been accepted
// instead.
func (p *Parser) Parse(stream synstream.TokenStream) (*synstream.ParseTree, error) {
	stateStack := util.Stack[int]{}
	treeStack := util.Stack[*synstream.ParseTree]{}
	stateStack.Push(p.table.Automaton.Start)

	for {
		tok := stream.Peek()
		top := stateStack.Peek()
		termID := tok.Class().ID()

		action, ok := p.table.Action[top][termID]
		if !ok {
			return nil, p.parseError(top, tok)
		}

		switch action.Type {
		case parsetable.Shift:
			stream.Next()
			stateStack.Push(action.State)
			treeStack.Push(synstream.Leaf(tok))
			p.notify("shift %s, goto state %d", tok, action.State)

		case parsetable.Reduce:
			rule, _ := p.table.Grammar.Rule(action.Head)
			body := rule.Productions[action.RuleIndex]

			node := synstream.Internal(action.Head)
			if !body.IsEpsilon() {
				for range body {
					stateStack.Pop()
					node.Children = append(node.Children, treeStack.Pop())
				}
			}

			newTop := stateStack.Peek()
			to, ok := p.table.Goto[newTop][action.Head]
			if !ok {
				return nil, lrerr.Newf(lrerr.ParseError, "internal error: no GOTO[%d, %s] after reducing by %s -> %s", newTop, action.Head, action.Head, body)
			}
			stateStack.Push(to)
			treeStack.Push(node)
			p.notify("reduce by %s -> %s, goto state %d", action.Head, body, to)

		case parsetable.Accept:
			p.notify("accept")
			root := synstream.Internal(p.table.Grammar.StartSymbol())
			root.Children = append(root.Children, treeStack.Pop())
			root.Finalize()
			return root, nil

		default:
			return nil, p.parseError(top, tok)
		}
	}
}

// parseError builds a ParseError for an unexpected token tok encountered in
// state. The message names, by terminal ID in lexicographic order, every
// terminal that table state `state` would have accepted, each with an
// article and joined by util.MakeTextList ("expected a ( and an id").
func (p *Parser) parseError(state int, tok synstream.Token) error {
	expected := p.expectedHumanNames(state)

	var msg string
	if len(expected) == 0 {
		msg = fmt.Sprintf("unexpected %s at line %d, col %d", describeToken(tok), tok.Line(), tok.LinePos())
	} else {
		msg = fmt.Sprintf("unexpected %s at line %d, col %d; expected %s", describeToken(tok), tok.Line(), tok.LinePos(), joinExpected(expected))
	}

	return lrerr.New(lrerr.ParseError, msg)
}

func (p *Parser) expectedHumanNames(state int) []string {
	row := p.table.Action[state]
	names := make([]string, 0, len(row))
	for term := range row {
		names = append(names, term)
	}
	names = util.SortedCopy(names)
	return names
}

func describeToken(tok synstream.Token) string {
	human := tok.Class().Human()
	if tok.Lexeme() == "" {
		return human
	}
	return fmt.Sprintf("%s %q", human, tok.Lexeme())
}

func joinExpected(names []string) string {
	withArticles := make([]string, len(names))
	for i, n := range names {
		withArticles[i] = util.ArticleFor(n, false) + " " + n
	}
	return util.MakeTextList(withArticles)
}
