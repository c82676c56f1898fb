// Package lrtoolkit is a small toolkit for building LR(1) parsers: given a
// context-free grammar, it builds the canonical LR(1) automaton, derives
// ACTION/GOTO tables (shift always wins a shift/reduce conflict; anything
// else ambiguous is rejected as NotLR1), and drives a shift/reduce parser
// over a token stream to produce a concrete syntax tree.
//
// A secondary lexical analyzer is included since the parse driver depends
// on a token stream, but its pattern catalog is not canonical: callers may
// supply any token set consistent with the grammar's terminals.
package lrtoolkit

import (
	"github.com/dekarrin/lrtoolkit/internal/automaton"
	"github.com/dekarrin/lrtoolkit/internal/grammar"
	"github.com/dekarrin/lrtoolkit/internal/lex"
	"github.com/dekarrin/lrtoolkit/internal/parse"
	"github.com/dekarrin/lrtoolkit/internal/parsetable"
	"github.com/dekarrin/lrtoolkit/internal/synstream"
)

// Re-exported vocabulary types so callers need only import this package for
// everyday use; the internal packages remain available directly for callers
// who want the analyzer stages (FIRST/FOLLOW/CLOSURE, the raw automaton) on
// their own.
type (
	Grammar    = grammar.Grammar
	Production = grammar.Production
	Rule       = grammar.Rule
	RuleSet    = grammar.RuleSet

	TokenClass  = synstream.TokenClass
	Token       = synstream.Token
	TokenStream = synstream.TokenStream
	ParseTree   = synstream.ParseTree

	LexRule = lex.Rule
)

const (
	Epsilon        = grammar.Epsilon
	EndMarker      = grammar.EndMarker
	AugmentedStart = grammar.AugmentedStart
)

// NewGrammar builds an augmented Grammar from rs, ready to pass to
// NewParser. augment is always true here: the augmented start production is
// what gives the automaton a unique accepting item.
func NewGrammar(rs RuleSet) (Grammar, error) {
	return grammar.Build(rs, true)
}

// Parser is the externally-visible surface of a generated LR(1) parser: a
// driver bound to a single grammar's tables.
type Parser struct {
	Table parsetable.Table
	drv   *parse.Parser
}

// NewParser builds the canonical LR(1) automaton for g, derives its
// ACTION/GOTO tables, and returns a ready-to-use Parser. Returns a NotLR1
// error if g is not LR(1) under this toolkit's deterministic-shift conflict
// policy.
func NewParser(g Grammar) (*Parser, error) {
	auto := automaton.Build(g)
	table, err := parsetable.Build(g, auto)
	if err != nil {
		return nil, err
	}
	return &Parser{Table: table, drv: parse.New(table)}, nil
}

// RegisterTraceListener installs fn to receive one line of text per shift,
// reduce, and accept step the underlying driver takes.
func (p *Parser) RegisterTraceListener(fn func(string)) {
	p.drv.RegisterTraceListener(fn)
}

// Parse drives stream to completion, returning the resulting (Finalized)
// concrete syntax tree or a ParseError.
func (p *Parser) Parse(stream TokenStream) (*ParseTree, error) {
	return p.drv.Parse(stream)
}

// NewLexer compiles an ordered list of (pattern, class) rules into a Lexer.
func NewLexer(rules []LexRule) (*lex.Lexer, error) {
	return lex.New(rules)
}

// Frontend chains a Lexer and Parser so callers can go directly from source
// text to a parse tree. It deliberately has no semantic-analysis stage: the
// syntax-directed-translation machinery that would sit downstream of parsing
// is out of scope for this toolkit.
type Frontend struct {
	Lexer  *lex.Lexer
	Parser *Parser
}

// NewFrontend pairs lx and p.
func NewFrontend(lx *lex.Lexer, p *Parser) *Frontend {
	return &Frontend{Lexer: lx, Parser: p}
}

// AnalyzeString lexes text and parses the resulting token stream in one
// call. Whitespace and comment tokens are dropped before parsing, since the
// grammar driving Parser is not expected to have rules for trivia.
func (f *Frontend) AnalyzeString(text string) (*ParseTree, error) {
	tokens, err := f.Lexer.Tokenize(text, true)
	if err != nil {
		return nil, err
	}
	stream := synstream.NewSliceStream(tokens)
	return f.Parser.Parse(stream)
}
