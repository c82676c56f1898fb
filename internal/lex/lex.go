// Package lex implements the secondary lexical analyzer: component F of the
// parser generator. It is configured with an ordered list of
// (pattern, token class) pairs and segments input text into a token stream
// by trying each pattern, in order, anchored at the current offset.
package lex

import (
	"fmt"
	"regexp"

	"github.com/dekarrin/lrtoolkit/internal/lrerr"
	"github.com/dekarrin/lrtoolkit/internal/synstream"
)

// Rule is one (pattern, class) pair. Pat is compiled and anchored to the
// start of the remaining input automatically; callers should not include a
// leading "^". Whether a match is trivia to be dropped is a property of
// Class.Kind() (ClassWhitespace or ClassComment), consulted per call by
// Tokenize's skipTrivia argument rather than fixed at Rule construction
// time, so the same Lexer can serve both a trivia-inclusive raw-token dump
// and the trivia-exclusive stream the parser consumes.
type Rule struct {
	Pat   string
	Class synstream.TokenClass

	compiled *regexp.Regexp
}

// isTrivia reports whether a token of this rule's class is whitespace or
// comment filler rather than parser-significant content.
func (r Rule) isTrivia() bool {
	return r.Class.Kind() == synstream.ClassWhitespace || r.Class.Kind() == synstream.ClassComment
}

// Lexer segments text according to an ordered list of Rules. Order is
// significant: keywords must be listed before a general identifier pattern,
// and multi-character operators before any of their single-character
// prefixes, since the first rule that matches at a given offset wins
// regardless of match length.
type Lexer struct {
	rules []Rule

	// FailOnUnmatched, if true, makes Tokenize return a LexError as soon as
	// no rule matches at some offset. If false (the default), the single
	// next rune is emitted as an Unknown token and scanning continues.
	FailOnUnmatched bool
}

// New compiles rules into a Lexer. Returns a GrammarMalformed-adjacent error
// — reported as a LexError, since it's a configuration problem discovered
// at lexer construction rather than at match time — if any pattern fails to
// compile.
func New(rules []Rule) (*Lexer, error) {
	lx := &Lexer{rules: make([]Rule, len(rules))}
	for i, r := range rules {
		compiled, err := regexp.Compile(`\A(?:` + r.Pat + `)`)
		if err != nil {
			return nil, lrerr.Wrap(lrerr.LexError, fmt.Sprintf("pattern %q does not compile", r.Pat), err)
		}
		r.compiled = compiled
		lx.rules[i] = r
	}
	return lx, nil
}

// NextMatch attempts each configured rule, in order, against text[offset:].
// The first rule whose pattern matches at position 0 of that suffix wins;
// it returns the matched lexeme and the winning rule's index. ok is false
// if no rule matched.
func (lx *Lexer) NextMatch(text string, offset int) (lexeme string, ruleIdx int, ok bool) {
	suffix := text[offset:]
	for i, r := range lx.rules {
		if loc := r.compiled.FindStringIndex(suffix); loc != nil && loc[0] == 0 && loc[1] > 0 {
			return suffix[:loc[1]], i, true
		}
	}
	return "", 0, false
}

// Tokenize scans all of text into a token stream, tracking line and column
// for each token, and appends a trailing ENDMARKER token. If skipTrivia is
// true, matches of a whitespace- or comment-kind class are dropped rather
// than emitted as tokens; pass false to get every matched token back,
// useful for a raw-token debug dump. If FailOnUnmatched is set and no rule
// matches at some offset, it returns a LexError instead.
func (lx *Lexer) Tokenize(text string, skipTrivia bool) ([]synstream.Token, error) {
	var tokens []synstream.Token

	offset, line, col := 0, 1, 1

	advance := func(s string) {
		for _, r := range s {
			if r == '\n' {
				line++
				col = 1
			} else {
				col++
			}
		}
		offset += len(s)
	}

	for offset < len(text) {
		lexeme, ruleIdx, ok := lx.NextMatch(text, offset)
		if !ok {
			if lx.FailOnUnmatched {
				return nil, lrerr.Newf(lrerr.LexError, "no pattern matches input at line %d, col %d: %q", line, col, previewRune(text[offset:]))
			}
			tokens = append(tokens, synstream.NewToken(synstream.Unknown, previewRune(text[offset:]), line, col))
			advance(previewRune(text[offset:]))
			continue
		}

		rule := lx.rules[ruleIdx]
		if !skipTrivia || !rule.isTrivia() {
			tokens = append(tokens, synstream.NewToken(rule.Class, lexeme, line, col))
		}
		advance(lexeme)
	}

	tokens = append(tokens, synstream.NewEndMarker(line, col))
	return tokens, nil
}

// previewRune returns the first rune of s as a string, for use as the
// one-character lexeme of an unmatched-input token.
func previewRune(s string) string {
	for _, r := range s {
		return string(r)
	}
	return ""
}
