// Package lrerr defines the fatal error kinds that the grammar analyzer,
// automaton builder, parser table builder, and parse driver can raise.
//
// The shape follows the teacher's own tqerrors convention: a struct
// carrying a human message, a kind, and an optional wrapped cause.
package lrerr

import "fmt"

// Kind identifies which stage of the pipeline raised the error.
type Kind int

const (
	// GrammarMalformed means no start symbol was given, the start symbol
	// has no rules, or a declared nonterminal has no rules at all. A body
	// symbol that is not a declared head is a terminal, so a reference to an
	// undefined nonterminal is not detected.
	GrammarMalformed Kind = iota

	// NotLR1 means the parser table builder found a reduce-reduce
	// conflict, or an accept-vs-other-action conflict, while building the
	// ACTION table.
	NotLR1

	// LexError means the lexical analyzer found no pattern that matched at
	// the current offset and was configured to fail rather than emit an
	// unknown token.
	LexError

	// ParseError means the parse driver consulted the ACTION table for a
	// (state, token) pair that has no entry.
	ParseError
)

func (k Kind) String() string {
	switch k {
	case GrammarMalformed:
		return "GrammarMalformed"
	case NotLR1:
		return "NotLR1"
	case LexError:
		return "LexError"
	case ParseError:
		return "ParseError"
	default:
		return "Unknown"
	}
}

// Error is a fatal error from one stage of the LR(1) pipeline. It carries a
// Kind so that callers can branch on errors.As/kind checks without string
// matching, a human-facing Message, and an optional wrapped cause.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Message, e.Cause.Error())
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// New returns a new Error of the given kind with the given message.
func New(k Kind, msg string) error {
	return &Error{Kind: k, Message: msg}
}

// Newf is like New but builds the message with fmt.Sprintf.
func Newf(k Kind, format string, args ...interface{}) error {
	return &Error{Kind: k, Message: fmt.Sprintf(format, args...)}
}

// Wrap returns a new Error of the given kind that wraps cause.
func Wrap(k Kind, msg string, cause error) error {
	return &Error{Kind: k, Message: msg, Cause: cause}
}

// Is reports whether err is an *Error of the given kind.
func Is(err error, k Kind) bool {
	e, ok := err.(*Error)
	if !ok {
		return false
	}
	return e.Kind == k
}
