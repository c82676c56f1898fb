package parsetable

import (
	"fmt"

	"github.com/dekarrin/rosed"
)

// PrettyString renders the table as a human-readable grid: one row per
// state, one column per terminal (ACTION) followed by one column per
// nonterminal (GOTO), matching the debug table dump the teacher's canonical
// LR(1) table implementation produces.
func (t Table) PrettyString() string {
	terms := t.Grammar.Terminals()
	terms = append(terms, "$end")
	nonTerms := t.Grammar.NonTerminals()

	var data [][]string

	headers := []string{"ST", "|"}
	for _, term := range terms {
		headers = append(headers, fmt.Sprintf("A:%s", term))
	}
	headers = append(headers, "|")
	for _, nt := range nonTerms {
		headers = append(headers, fmt.Sprintf("G:%s", nt))
	}
	data = append(data, headers)

	for _, state := range t.Automaton.States {
		row := []string{fmt.Sprintf("%d", state.Index), "|"}

		for _, term := range terms {
			cell := ""
			if act, ok := t.Action[state.Index][term]; ok {
				cell = act.String()
			}
			row = append(row, cell)
		}

		row = append(row, "|")

		for _, nt := range nonTerms {
			cell := ""
			if to, ok := t.Goto[state.Index][nt]; ok {
				cell = fmt.Sprintf("%d", to)
			}
			row = append(row, cell)
		}

		data = append(data, row)
	}

	return rosed.
		Edit("").
		InsertTableOpts(0, data, 10, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()
}
