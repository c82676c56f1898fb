package util

import "sort"

// OrderedKeys returns the keys of m sorted lexicographically. Used throughout
// the grammar/automaton packages to make set-of-symbols and set-of-states
// iteration deterministic, which in turn is what makes state-index assignment
// in the canonical collection reproducible across runs.
func OrderedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// SortedCopy returns a lexicographically sorted copy of ss, leaving ss
// unmodified.
func SortedCopy(ss []string) []string {
	out := append([]string{}, ss...)
	sort.Strings(out)
	return out
}

// ArticleFor returns "a" or "an" as appropriate for the given word, doing the
// usual vowel-sound check. If capitalize is true, the article is capitalized.
func ArticleFor(word string, capitalize bool) string {
	art := "a"
	if len(word) > 0 {
		switch word[0] {
		case 'a', 'e', 'i', 'o', 'u', 'A', 'E', 'I', 'O', 'U':
			art = "an"
		}
	}
	if capitalize {
		art = string(art[0]-('a'-'A')) + art[1:]
	}
	return art
}
