package util

import (
	"fmt"
	"sort"
	"strings"
)

// StringSet is a map[string]bool with methods added for set-style use,
// adapted from the teacher's broader generic-set package down to just the
// string-keyed case this domain actually needs: terminal and nonterminal
// symbol membership in Grammar.
type StringSet map[string]bool

// NewStringSet returns a new, empty StringSet, optionally seeded from the
// keys of one or more maps.
func NewStringSet(of ...map[string]bool) StringSet {
	s := StringSet{}
	for _, m := range of {
		for k := range m {
			s.Add(k)
		}
	}
	return s
}

// StringSetOf builds a StringSet containing every element of sl.
func StringSetOf(sl []string) StringSet {
	if sl == nil {
		return nil
	}
	s := StringSet{}
	for _, v := range sl {
		s.Add(v)
	}
	return s
}

func (s StringSet) Copy() StringSet {
	newS := NewStringSet()
	for k := range s {
		newS.Add(k)
	}
	return newS
}

// Union returns a new set containing every element of s and o.
func (s StringSet) Union(o StringSet) StringSet {
	newSet := s.Copy()
	newSet.AddAll(o)
	return newSet
}

// Intersection returns a new set containing only elements present in both s
// and o.
func (s StringSet) Intersection(o StringSet) StringSet {
	newSet := NewStringSet()
	for k := range s {
		if o.Has(k) {
			newSet.Add(k)
		}
	}
	return newSet
}

// Difference returns a new set containing elements of s not present in o.
func (s StringSet) Difference(o StringSet) StringSet {
	newSet := s.Copy()
	for k := range o {
		newSet.Remove(k)
	}
	return newSet
}

func (s StringSet) DisjointWith(o StringSet) bool {
	for k := range s {
		if o.Has(k) {
			return false
		}
	}
	return true
}

func (s StringSet) Empty() bool {
	return s.Len() == 0
}

func (s StringSet) Any(predicate func(v string) bool) bool {
	for k := range s {
		if predicate(k) {
			return true
		}
	}
	return false
}

func (s StringSet) Has(value string) bool {
	_, has := s[value]
	return has
}

func (s StringSet) Add(value string) {
	s[value] = true
}

func (s StringSet) Remove(value string) {
	delete(s, value)
}

func (s StringSet) Len() int {
	return len(s)
}

func (s StringSet) AddAll(o StringSet) {
	for k := range o {
		s.Add(k)
	}
}

// StringOrdered shows the contents of the set with items alphabetized.
func (s StringSet) StringOrdered() string {
	convs := make([]string, 0, len(s))
	for k := range s {
		convs = append(convs, k)
	}
	sort.Strings(convs)

	var sb strings.Builder
	sb.WriteRune('{')
	sb.WriteString(strings.Join(convs, ", "))
	sb.WriteRune('}')
	return sb.String()
}

// String shows the contents of the set; item order is not guaranteed.
func (s StringSet) String() string {
	convs := make([]string, 0, len(s))
	for k := range s {
		convs = append(convs, fmt.Sprintf("%v", k))
	}
	return "{" + strings.Join(convs, ", ") + "}"
}

// Equal returns whether two sets have exactly the same elements.
func (s StringSet) Equal(o StringSet) bool {
	if s.Len() != o.Len() {
		return false
	}
	for k := range s {
		if !o.Has(k) {
			return false
		}
	}
	return true
}

// Elements returns the elements of s as a slice in no particular order.
func (s StringSet) Elements() []string {
	if s == nil {
		return nil
	}
	sl := make([]string, 0, len(s))
	for item := range s {
		sl = append(sl, item)
	}
	return sl
}
