package logic

import (
	"sort"
	"strconv"
)

// NameSet is a set of variable names.
type NameSet map[string]struct{}

// NewNameSet creates a set holding the given names.
func NewNameSet(names ...string) NameSet {
	s := make(NameSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Has reports whether name is in the set.
func (s NameSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Add inserts name into the set.
func (s NameSet) Add(name string) {
	s[name] = struct{}{}
}

// AddAll inserts every name of other into the set.
func (s NameSet) AddAll(other NameSet) {
	for n := range other {
		s[n] = struct{}{}
	}
}

// Union returns a new set holding the names of both sets.
func (s NameSet) Union(other NameSet) NameSet {
	out := make(NameSet, len(s)+len(other))
	out.AddAll(s)
	out.AddAll(other)
	return out
}

// Without returns a copy of the set with name removed.
func (s NameSet) Without(name string) NameSet {
	out := make(NameSet, len(s))
	for n := range s {
		if n != name {
			out[n] = struct{}{}
		}
	}
	return out
}

// Clone returns a copy of the set.
func (s NameSet) Clone() NameSet {
	return s.Union(nil)
}

// Sorted returns the names in lexical order.
func (s NameSet) Sorted() []string {
	names := make([]string, 0, len(s))
	for n := range s {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// FreshName appends the smallest positive integer to base that yields a
// name not present in used: x1, x2, ...
// The base name itself is never returned.
func FreshName(base string, used NameSet) string {
	for i := 1; ; i++ {
		name := base + strconv.Itoa(i)
		if !used.Has(name) {
			return name
		}
	}
}
