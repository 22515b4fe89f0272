// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package symbolset implements the ordered symbol-set container consumed by
// the monomial and series layers: a sorted, deduplicated list of variable
// names with O(log n) lookup, index-of query, and a merge operation that
// returns the union plus an insertion map per operand.
package symbolset

import (
	"sort"

	"github.com/samber/lo"
)

// Set is an immutable, sorted, deduplicated sequence of symbol names.
type Set struct {
	names []string
}

// New builds a Set from arbitrary names, sorting and deduplicating them.
func New(names ...string) Set {
	uniq := lo.Uniq(names)
	sort.Strings(uniq)
	return Set{names: uniq}
}

// Size returns the number of symbols.
func (s Set) Size() int { return len(s.names) }

// At returns the i-th symbol in order.
func (s Set) At(i int) string { return s.names[i] }

// Names returns the symbols in order. The returned slice must not be
// mutated.
func (s Set) Names() []string { return s.names }

// IndexOf returns the position of name within the set, or -1 if absent.
func (s Set) IndexOf(name string) int {
	i := sort.SearchStrings(s.names, name)
	if i < len(s.names) && s.names[i] == name {
		return i
	}
	return -1
}

// Equal reports whether two sets contain the same symbols in the same
// order.
func (s Set) Equal(other Set) bool {
	if len(s.names) != len(other.names) {
		return false
	}
	for i, n := range s.names {
		if other.names[i] != n {
			return false
		}
	}
	return true
}

// InsertionMap relates an original symbol set to a merged one: for the i-th
// symbol of the ORIGINAL set, NewIndexOf[i] gives its index in the merged
// set, and Inserted lists the merged-set indices holding symbols absent
// from the original set. Monomial.MergeSymbols rebuilds a monomial for the
// merged set from NewIndexOf alone, leaving every other position zero.
type InsertionMap struct {
	// NewIndexOf[i] is the index in the merged set of the i-th symbol of
	// the original set.
	NewIndexOf []int
	// Inserted lists, in increasing order, merged-set indices that hold a
	// symbol not present in the original set.
	Inserted []int
}

// Merge computes the union of a and b (sorted, deduplicated) together with
// the insertion map each operand needs to rebuild its monomials against the
// merged set.
func Merge(a, b Set) (merged Set, mapA, mapB InsertionMap) {
	unionNames := lo.Uniq(append(append([]string{}, a.names...), b.names...))
	sort.Strings(unionNames)
	merged = Set{names: unionNames}

	mapA = buildInsertionMap(a, merged)
	mapB = buildInsertionMap(b, merged)
	return merged, mapA, mapB
}

func buildInsertionMap(original, merged Set) InsertionMap {
	newIndexOf := make([]int, len(original.names))
	present := make(map[int]bool, len(original.names))
	for i, name := range original.names {
		idx := merged.IndexOf(name)
		newIndexOf[i] = idx
		present[idx] = true
	}

	var inserted []int
	for i := range merged.names {
		if !present[i] {
			inserted = append(inserted, i)
		}
	}

	return InsertionMap{NewIndexOf: newIndexOf, Inserted: inserted}
}

// IndicesOf returns the merged-set indices of every name in names that is
// present in s, used to build partial-degree index sets (spec Truncation
// policies).
func (s Set) IndicesOf(names []string) []int {
	return lo.FilterMap(names, func(name string, _ int) (int, bool) {
		idx := s.IndexOf(name)
		return idx, idx >= 0
	})
}
