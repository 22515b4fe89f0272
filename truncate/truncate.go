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

// Package truncate implements the two degree-bound truncation policies
// the multiplier enforces while building a product: total degree (sum of
// every exponent) and partial degree (sum over a chosen subset of
// symbols). Both compile down to the same shape used downstream by the
// multiplier and the estimator: a per-monomial degree, sorted once, then
// binary-searched per partner to find how many terms of the other operand
// are still eligible under the bound.
package truncate

import (
	"errors"
	"fmt"
	"sort"

	"github.com/obake-go/obake/kpack"
	"github.com/obake-go/obake/monomial"
)

// ErrSymbolIndex is returned when a partial-degree policy references a
// symbol index outside a monomial's range.
var ErrSymbolIndex = errors.New("truncate: symbol index out of range")

// Policy is a degree bound: either total (all symbols) or partial (a
// chosen symbol subset).
type Policy[T kpack.Packable] struct {
	maxDeg  T
	symbols []int // nil means total degree
}

// Total returns a policy bounding the sum of all exponents to maxDeg.
func Total[T kpack.Packable](maxDeg T) Policy[T] {
	return Policy[T]{maxDeg: maxDeg}
}

// Partial returns a policy bounding the sum of exponents over symbols to
// maxDeg.
func Partial[T kpack.Packable](maxDeg T, symbols []int) Policy[T] {
	return Policy[T]{maxDeg: maxDeg, symbols: append([]int(nil), symbols...)}
}

// MaxDegree returns the bound this policy enforces.
func (p Policy[T]) MaxDegree() T { return p.maxDeg }

// Degree returns m's degree under this policy: total degree, or the
// partial degree restricted to p's symbol subset.
func (p Policy[T]) Degree(m monomial.Monomial[T]) (T, error) {
	if p.symbols == nil {
		d, err := m.KeyDegree()
		if err != nil {
			return 0, fmt.Errorf("truncate: %w", err)
		}
		return d, nil
	}
	d, err := m.PDegree(p.symbols)
	if err != nil {
		return 0, fmt.Errorf("truncate: %w", err)
	}
	return d, nil
}

// Allows reports whether m's degree under this policy is within the
// bound.
func (p Policy[T]) Allows(m monomial.Monomial[T]) (bool, error) {
	d, err := p.Degree(m)
	if err != nil {
		return false, err
	}
	return d <= p.maxDeg, nil
}

// SortedDegrees computes, for every monomial in terms, its degree under p,
// and returns a permutation of [0, len(terms)) sorted ascending by that
// degree alongside the corresponding sorted degree values. Binary-search
// these with UpperBound to find how many of terms remain eligible under a
// residual bound.
func SortedDegrees[T kpack.Packable](terms []monomial.Monomial[T], p Policy[T]) (order []int, degrees []T, err error) {
	order = make([]int, len(terms))
	degrees = make([]T, len(terms))
	for i, m := range terms {
		d, err := p.Degree(m)
		if err != nil {
			return nil, nil, err
		}
		order[i] = i
		degrees[i] = d
	}
	sort.Slice(order, func(a, b int) bool { return degrees[order[a]] < degrees[order[b]] })

	sortedDeg := make([]T, len(terms))
	for i, idx := range order {
		sortedDeg[i] = degrees[idx]
	}
	return order, sortedDeg, nil
}

// UpperBound returns the count of entries in sortedDeg (ascending) that
// are <= limit: the number of eligible multiplication partners once the
// residual degree budget "maxDeg - otherOperandDegree" is known.
func UpperBound[T kpack.Packable](sortedDeg []T, limit T) int {
	return sort.Search(len(sortedDeg), func(i int) bool { return sortedDeg[i] > limit })
}
