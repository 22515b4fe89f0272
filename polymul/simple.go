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

// Package polymul implements the two polynomial multiplication
// strategies: Simple, a plain term-by-term double loop suited to small
// operands, and Parallel (parallel.go), the homomorphic segmented
// multiplier suited to large ones. Select selects between them by the
// product of the two operands' term counts and the available parallelism.
package polymul

import (
	"fmt"

	"github.com/obake-go/obake/kpack"
	"github.com/obake-go/obake/monomial"
	"github.com/obake-go/obake/ring"
	"github.com/obake-go/obake/series"
	"github.com/obake-go/obake/symbolset"
	"github.com/obake-go/obake/truncate"
)

type flatTerm[T kpack.Packable, C any] struct {
	key   monomial.Monomial[T]
	coeff C
}

func flatten[T kpack.Packable, C any](s *series.Series[T, C], newNVars int, newIndexOf []int) ([]flatTerm[T, C], error) {
	out := make([]flatTerm[T, C], 0, s.NumTerms())
	var err error
	s.Range(func(key monomial.Monomial[T], coeff C) bool {
		remapped, e := key.MergeSymbols(newNVars, newIndexOf)
		if e != nil {
			err = e
			return false
		}
		out = append(out, flatTerm[T, C]{key: remapped, coeff: coeff})
		return true
	})
	return out, err
}

// mergeOperands remaps a's and b's terms onto their merged symbol set.
func mergeOperands[T kpack.Packable, C any](a, b *series.Series[T, C]) (symbolset.Set, []flatTerm[T, C], []flatTerm[T, C], error) {
	merged, mapA, mapB := symbolset.Merge(a.Symbols(), b.Symbols())
	ta, err := flatten(a, merged.Size(), mapA.NewIndexOf)
	if err != nil {
		return symbolset.Set{}, nil, nil, err
	}
	tb, err := flatten(b, merged.Size(), mapB.NewIndexOf)
	if err != nil {
		return symbolset.Set{}, nil, nil, err
	}
	return merged, ta, tb, nil
}

// checkOverflow calls monomial.RangeOverflowCheck over the flattened key
// ranges of both operands, the §4.G/§4.H precondition that rejects a
// multiplication whose worst-case component or degree sum cannot fit
// before any term-by-term work begins.
func checkOverflow[T kpack.Packable, C any](ta, tb []flatTerm[T, C]) error {
	aKeys := make([]monomial.Monomial[T], len(ta))
	for i, t := range ta {
		aKeys[i] = t.key
	}
	bKeys := make([]monomial.Monomial[T], len(tb))
	for i, t := range tb {
		bKeys[i] = t.key
	}
	ok, err := monomial.RangeOverflowCheck(aKeys, bKeys)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("polymul: %w: operand ranges cannot be multiplied without overflow", kpack.ErrOverflow)
	}
	return nil
}

// Simple multiplies a and b term by term. If policy is non-nil, terms
// whose product would exceed the degree bound are skipped without ever
// computing the product monomial, via a binary search over b's terms
// sorted by degree (truncate.SortedDegrees/UpperBound).
func Simple[T kpack.Packable, C any](a, b *series.Series[T, C], policy *truncate.Policy[T]) (*series.Series[T, C], error) {
	merged, ta, tb, err := mergeOperands(a, b)
	if err != nil {
		return nil, err
	}
	if err := checkOverflow(ta, tb); err != nil {
		return nil, err
	}
	r := a.Ring()
	result := series.New[T, C](merged, r)

	if policy == nil {
		for _, at := range ta {
			for _, bt := range tb {
				if err := multiplyInto(result, r, at, bt); err != nil {
					return nil, err
				}
			}
		}
		return result, nil
	}

	bKeys := make([]monomial.Monomial[T], len(tb))
	for i, bt := range tb {
		bKeys[i] = bt.key
	}
	order, sortedDeg, err := truncate.SortedDegrees(bKeys, *policy)
	if err != nil {
		return nil, err
	}

	for _, at := range ta {
		aDeg, err := policy.Degree(at.key)
		if err != nil {
			return nil, err
		}
		residual := policy.MaxDegree() - aDeg
		if residual < 0 {
			continue
		}
		limit := truncate.UpperBound(sortedDeg, residual)
		for _, idx := range order[:limit] {
			if err := multiplyInto(result, r, at, tb[idx]); err != nil {
				return nil, err
			}
		}
	}
	return result, nil
}

// multiplyInto computes the product monomial of two terms and folds the
// still-unmaterialised coefficient product into result: the destination
// table itself decides, on its own lock, whether to materialise A*B into
// a fresh slot or fuse it via FMA into an existing one, so this code
// never builds a product value of its own for a key that turns out to be a
// duplicate; whether the ring's FMA builds one internally depends on the
// ring (Rational's FMA is DefaultFMA, which does).
func multiplyInto[T kpack.Packable, C any](result *series.Series[T, C], r ring.Ring[C], at, bt flatTerm[T, C]) error {
	key, err := at.key.Mul(bt.key)
	if err != nil {
		return err
	}
	return result.AddLazyTerm(key, at.coeff, bt.coeff, series.AddTermOptions{CheckZero: true})
}
