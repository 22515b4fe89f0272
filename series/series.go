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

// Package series implements the polynomial container itself: a symbol
// set plus a segmented table of monomial -> coefficient terms. Inserting a
// coefficient already in hand funnels through AddTerm (the multiplier's
// deferred products go through AddLazyTerm, and Scale, DivScalar and Clear
// act on the table directly), a single primitive parametrised by
// five independent flags (mirroring the source's template-bool
// parameters) rather than five near-duplicate methods, so the
// sign/zero-check/compatibility-check/size-check/uniqueness-assumption
// combinations a caller needs are all one call with different options.
package series

import (
	"errors"
	"fmt"

	"github.com/obake-go/obake/kpack"
	"github.com/obake-go/obake/monomial"
	"github.com/obake-go/obake/ring"
	"github.com/obake-go/obake/segtable"
	"github.com/obake-go/obake/symbolset"
)

// ErrIncompatible covers symbol-set/key mismatches and the non-convertible
// case of ToCoefficient.
var ErrIncompatible = errors.New("series: incompatible operand")

// defaultLogSegments is the segment-count exponent New uses: additive
// construction does not know the eventual term count ahead of time the
// way the parallel multiplier does, so it uses a modest fixed count. A
// table's segment count is set at construction and never changes.
const defaultLogSegments = 2

// Series is a sparse polynomial: a symbol set and a table mapping
// monomials over that symbol set to coefficients.
type Series[T kpack.Packable, C any] struct {
	symbols symbolset.Set
	terms   *segtable.Table[T, C]
	r       ring.Ring[C]
}

// New creates an empty series over symbols with coefficients in r.
func New[T kpack.Packable, C any](symbols symbolset.Set, r ring.Ring[C]) *Series[T, C] {
	return &Series[T, C]{
		symbols: symbols,
		terms:   segtable.New[T, C](defaultLogSegments, 0, r),
		r:       r,
	}
}

// NewWithSegments creates an empty series with an explicit segment-count
// exponent, for callers (the parallel multiplier) that have already
// estimated the eventual term count and want the destination table
// pre-sharded accordingly rather than fixed at defaultLogSegments.
func NewWithSegments[T kpack.Packable, C any](symbols symbolset.Set, r ring.Ring[C], logSegments int) *Series[T, C] {
	return &Series[T, C]{
		symbols: symbols,
		terms:   segtable.New[T, C](logSegments, 0, r),
		r:       r,
	}
}

// NumSegments returns the destination table's segment count, letting a
// caller that pre-shards its own operands (the parallel multiplier) read
// the table's own mask back instead of recomputing it independently and
// risking the two falling out of step.
func (s *Series[T, C]) NumSegments() int { return s.terms.NumSegments() }

// SegmentIndex returns the segment key's hash maps to in this series'
// table.
func (s *Series[T, C]) SegmentIndex(key monomial.Monomial[T]) int { return s.terms.SegmentIndex(key) }

// Clear removes every term, leaving the series empty. Used on the
// parallel multiplier's error path, where a fault partway through must
// not leave a partially populated result for the caller to observe.
func (s *Series[T, C]) Clear() {
	s.terms.Clear()
}

// Symbols returns the series' symbol set.
func (s *Series[T, C]) Symbols() symbolset.Set { return s.symbols }

// NumTerms returns the number of nonzero terms.
func (s *Series[T, C]) NumTerms() int { return s.terms.Size() }

// Ring returns the coefficient ring backing this series.
func (s *Series[T, C]) Ring() ring.Ring[C] { return s.r }

// Range calls fn for every term. fn must not mutate the series.
func (s *Series[T, C]) Range(fn func(key monomial.Monomial[T], coeff C) bool) {
	s.terms.Range(fn)
}

// AddTermOptions selects which of AddTerm's five independent checks run.
// Each corresponds to one of the source's template-bool parameters.
type AddTermOptions struct {
	// Sign, if true, subtracts coeff instead of adding it.
	Sign bool
	// CheckZero skips the insertion entirely (and erases an existing
	// term that nets to zero) when the net coefficient is zero.
	CheckZero bool
	// CheckCompatKey verifies key.NVars() matches the series' symbol
	// count before inserting.
	CheckCompatKey bool
	// CheckTableSize makes AddTerm look the key up before inserting it.
	// The table's configured maximum size is checked by the table itself
	// on every insertion, with or without this flag; series tables are
	// created without a maximum.
	CheckTableSize bool
	// AssumeUnique skips the lookup AddTerm otherwise makes to net out a
	// zero coefficient: the key goes straight to the table, which still
	// accumulates onto an existing entry. Used by Add/Sub when copying the
	// first operand's terms, whose keys are distinct by construction.
	AssumeUnique bool
}

// AddTerm inserts or accumulates coeff at key according to opts.
func (s *Series[T, C]) AddTerm(key monomial.Monomial[T], coeff C, opts AddTermOptions) error {
	if opts.CheckCompatKey && key.NVars() != s.symbols.Size() {
		return fmt.Errorf("%w: term has %d symbols, series has %d", ErrIncompatible, key.NVars(), s.symbols.Size())
	}

	signed := coeff
	if opts.Sign {
		signed = s.r.Neg(coeff)
	}

	if opts.AssumeUnique {
		if opts.CheckZero && s.r.IsZero(signed) {
			return nil
		}
		return s.terms.InsertOrAccumulate(key, signed)
	}

	if !opts.CheckZero && !opts.CheckTableSize {
		return s.terms.InsertOrAccumulate(key, signed)
	}

	existing, had := s.terms.Lookup(key)
	if !had && opts.CheckTableSize {
		if err := s.terms.InsertOrAccumulate(key, signed); err != nil {
			return err
		}
		if opts.CheckZero && s.r.IsZero(signed) {
			_ = s.terms.Erase(key)
		}
		return nil
	}

	if err := s.terms.InsertOrAccumulate(key, signed); err != nil {
		return err
	}
	if opts.CheckZero {
		net := signed
		if had {
			net = s.r.Add(existing, signed)
		}
		if s.r.IsZero(net) {
			_ = s.terms.Erase(key)
		}
	}
	return nil
}

// AddLazyTerm inserts or accumulates the product a*b at key without ever
// computing that product until the destination slot is known: a fresh
// key materialises a*b directly into its slot via the ring's Mul, a
// duplicate key fuses it into the existing accumulator via the ring's
// FMA. This is the multiplier's hot-path primitive (§4.G/§4.H); AddTerm
// above is for everywhere else a coefficient is already in hand.
func (s *Series[T, C]) AddLazyTerm(key monomial.Monomial[T], a, b C, opts AddTermOptions) error {
	if opts.CheckCompatKey && key.NVars() != s.symbols.Size() {
		return fmt.Errorf("%w: term has %d symbols, series has %d", ErrIncompatible, key.NVars(), s.symbols.Size())
	}
	if err := s.terms.InsertOrAccumulateLazy(key, a, b); err != nil {
		return err
	}
	if opts.CheckZero {
		if v, ok := s.terms.Lookup(key); ok && s.r.IsZero(v) {
			_ = s.terms.Erase(key)
		}
	}
	return nil
}

func (s *Series[T, C]) unitKey() (monomial.Monomial[T], error) {
	zeros := make([]T, s.symbols.Size())
	return monomial.New[T](zeros)
}

// AddScalar adds c to the series' constant term.
func (s *Series[T, C]) AddScalar(c C) error {
	key, err := s.unitKey()
	if err != nil {
		return err
	}
	return s.AddTerm(key, c, AddTermOptions{CheckZero: true})
}

// SubScalar subtracts c from the series' constant term.
func (s *Series[T, C]) SubScalar(c C) error {
	key, err := s.unitKey()
	if err != nil {
		return err
	}
	return s.AddTerm(key, c, AddTermOptions{Sign: true, CheckZero: true})
}

// Scale multiplies every term's coefficient by c in place. If c is zero
// the series becomes empty.
func (s *Series[T, C]) Scale(c C) {
	s.terms.MapCoeffs(func(v C) C { return s.r.Mul(v, c) })
	if s.r.IsZero(c) {
		s.terms.Clear()
	}
}

// DivScalar divides every term's coefficient by c in place.
func (s *Series[T, C]) DivScalar(c C) error {
	if s.r.IsZero(c) {
		return ring.ErrZeroDivision
	}
	var firstErr error
	s.terms.MapCoeffs(func(v C) C {
		q, err := s.r.Div(v, c)
		if err != nil && firstErr == nil {
			firstErr = err
		}
		return q
	})
	return firstErr
}

// Add returns a new series holding self + other, merging symbol sets as
// needed.
func (s *Series[T, C]) Add(other *Series[T, C]) (*Series[T, C], error) {
	return s.combine(other, false)
}

// Sub returns a new series holding self - other, merging symbol sets as
// needed.
func (s *Series[T, C]) Sub(other *Series[T, C]) (*Series[T, C], error) {
	return s.combine(other, true)
}

func (s *Series[T, C]) combine(other *Series[T, C], negateOther bool) (*Series[T, C], error) {
	merged, mapA, mapB := symbolset.Merge(s.symbols, other.symbols)
	result := New[T, C](merged, s.r)

	var rangeErr error
	s.Range(func(key monomial.Monomial[T], coeff C) bool {
		remapped, err := key.MergeSymbols(merged.Size(), mapA.NewIndexOf)
		if err != nil {
			rangeErr = err
			return false
		}
		if err := result.AddTerm(remapped, coeff, AddTermOptions{AssumeUnique: true}); err != nil {
			rangeErr = err
			return false
		}
		return true
	})
	if rangeErr != nil {
		return nil, rangeErr
	}

	other.Range(func(key monomial.Monomial[T], coeff C) bool {
		remapped, err := key.MergeSymbols(merged.Size(), mapB.NewIndexOf)
		if err != nil {
			rangeErr = err
			return false
		}
		if err := result.AddTerm(remapped, coeff, AddTermOptions{Sign: negateOther, CheckZero: true}); err != nil {
			rangeErr = err
			return false
		}
		return true
	})
	if rangeErr != nil {
		return nil, rangeErr
	}
	return result, nil
}

// ToCoefficient converts a single-term, unit-monomial-keyed series to its
// bare coefficient. An empty series converts to the ring's zero. Any other
// shape (more than one term, or a single term keyed by a non-unit
// monomial) is not convertible: the source's reported
// bug was silently truncating such series to their first term's
// coefficient regardless of its key.
func (s *Series[T, C]) ToCoefficient() (C, error) {
	var zero C
	if s.NumTerms() == 0 {
		return s.r.Zero(), nil
	}
	if s.NumTerms() != 1 {
		return zero, fmt.Errorf("%w: series has %d terms, want exactly 1", ErrIncompatible, s.NumTerms())
	}
	var coeff C
	var key monomial.Monomial[T]
	s.Range(func(k monomial.Monomial[T], c C) bool {
		key, coeff = k, c
		return false
	})
	if !key.IsUnit() {
		return zero, fmt.Errorf("%w: single term is not keyed by the unit monomial", ErrIncompatible)
	}
	return coeff, nil
}
