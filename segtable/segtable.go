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

// Package segtable implements the segmented hash table a series' terms
// live in: 2^L independent segments, each guarded by its own mutex, keyed
// by monomial.Monomial.Hash(). The parallel multiplier relies on the
// homomorphic hash to predict which segment a product term lands in
// without materialising it, so it can dispatch bucket pairs to
// independent goroutines with no shared-segment contention.
//
// Each segment is a native Go map rather than an open-addressed array:
// Go's builtin map already amortises the probing the source's
// open-addressing scheme hand-rolls, so segmenting a map gives the same
// concurrency property (independent locks per shard) without
// reimplementing probing.
package segtable

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/obake-go/obake/kpack"
	"github.com/obake-go/obake/monomial"
	"github.com/obake-go/obake/ring"
)

// ErrOverflow is returned when an insertion would push a table past its
// configured maximum size.
var ErrOverflow = errors.New("segtable: table size limit exceeded")

// ErrNotFound is returned by Erase when the key is absent.
var ErrNotFound = errors.New("segtable: key not found")

type entry[T kpack.Packable, C any] struct {
	key   monomial.Monomial[T]
	coeff C
}

type segment[T kpack.Packable, C any] struct {
	mu      sync.Mutex
	entries map[string]*entry[T, C]
}

// Table is a segmented hash table mapping monomials to ring coefficients.
type Table[T kpack.Packable, C any] struct {
	logSegments int
	mask        uint64
	segments    []*segment[T, C]
	maxSize     int
	size        int64
	r           ring.Ring[C]
}

// New creates a table with 2^logSegments segments. maxSize <= 0 means
// unbounded.
func New[T kpack.Packable, C any](logSegments int, maxSize int, r ring.Ring[C]) *Table[T, C] {
	if logSegments < 0 {
		logSegments = 0
	}
	n := 1 << logSegments
	segs := make([]*segment[T, C], n)
	for i := range segs {
		segs[i] = &segment[T, C]{entries: make(map[string]*entry[T, C])}
	}
	return &Table[T, C]{
		logSegments: logSegments,
		mask:        uint64(n - 1),
		segments:    segs,
		maxSize:     maxSize,
		r:           r,
	}
}

// NumSegments returns 2^L, the number of independent segments.
func (t *Table[T, C]) NumSegments() int { return len(t.segments) }

func keyString[T kpack.Packable](m monomial.Monomial[T]) string {
	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, int64(m.NVars()))
	for _, c := range m.Packed() {
		switch v := any(c).(type) {
		case int32:
			binary.Write(&buf, binary.LittleEndian, v)
		case uint32:
			binary.Write(&buf, binary.LittleEndian, v)
		case int64:
			binary.Write(&buf, binary.LittleEndian, v)
		case uint64:
			binary.Write(&buf, binary.LittleEndian, v)
		}
	}
	return buf.String()
}

func (t *Table[T, C]) segmentFor(key monomial.Monomial[T]) *segment[T, C] {
	return t.segments[key.Hash()&t.mask]
}

// SegmentIndex returns the segment index a key's hash maps to, exposed so
// the parallel multiplier can precompute bucket assignment without
// touching the table.
func (t *Table[T, C]) SegmentIndex(key monomial.Monomial[T]) int {
	return int(key.Hash() & t.mask)
}

// Lookup returns the coefficient stored for key, if any.
func (t *Table[T, C]) Lookup(key monomial.Monomial[T]) (C, bool) {
	seg := t.segmentFor(key)
	seg.mu.Lock()
	defer seg.mu.Unlock()
	e, ok := seg.entries[keyString(key)]
	if !ok {
		var zero C
		return zero, false
	}
	return e.coeff, true
}

// InsertOrAccumulate adds coeff to the existing entry for key (via
// t's ring), or inserts a fresh entry if key is new. It returns
// ErrOverflow if key's own segment has a positive maxSize and is already
// full — the cap is per sub-table, matching the source's per-segment
// size enforcement, not a global total across all 2^L segments.
func (t *Table[T, C]) InsertOrAccumulate(key monomial.Monomial[T], coeff C) error {
	seg := t.segmentFor(key)
	ks := keyString(key)

	seg.mu.Lock()
	defer seg.mu.Unlock()

	if e, ok := seg.entries[ks]; ok {
		e.coeff = t.r.Add(e.coeff, coeff)
		return nil
	}

	if t.maxSize > 0 && len(seg.entries)+1 > t.maxSize {
		return fmt.Errorf("%w: limit is %d per segment", ErrOverflow, t.maxSize)
	}
	seg.entries[ks] = &entry[T, C]{key: key, coeff: coeff}
	t.addSize(1)
	return nil
}

// InsertOrAccumulateLazy is InsertOrAccumulate's lazy-product sibling: it
// defers computing a*b until it knows which case applies, so the product
// is materialised once via the ring's Mul on a fresh key, or fused
// directly into the existing accumulator via the ring's FMA on a
// duplicate — the table itself never builds a product value it then has
// to add on top of, matching the "lazy coefficient product" design
// §4.G/§4.H/§9 describe. A ring whose FMA is DefaultFMA (Rational) still
// computes the product inside that FMA.
func (t *Table[T, C]) InsertOrAccumulateLazy(key monomial.Monomial[T], a, b C) error {
	seg := t.segmentFor(key)
	ks := keyString(key)

	seg.mu.Lock()
	defer seg.mu.Unlock()

	if e, ok := seg.entries[ks]; ok {
		e.coeff = t.r.FMA(e.coeff, a, b)
		return nil
	}

	if t.maxSize > 0 && len(seg.entries)+1 > t.maxSize {
		return fmt.Errorf("%w: limit is %d per segment", ErrOverflow, t.maxSize)
	}
	seg.entries[ks] = &entry[T, C]{key: key, coeff: t.r.Mul(a, b)}
	t.addSize(1)
	return nil
}

// Erase removes the entry for key, returning ErrNotFound if absent.
func (t *Table[T, C]) Erase(key monomial.Monomial[T]) error {
	seg := t.segmentFor(key)
	ks := keyString(key)

	seg.mu.Lock()
	defer seg.mu.Unlock()

	if _, ok := seg.entries[ks]; !ok {
		return ErrNotFound
	}
	delete(seg.entries, ks)
	t.addSize(-1)
	return nil
}

// Size returns the total number of entries across all segments.
func (t *Table[T, C]) Size() int {
	return int(t.sizeUnsafe())
}

func (t *Table[T, C]) sizeUnsafe() int64 {
	return atomic.LoadInt64(&t.size)
}

func (t *Table[T, C]) addSize(delta int64) {
	atomic.AddInt64(&t.size, delta)
}

// Clear empties every segment. Used on the parallel multiplier's error
// path: a bucket-pair failure must not leave a half-populated table
// behind for the caller to inspect.
func (t *Table[T, C]) Clear() {
	for _, seg := range t.segments {
		seg.mu.Lock()
		seg.entries = make(map[string]*entry[T, C])
		seg.mu.Unlock()
	}
	atomic.StoreInt64(&t.size, 0)
}

// MapCoeffs replaces every entry's coefficient with fn(coefficient), in
// place, under each segment's lock.
func (t *Table[T, C]) MapCoeffs(fn func(C) C) {
	for _, seg := range t.segments {
		seg.mu.Lock()
		for _, e := range seg.entries {
			e.coeff = fn(e.coeff)
		}
		seg.mu.Unlock()
	}
}

// Range calls fn for every entry in the table. fn must not call back into
// the table while iterating.
func (t *Table[T, C]) Range(fn func(key monomial.Monomial[T], coeff C) bool) {
	for _, seg := range t.segments {
		seg.mu.Lock()
		for _, e := range seg.entries {
			if !fn(e.key, e.coeff) {
				seg.mu.Unlock()
				return
			}
		}
		seg.mu.Unlock()
	}
}
