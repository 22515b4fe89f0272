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

// Package monomial implements the dynamic packed monomial (DPM): an
// exponent vector whose components are Kronecker-packed into one or more
// machine words of type T via kpack. A monomial wider than kpack.SMax[T]()
// symbols simply uses more than one packed word ("chunks"); the common,
// narrow case stays a single word.
//
// Packing turns monomial multiplication into plain component-wise integer
// addition: since pack(u) + pack(v) = pack(u+v) for a Kronecker encoding,
// Mul never unpacks its operands. Every other operation that needs the
// individual exponents (degree, differentiation, substitution, trimming)
// does pay the unpack cost.
package monomial

import (
	"errors"
	"fmt"
	"math"
	"math/big"

	"github.com/obake-go/obake/bignum"
	"github.com/obake-go/obake/kpack"
)

// ErrIncompatible is returned when two monomials do not share the same
// number of symbols (the caller merged symbol sets incorrectly upstream).
var ErrIncompatible = errors.New("monomial: incompatible symbol counts")

// ErrSymbolIndex is returned when a symbol index falls outside [0, nvars).
var ErrSymbolIndex = errors.New("monomial: symbol index out of range")

// ErrDomain covers operations that are mathematically undefined for the
// monomial's current exponents, such as integrating x^-1.
var ErrDomain = errors.New("monomial: operation undefined for this exponent")

// ErrInvalidArgument covers arguments that fail a required conversion,
// such as a Pow exponent that does not fit the machine-integer domain
// this monomial's component type operates over.
var ErrInvalidArgument = errors.New("monomial: invalid argument")

// ChunkSize returns the number of exponents packed into a single word of
// type T.
func ChunkSize[T kpack.Packable]() int {
	return kpack.SMax[T]()
}

// Monomial is an exponent vector over nvars symbols, stored as a sequence
// of Kronecker-packed chunks of type T.
type Monomial[T kpack.Packable] struct {
	nvars  int
	packed []T
}

func numChunks(nvars, chunkSize int) int {
	if nvars == 0 {
		return 0
	}
	return (nvars + chunkSize - 1) / chunkSize
}

// chunkSizes returns the packed-size (number of live components) of each
// chunk: chunkSize for every chunk but the last, which may be partial.
func chunkSizes(nvars, chunkSize int) []int {
	n := numChunks(nvars, chunkSize)
	sizes := make([]int, n)
	remaining := nvars
	for i := 0; i < n; i++ {
		if remaining >= chunkSize {
			sizes[i] = chunkSize
			remaining -= chunkSize
		} else {
			sizes[i] = remaining
			remaining = 0
		}
	}
	return sizes
}

// New packs exps (one exponent per symbol) into a Monomial over len(exps)
// symbols.
func New[T kpack.Packable](exps []T) (Monomial[T], error) {
	nvars := len(exps)
	chunkSize := ChunkSize[T]()
	sizes := chunkSizes(nvars, chunkSize)
	packed := make([]T, len(sizes))

	off := 0
	for i, sz := range sizes {
		v, err := kpack.Pack[T](sz, exps[off:off+sz])
		if err != nil {
			return Monomial[T]{}, fmt.Errorf("monomial: packing chunk %d: %w", i, err)
		}
		packed[i] = v
		off += sz
	}
	return Monomial[T]{nvars: nvars, packed: packed}, nil
}

// FromPacked wraps already packed chunks as a Monomial over nvars symbols.
// Callers must ensure the chunks were produced consistently with
// chunkSizes(nvars, ChunkSize[T]()); the chunks are copied as given,
// without a round trip through unpacked exponents.
func FromPacked[T kpack.Packable](nvars int, packed []T) Monomial[T] {
	cp := make([]T, len(packed))
	copy(cp, packed)
	return Monomial[T]{nvars: nvars, packed: cp}
}

// NVars reports the number of symbols this monomial carries an exponent
// for.
func (m Monomial[T]) NVars() int { return m.nvars }

// Packed returns the underlying packed chunks. The caller must not mutate
// the returned slice.
func (m Monomial[T]) Packed() []T { return m.packed }

// Exponents unpacks the full exponent vector.
func (m Monomial[T]) Exponents() ([]T, error) {
	chunkSize := ChunkSize[T]()
	sizes := chunkSizes(m.nvars, chunkSize)
	out := make([]T, 0, m.nvars)
	for i, sz := range sizes {
		vals, err := kpack.Unpack[T](m.packed[i], sz)
		if err != nil {
			return nil, fmt.Errorf("monomial: unpacking chunk %d: %w", i, err)
		}
		out = append(out, vals...)
	}
	return out, nil
}

// Compatible reports whether m and other share the same number of symbols,
// the precondition Mul and Equal both require.
func (m Monomial[T]) Compatible(other Monomial[T]) bool {
	return m.nvars == other.nvars
}

// Equal reports exact equality: same symbol count and identical packed
// chunks.
func (m Monomial[T]) Equal(other Monomial[T]) bool {
	if !m.Compatible(other) {
		return false
	}
	for i := range m.packed {
		if m.packed[i] != other.packed[i] {
			return false
		}
	}
	return true
}

// IsUnit reports whether every exponent is zero.
func (m Monomial[T]) IsUnit() bool {
	var zero T
	for _, c := range m.packed {
		if c != zero {
			return false
		}
	}
	return true
}

// Hash returns a homomorphic hash: Hash(a.Mul(b)) == Hash(a) + Hash(b)
// (mod 2^64), because the packed chunk values themselves add linearly
// under monomial multiplication. Used by segtable as the bucketing key the
// parallel multiplier exploits to predict a product's bucket without
// materialising it.
func (m Monomial[T]) Hash() uint64 {
	var h uint64
	for _, c := range m.packed {
		h += chunkBits(c)
	}
	return h
}

func chunkBits[T kpack.Packable](c T) uint64 {
	switch v := any(c).(type) {
	case int32:
		return uint64(int64(v))
	case uint32:
		return uint64(v)
	case int64:
		return uint64(v)
	case uint64:
		return v
	default:
		panic("monomial: unsupported packable type")
	}
}

// Mul returns the product monomial (exponent-wise sum), without ever
// unpacking either operand: pack(u)+pack(v) = pack(u+v) for a Kronecker
// encoding as long as no component leaves its range. Mul unpacks the
// summed chunks once and fails if a chunk falls outside kpack's packed
// range; a component that passes its own limit while the chunk stays in
// range carries into its neighbour undetected. RangeOverflowCheck is the
// check that rules that out before a multiplication.
func (m Monomial[T]) Mul(other Monomial[T]) (Monomial[T], error) {
	if !m.Compatible(other) {
		return Monomial[T]{}, ErrIncompatible
	}
	packed := make([]T, len(m.packed))
	for i := range packed {
		packed[i] = m.packed[i] + other.packed[i]
	}
	result := Monomial[T]{nvars: m.nvars, packed: packed}
	if _, err := result.Exponents(); err != nil {
		return Monomial[T]{}, fmt.Errorf("monomial: product overflowed a component: %w", err)
	}
	return result, nil
}

// KeyDegree returns the total degree, the sum of all exponents.
func (m Monomial[T]) KeyDegree() (T, error) {
	exps, err := m.Exponents()
	if err != nil {
		return 0, err
	}
	var deg T
	for _, e := range exps {
		deg += e
	}
	return deg, nil
}

// PDegree returns the partial degree over the given symbol indices only.
func (m Monomial[T]) PDegree(indices []int) (T, error) {
	exps, err := m.Exponents()
	if err != nil {
		return 0, err
	}
	var deg T
	for _, idx := range indices {
		if idx < 0 || idx >= m.nvars {
			return 0, fmt.Errorf("%w: %d", ErrSymbolIndex, idx)
		}
		deg += exps[idx]
	}
	return deg, nil
}

// MergeSymbols expands m to a wider symbol set by inserting zero exponents
// at the positions newIndexOf does not reference directly: newIndexOf[i]
// gives, for each of m's original symbols i, its index in the merged set;
// every other position of the merged vector is filled with zero.
func (m Monomial[T]) MergeSymbols(newNVars int, newIndexOf []int) (Monomial[T], error) {
	if len(newIndexOf) != m.nvars {
		return Monomial[T]{}, fmt.Errorf("%w: newIndexOf has %d entries, monomial has %d symbols", ErrIncompatible, len(newIndexOf), m.nvars)
	}
	exps, err := m.Exponents()
	if err != nil {
		return Monomial[T]{}, err
	}
	merged := make([]T, newNVars)
	for i, pos := range newIndexOf {
		if pos < 0 || pos >= newNVars {
			return Monomial[T]{}, fmt.Errorf("%w: %d", ErrSymbolIndex, pos)
		}
		merged[pos] = exps[i]
	}
	return New[T](merged)
}

func bignumOf[T kpack.Packable](v T) bignum.Int {
	switch x := any(v).(type) {
	case int32:
		return bignum.FromInt64(int64(x))
	case uint32:
		return bignum.FromUint64(uint64(x))
	case int64:
		return bignum.FromInt64(x)
	case uint64:
		return bignum.FromUint64(x)
	default:
		panic("monomial: unsupported packable type")
	}
}

// Pow scales every exponent by n, the monomial analogue of raising a term
// to the n-th power. n is an arbitrary-precision integer rather than T
// itself: n first has to prove it converts to this monomial's own
// machine-integer domain (ErrInvalidArgument if it doesn't), and only then
// does the scaling run through bignum, so an exponent-times-power product
// that would silently wrap around T's native range is caught as
// kpack.ErrOverflow instead of producing a wrong, in-range-looking result
// that New's own component check would then wave through.
func (m Monomial[T]) Pow(n bignum.Int) (Monomial[T], error) {
	exps, err := m.Exponents()
	if err != nil {
		return Monomial[T]{}, err
	}
	signed := isSignedPackable[T]()
	if signed {
		if _, ok := n.Int64(); !ok {
			return Monomial[T]{}, fmt.Errorf("%w: exponent %s cannot be converted into an integral value for this monomial's component type", ErrInvalidArgument, n.String())
		}
	} else {
		if _, ok := n.Uint64(); !ok {
			return Monomial[T]{}, fmt.Errorf("%w: exponent %s cannot be converted into an integral value for this monomial's component type", ErrInvalidArgument, n.String())
		}
	}

	minRange, maxRange := representableRange[T]()
	minI, maxI := bignum.FromBigInt(minRange), bignum.FromBigInt(maxRange)

	scaled := make([]T, len(exps))
	for i, e := range exps {
		prod := bignum.Mul(bignumOf(e), n)
		if bignum.Cmp(prod, minI) < 0 || bignum.Cmp(prod, maxI) > 0 {
			return Monomial[T]{}, fmt.Errorf("%w: exponent %v scaled by %s overflows", kpack.ErrOverflow, e, n.String())
		}
		if signed {
			v, _ := prod.Int64()
			scaled[i] = T(v)
		} else {
			v, _ := prod.Uint64()
			scaled[i] = T(v)
		}
	}
	return New[T](scaled)
}

func isSignedPackable[T kpack.Packable]() bool {
	var zero T
	switch any(zero).(type) {
	case int32, int64:
		return true
	default:
		return false
	}
}

// isNegativeOne reports whether v is exactly -1. Unsigned T can never
// hold -1, so this only ever matches for signed exponents.
func isNegativeOne[T kpack.Packable](v T) bool {
	switch x := any(v).(type) {
	case int32:
		return x == -1
	case int64:
		return x == -1
	default:
		return false
	}
}

// Diff differentiates m with respect to symbol idx, returning the
// resulting exponent coefficient (the pre-differentiation exponent) and
// the monomial with that exponent decremented by one. If the exponent was
// already zero, coeff is zero and result equals m (the caller's addTerm
// will drop a zero-coefficient term).
func (m Monomial[T]) Diff(idx int) (coeff T, result Monomial[T], err error) {
	exps, err := m.Exponents()
	if err != nil {
		return 0, Monomial[T]{}, err
	}
	if idx < 0 || idx >= m.nvars {
		return 0, Monomial[T]{}, fmt.Errorf("%w: %d", ErrSymbolIndex, idx)
	}
	coeff = exps[idx]
	if coeff == 0 {
		return 0, m, nil
	}
	exps[idx]--
	result, err = New[T](exps)
	return coeff, result, err
}

// Integrate integrates m with respect to symbol idx, returning the
// resulting monomial and the new exponent (old exponent + 1), which the
// caller must divide the term's coefficient by.
func (m Monomial[T]) Integrate(idx int) (result Monomial[T], newExponent T, err error) {
	exps, err := m.Exponents()
	if err != nil {
		return Monomial[T]{}, 0, err
	}
	if idx < 0 || idx >= m.nvars {
		return Monomial[T]{}, 0, fmt.Errorf("%w: %d", ErrSymbolIndex, idx)
	}
	if isNegativeOne(exps[idx]) {
		return Monomial[T]{}, 0, fmt.Errorf("%w: integrating symbol %d whose exponent is -1 would divide by zero", ErrDomain, idx)
	}
	exps[idx]++
	newExponent = exps[idx]
	result, err = New[T](exps)
	return result, newExponent, err
}

// Subs substitutes symbol idx away: it returns the exponent that was
// removed (so the caller can raise the substitution value to that power
// and fold it into the term's coefficient) and the monomial with that
// symbol's exponent zeroed out (a Trim candidate, not yet shrunk).
func (m Monomial[T]) Subs(idx int) (exponent T, result Monomial[T], err error) {
	exps, err := m.Exponents()
	if err != nil {
		return 0, Monomial[T]{}, err
	}
	if idx < 0 || idx >= m.nvars {
		return 0, Monomial[T]{}, fmt.Errorf("%w: %d", ErrSymbolIndex, idx)
	}
	exponent = exps[idx]
	exps[idx] = 0
	result, err = New[T](exps)
	return exponent, result, err
}

// TrimIdentify returns, for each index in candidates, whether every
// exponent at that symbol is zero across all of monomials. Used to decide
// which symbols a whole series can drop.
func TrimIdentify[T kpack.Packable](monomials []Monomial[T], candidates []int) ([]bool, error) {
	trimmable := make([]bool, len(candidates))
	for i := range trimmable {
		trimmable[i] = true
	}
	for _, m := range monomials {
		exps, err := m.Exponents()
		if err != nil {
			return nil, err
		}
		for i, idx := range candidates {
			if !trimmable[i] {
				continue
			}
			if idx < 0 || idx >= m.nvars {
				return nil, fmt.Errorf("%w: %d", ErrSymbolIndex, idx)
			}
			if exps[idx] != 0 {
				trimmable[i] = false
			}
		}
	}
	return trimmable, nil
}

// Trim removes the symbols whose keep[i] is false, shrinking the exponent
// vector accordingly.
func (m Monomial[T]) Trim(keep []bool) (Monomial[T], error) {
	if len(keep) != m.nvars {
		return Monomial[T]{}, fmt.Errorf("%w: keep mask has %d entries, monomial has %d symbols", ErrIncompatible, len(keep), m.nvars)
	}
	exps, err := m.Exponents()
	if err != nil {
		return Monomial[T]{}, err
	}
	kept := make([]T, 0, m.nvars)
	for i, e := range exps {
		if keep[i] {
			kept = append(kept, e)
		}
	}
	return New[T](kept)
}

// RangeOverflowCheckThreshold is the monomial count above which
// RangeOverflowCheck's per-range hull reduction switches from a
// sequential scan to a fan-out over goroutines: per-goroutine dispatch
// only pays for itself once there is enough work to amortise it.
const RangeOverflowCheckThreshold = 5000

// componentHull is the per-component (min, max) pair observed across a
// range of monomials: the summary range_overflow_check reduces one whole
// operand range to, before combining it with the other operand's hull.
type componentHull[T kpack.Packable] struct {
	min, max []T
}

func (h componentHull[T]) combine(o componentHull[T]) componentHull[T] {
	if len(h.min) == 0 {
		return o
	}
	if len(o.min) == 0 {
		return h
	}
	out := componentHull[T]{min: make([]T, len(h.min)), max: make([]T, len(h.max))}
	for i := range out.min {
		out.min[i] = h.min[i]
		if o.min[i] < out.min[i] {
			out.min[i] = o.min[i]
		}
		out.max[i] = h.max[i]
		if o.max[i] > out.max[i] {
			out.max[i] = o.max[i]
		}
	}
	return out
}

func hullOf[T kpack.Packable](monomials []Monomial[T]) (componentHull[T], error) {
	if len(monomials) == 0 {
		return componentHull[T]{}, nil
	}
	nvars := monomials[0].nvars
	first, err := monomials[0].Exponents()
	if err != nil {
		return componentHull[T]{}, err
	}
	h := componentHull[T]{min: append([]T(nil), first...), max: append([]T(nil), first...)}
	for _, m := range monomials[1:] {
		exps, err := m.Exponents()
		if err != nil {
			return componentHull[T]{}, err
		}
		for i := 0; i < nvars; i++ {
			if exps[i] < h.min[i] {
				h.min[i] = exps[i]
			}
			if exps[i] > h.max[i] {
				h.max[i] = exps[i]
			}
		}
	}
	return h, nil
}

// computeHull reduces monomials to its componentHull, fanning out across
// goroutines above RangeOverflowCheckThreshold monomials exactly as
// RangeOverflowCheck itself used to do directly; the per-goroutine
// partial hulls are combined with componentHull.combine, an associative
// reduction.
func computeHull[T kpack.Packable](monomials []Monomial[T]) (componentHull[T], error) {
	if len(monomials) <= RangeOverflowCheckThreshold {
		return hullOf(monomials)
	}
	return parallelHull(monomials)
}

func toBig[T kpack.Packable](v T) *big.Int {
	switch x := any(v).(type) {
	case int32:
		return big.NewInt(int64(x))
	case uint32:
		return big.NewInt(int64(x))
	case int64:
		return big.NewInt(x)
	case uint64:
		return new(big.Int).SetUint64(x)
	default:
		panic("monomial: unsupported packable type")
	}
}

func sumBig[T kpack.Packable](vals []T) *big.Int {
	sum := new(big.Int)
	for _, v := range vals {
		sum.Add(sum, toBig(v))
	}
	return sum
}

// representableRange returns T's own [min, max] as arbitrary-precision
// bounds, the range a degree accumulation (plain T addition, as
// KeyDegree performs) must stay inside to avoid overflowing.
func representableRange[T kpack.Packable]() (minV, maxV *big.Int) {
	var zero T
	switch any(zero).(type) {
	case int32:
		return big.NewInt(math.MinInt32), big.NewInt(math.MaxInt32)
	case uint32:
		return big.NewInt(0), big.NewInt(math.MaxUint32)
	case int64:
		return big.NewInt(math.MinInt64), big.NewInt(math.MaxInt64)
	case uint64:
		return big.NewInt(0), new(big.Int).SetUint64(math.MaxUint64)
	default:
		panic("monomial: unsupported packable type")
	}
}

// RangeOverflowCheck reports whether multiplying every monomial of r1 by
// every monomial of r2 (as Mul would) is guaranteed safe, without
// materialising a single product: per §4.C it reduces each range to a
// per-component (min, max) hull — in parallel above
// RangeOverflowCheckThreshold monomials per range — then checks the
// worst-case componentwise sum against kpack's per-chunk component
// limits and the worst-case degree sum against T's own representable
// range. A false result means the caller's multiplier must not proceed;
// it does not itself mutate or unpack every product.
func RangeOverflowCheck[T kpack.Packable](r1, r2 []Monomial[T]) (bool, error) {
	if len(r1) == 0 || len(r2) == 0 {
		return true, nil
	}
	if r1[0].nvars != r2[0].nvars {
		return false, ErrIncompatible
	}
	nvars := r1[0].nvars

	h1, err := computeHull(r1)
	if err != nil {
		return false, err
	}
	h2, err := computeHull(r2)
	if err != nil {
		return false, err
	}

	chunkSize := ChunkSize[T]()
	sizes := chunkSizes(nvars, chunkSize)
	off := 0
	for _, sz := range sizes {
		limMin, limMax := kpack.Lims[T](sz)
		signed := limMin != 0
		for i := off; i < off+sz; i++ {
			if h2.max[i] > limMax-h1.max[i] {
				return false, nil
			}
			if signed && h2.min[i] < limMin-h1.min[i] {
				return false, nil
			}
		}
		off += sz
	}

	minRange, maxRange := representableRange[T]()
	totalMax := new(big.Int).Add(sumBig(h1.max), sumBig(h2.max))
	totalMin := new(big.Int).Add(sumBig(h1.min), sumBig(h2.min))
	if totalMax.Cmp(maxRange) > 0 || totalMin.Cmp(minRange) < 0 {
		return false, nil
	}
	return true, nil
}
