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

package polymul

import (
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/obake-go/obake/bignum"
	"github.com/obake-go/obake/kpack"
	"github.com/obake-go/obake/monomial"
	"github.com/obake-go/obake/ring"
	"github.com/obake-go/obake/series"
	"github.com/obake-go/obake/symbolset"
	"github.com/obake-go/obake/truncate"
)

func mono(t *testing.T, exps ...int32) monomial.Monomial[int32] {
	t.Helper()
	m, err := monomial.New[int32](exps)
	require.NoError(t, err)
	return m
}

// xyOperands builds (x+y) and (x-y) over {x, y}: S1.
func xyOperands(t *testing.T) (*series.Series[int32, *big.Rat], *series.Series[int32, *big.Rat]) {
	t.Helper()
	r := ring.Rational{}
	ss := symbolset.New("x", "y")

	a := series.New[int32, *big.Rat](ss, r)
	require.NoError(t, a.AddTerm(mono(t, 1, 0), ring.NewRat(1, 1), series.AddTermOptions{CheckZero: true}))
	require.NoError(t, a.AddTerm(mono(t, 0, 1), ring.NewRat(1, 1), series.AddTermOptions{CheckZero: true}))

	b := series.New[int32, *big.Rat](ss, r)
	require.NoError(t, b.AddTerm(mono(t, 1, 0), ring.NewRat(1, 1), series.AddTermOptions{CheckZero: true}))
	require.NoError(t, b.AddTerm(mono(t, 0, 1), ring.NewRat(-1, 1), series.AddTermOptions{CheckZero: true}))
	return a, b
}

func terms(t *testing.T, s *series.Series[int32, *big.Rat]) map[string]string {
	t.Helper()
	out := map[string]string{}
	s.Range(func(key monomial.Monomial[int32], coeff *big.Rat) bool {
		exps, err := key.Exponents()
		require.NoError(t, err)
		out[ratKeyString(exps)] = coeff.RatString()
		return true
	})
	return out
}

func ratKeyString(exps []int32) string {
	s := ""
	for _, e := range exps {
		s += string(rune('a' + e))
	}
	return s
}

func TestSimpleMultiplyS1(t *testing.T) {
	a, b := xyOperands(t)
	prod, err := Simple(a, b, nil)
	require.NoError(t, err)
	require.Equal(t, 2, prod.NumTerms())

	x2, err := monomial.New[int32]([]int32{2, 0})
	require.NoError(t, err)
	y2, err := monomial.New[int32]([]int32{0, 2})
	require.NoError(t, err)

	x2Coeff, ok := lookupPub(t, prod, x2)
	require.True(t, ok)
	require.Equal(t, "1", x2Coeff.RatString())

	y2Coeff, ok := lookupPub(t, prod, y2)
	require.True(t, ok)
	require.Equal(t, "-1", y2Coeff.RatString())
}

func lookupPub(t *testing.T, s *series.Series[int32, *big.Rat], key monomial.Monomial[int32]) (*big.Rat, bool) {
	t.Helper()
	var found *big.Rat
	var ok bool
	s.Range(func(k monomial.Monomial[int32], c *big.Rat) bool {
		if k.Equal(key) {
			found, ok = c, true
			return false
		}
		return true
	})
	return found, ok
}

func TestSimpleAndParallelAgree(t *testing.T) {
	a, b := xyOperands(t)
	simple, err := Simple(a, b, nil)
	require.NoError(t, err)
	parallel, err := Parallel(a, b, nil)
	require.NoError(t, err)

	require.Empty(t, cmp.Diff(terms(t, simple), terms(t, parallel)))
}

func TestTruncatedMatchesFilteredUntruncated(t *testing.T) {
	a, b := xyOperands(t)
	full, err := Simple(a, b, nil)
	require.NoError(t, err)

	policy := truncate.Total[int32](1)
	truncated, err := Simple(a, b, &policy)
	require.NoError(t, err)

	wantTerms := map[string]string{}
	full.Range(func(key monomial.Monomial[int32], coeff *big.Rat) bool {
		ok, err := policy.Allows(key)
		require.NoError(t, err)
		if ok {
			exps, _ := key.Exponents()
			wantTerms[ratKeyString(exps)] = coeff.RatString()
		}
		return true
	})

	require.Empty(t, cmp.Diff(wantTerms, terms(t, truncated)))
}

func TestSelectPicksSimpleForSmallOperands(t *testing.T) {
	a, b := xyOperands(t)
	prod, err := Select(a, b, nil)
	require.NoError(t, err)
	require.Equal(t, 2, prod.NumTerms())
}

// TestS2PartialDegreeTruncation is scenario S2 from spec.md §8:
// (z*x + y)(x - y - 1) over {x, y, z}, truncated to partial degree <= 2
// over {x, z}.
func TestS2PartialDegreeTruncation(t *testing.T) {
	r := ring.Rational{}
	ss := symbolset.New("x", "y", "z")

	a := series.New[int32, *big.Rat](ss, r)
	require.NoError(t, a.AddTerm(mono(t, 1, 0, 1), ring.NewRat(1, 1), series.AddTermOptions{CheckZero: true})) // z*x
	require.NoError(t, a.AddTerm(mono(t, 0, 1, 0), ring.NewRat(1, 1), series.AddTermOptions{CheckZero: true})) // y

	b := series.New[int32, *big.Rat](ss, r)
	require.NoError(t, b.AddTerm(mono(t, 1, 0, 0), ring.NewRat(1, 1), series.AddTermOptions{CheckZero: true}))  // x
	require.NoError(t, b.AddTerm(mono(t, 0, 1, 0), ring.NewRat(-1, 1), series.AddTermOptions{CheckZero: true})) // -y
	require.NoError(t, b.AddTerm(mono(t, 0, 0, 0), ring.NewRat(-1, 1), series.AddTermOptions{CheckZero: true})) // -1

	full, err := Simple(a, b, nil)
	require.NoError(t, err)
	require.Equal(t, 6, full.NumTerms())

	xIdx, zIdx := ss.IndexOf("x"), ss.IndexOf("z")
	policy := truncate.Partial[int32](2, []int{xIdx, zIdx})
	truncated, err := Simple(a, b, &policy)
	require.NoError(t, err)

	// Per property 7 (truncated_mul(A,B,max_deg) == untruncated product
	// filtered to partial degree <= max_deg over {x,z}), -xyz's x+z degree
	// is 1+1=2, so it survives the <=2 bound alongside the other four.
	want := map[string]string{
		ratKeyString([]int32{1, 1, 1}): "-1", // -xyz
		ratKeyString([]int32{1, 1, 0}): "1",  // xy
		ratKeyString([]int32{0, 1, 0}): "-1", // -y
		ratKeyString([]int32{1, 0, 1}): "-1", // -zx
		ratKeyString([]int32{0, 2, 0}): "-1", // -y^2
	}
	require.Empty(t, cmp.Diff(want, terms(t, truncated)))

	parallelTruncated, err := Parallel(a, b, &policy)
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(want, terms(t, parallelTruncated)))
}

// TestChooseLNeverExceedsLMax is property 9 from spec.md §8: the chosen
// segment-count exponent never exceeds L_max regardless of how large the
// estimated term count is.
func TestChooseLNeverExceedsLMax(t *testing.T) {
	require.LessOrEqual(t, chooseL(^uint64(0)), LMax)
	require.LessOrEqual(t, chooseL(0), LMax)
	require.GreaterOrEqual(t, chooseL(0), 0)
}

// fgOperands builds f = 1 + x + y + 2z^2 + 3t^3 + 5u^5 and
// g = 1 + u + t + 2z^2 + 3y^3 + 5x^5 over {x, y, z, t, u}, the pair S3/S4
// from spec.md §8 are defined over.
func fgOperands(t *testing.T) (*series.Series[int32, *big.Rat], *series.Series[int32, *big.Rat]) {
	t.Helper()
	r := ring.Rational{}
	ss := symbolset.New("x", "y", "z", "t", "u")

	f := series.New[int32, *big.Rat](ss, r)
	require.NoError(t, f.AddTerm(mono(t, 0, 0, 0, 0, 0), ring.NewRat(1, 1), series.AddTermOptions{CheckZero: true}))
	require.NoError(t, f.AddTerm(mono(t, 1, 0, 0, 0, 0), ring.NewRat(1, 1), series.AddTermOptions{CheckZero: true}))
	require.NoError(t, f.AddTerm(mono(t, 0, 1, 0, 0, 0), ring.NewRat(1, 1), series.AddTermOptions{CheckZero: true}))
	require.NoError(t, f.AddTerm(mono(t, 0, 0, 2, 0, 0), ring.NewRat(2, 1), series.AddTermOptions{CheckZero: true}))
	require.NoError(t, f.AddTerm(mono(t, 0, 0, 0, 3, 0), ring.NewRat(3, 1), series.AddTermOptions{CheckZero: true}))
	require.NoError(t, f.AddTerm(mono(t, 0, 0, 0, 0, 5), ring.NewRat(5, 1), series.AddTermOptions{CheckZero: true}))

	g := series.New[int32, *big.Rat](ss, r)
	require.NoError(t, g.AddTerm(mono(t, 0, 0, 0, 0, 0), ring.NewRat(1, 1), series.AddTermOptions{CheckZero: true}))
	require.NoError(t, g.AddTerm(mono(t, 0, 0, 0, 0, 1), ring.NewRat(1, 1), series.AddTermOptions{CheckZero: true}))
	require.NoError(t, g.AddTerm(mono(t, 0, 0, 0, 1, 0), ring.NewRat(1, 1), series.AddTermOptions{CheckZero: true}))
	require.NoError(t, g.AddTerm(mono(t, 0, 0, 2, 0, 0), ring.NewRat(2, 1), series.AddTermOptions{CheckZero: true}))
	require.NoError(t, g.AddTerm(mono(t, 0, 3, 0, 0, 0), ring.NewRat(3, 1), series.AddTermOptions{CheckZero: true}))
	require.NoError(t, g.AddTerm(mono(t, 5, 0, 0, 0, 0), ring.NewRat(5, 1), series.AddTermOptions{CheckZero: true}))
	return f, g
}

// seriesPow raises s to the n-th power by exponentiation by squaring,
// routing every multiplication through Select so the large intermediate
// products S3/S4 produce pick whichever of Simple/Parallel fits their
// size.
func seriesPow(t *testing.T, s *series.Series[int32, *big.Rat], n int) *series.Series[int32, *big.Rat] {
	t.Helper()
	result := series.New[int32, *big.Rat](s.Symbols(), s.Ring())
	require.NoError(t, result.AddTerm(mono(t, 0, 0, 0, 0, 0), ring.NewRat(1, 1), series.AddTermOptions{CheckZero: true}))

	base := s
	for e := n; e > 0; e >>= 1 {
		if e&1 == 1 {
			next, err := Select(result, base, nil)
			require.NoError(t, err)
			result = next
		}
		if e > 1 {
			next, err := Select(base, base, nil)
			require.NoError(t, err)
			base = next
		}
	}
	return result
}

// TestS3AndS4LargeScaleProduct is scenarios S3 and S4 from spec.md §8:
// (f^10)*(g^10) must contain exactly 2 096 600 terms untruncated, and the
// same product truncated at total degree <= 50 must agree term-by-term
// with the untruncated result filtered by that same policy.
func TestS3AndS4LargeScaleProduct(t *testing.T) {
	f, g := fgOperands(t)
	f10 := seriesPow(t, f, 10)
	g10 := seriesPow(t, g, 10)

	full, err := Select(f10, g10, nil)
	require.NoError(t, err)
	require.Equal(t, 2096600, full.NumTerms())

	policy := truncate.Total[int32](50)
	truncated, err := Select(f10, g10, &policy)
	require.NoError(t, err)

	want := map[string]string{}
	full.Range(func(key monomial.Monomial[int32], coeff *big.Rat) bool {
		ok, err := policy.Allows(key)
		require.NoError(t, err)
		if ok {
			exps, _ := key.Exponents()
			want[ratKeyString(exps)] = coeff.RatString()
		}
		return true
	})
	require.Empty(t, cmp.Diff(want, terms(t, truncated)))
}

// TestS5MonomialPowScenario is scenario S5 from spec.md §8: pow scales
// every exponent of a DPM monomial, and squaring an operand already at its
// component's packable limit overflows rather than wrapping.
func TestS5MonomialPowScenario(t *testing.T) {
	m := mono(t, 1, 2, 3)
	p, err := m.Pow(bignum.FromInt64(2))
	require.NoError(t, err)
	exps, err := p.Exponents()
	require.NoError(t, err)
	require.Equal(t, []int32{2, 4, 6}, exps)

	_, max := kpack.Lims[int32](1)
	atLimit := mono(t, max)
	_, err = atLimit.Pow(bignum.FromInt64(2))
	require.ErrorIs(t, err, kpack.ErrOverflow)
}

// TestParallelOverflowLeavesNoPartialResult is property 10 from spec.md
// §8 (clear-on-throw), adapted to this port's actual fault surface: since
// Ring.Mul/FMA never themselves fail for Rational coefficients, the one
// real mid-multiplication fault this kernel can raise is a monomial
// component overflow. Checking it is caught before Parallel ever starts
// building a result, and that the caller never observes a non-nil,
// partially populated series on that path.
func TestParallelOverflowLeavesNoPartialResult(t *testing.T) {
	_, max := kpack.Lims[int32](1)

	r := ring.Rational{}
	ss := symbolset.New("x")
	a := series.New[int32, *big.Rat](ss, r)
	require.NoError(t, a.AddTerm(mono(t, max), ring.NewRat(1, 1), series.AddTermOptions{CheckZero: true}))
	b := series.New[int32, *big.Rat](ss, r)
	require.NoError(t, b.AddTerm(mono(t, max), ring.NewRat(1, 1), series.AddTermOptions{CheckZero: true}))

	prod, err := Parallel(a, b, nil)
	require.Error(t, err)
	require.Nil(t, prod)
}
