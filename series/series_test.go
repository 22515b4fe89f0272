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

package series

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/obake-go/obake/monomial"
	"github.com/obake-go/obake/ring"
	"github.com/obake-go/obake/symbolset"
)

func mono(t *testing.T, exps ...int32) monomial.Monomial[int32] {
	t.Helper()
	m, err := monomial.New[int32](exps)
	require.NoError(t, err)
	return m
}

func TestAddTermAccumulatesAndDropsZero(t *testing.T) {
	r := ring.Rational{}
	s := New[int32, *big.Rat](symbolset.New("x", "y"), r)

	k := mono(t, 1, 0)
	require.NoError(t, s.AddTerm(k, ring.NewRat(1, 1), AddTermOptions{CheckZero: true}))
	require.NoError(t, s.AddTerm(k, ring.NewRat(-1, 1), AddTermOptions{CheckZero: true}))
	require.Equal(t, 0, s.NumTerms())
}

func TestAddScalarAndToCoefficient(t *testing.T) {
	r := ring.Rational{}
	s := New[int32, *big.Rat](symbolset.New("x"), r)
	require.NoError(t, s.AddScalar(ring.NewRat(5, 1)))

	c, err := s.ToCoefficient()
	require.NoError(t, err)
	require.True(t, r.Equal(c, ring.NewRat(5, 1)))
}

func TestToCoefficientRejectsNonUnitKey(t *testing.T) {
	r := ring.Rational{}
	s := New[int32, *big.Rat](symbolset.New("x"), r)
	require.NoError(t, s.AddTerm(mono(t, 1), ring.NewRat(1, 1), AddTermOptions{CheckZero: true}))

	_, err := s.ToCoefficient()
	require.ErrorIs(t, err, ErrIncompatible)
}

func TestSubScalarCancelsConstantTerm(t *testing.T) {
	r := ring.Rational{}
	s := New[int32, *big.Rat](symbolset.New("x"), r)
	require.NoError(t, s.AddScalar(ring.NewRat(5, 1)))
	require.NoError(t, s.SubScalar(ring.NewRat(5, 1)))
	require.Equal(t, 0, s.NumTerms())
}

func TestScaleAndDivScalar(t *testing.T) {
	r := ring.Rational{}
	s := New[int32, *big.Rat](symbolset.New("x"), r)
	require.NoError(t, s.AddTerm(mono(t, 1), ring.NewRat(2, 1), AddTermOptions{CheckZero: true}))

	s.Scale(ring.NewRat(3, 1))
	var got *big.Rat
	s.Range(func(_ monomial.Monomial[int32], c *big.Rat) bool { got = c; return true })
	require.True(t, r.Equal(got, ring.NewRat(6, 1)))

	require.NoError(t, s.DivScalar(ring.NewRat(2, 1)))
	s.Range(func(_ monomial.Monomial[int32], c *big.Rat) bool { got = c; return true })
	require.True(t, r.Equal(got, ring.NewRat(3, 1)))
}

func TestAddMergesDisjointSymbolSets(t *testing.T) {
	r := ring.Rational{}
	a := New[int32, *big.Rat](symbolset.New("x"), r)
	require.NoError(t, a.AddTerm(mono(t, 2), ring.NewRat(1, 1), AddTermOptions{CheckZero: true}))

	b := New[int32, *big.Rat](symbolset.New("y"), r)
	require.NoError(t, b.AddTerm(mono(t, 3), ring.NewRat(1, 1), AddTermOptions{CheckZero: true}))

	sum, err := a.Add(b)
	require.NoError(t, err)
	require.Equal(t, []string{"x", "y"}, sum.Symbols().Names())
	require.Equal(t, 2, sum.NumTerms())
}

func TestAddLazyTermMaterializesThenFuses(t *testing.T) {
	r := ring.Rational{}
	s := New[int32, *big.Rat](symbolset.New("x"), r)
	k := mono(t, 1)

	require.NoError(t, s.AddLazyTerm(k, ring.NewRat(2, 1), ring.NewRat(3, 1), AddTermOptions{CheckZero: true}))
	c, ok := s.terms.Lookup(k)
	require.True(t, ok)
	require.True(t, r.Equal(c, ring.NewRat(6, 1)))

	require.NoError(t, s.AddLazyTerm(k, ring.NewRat(1, 1), ring.NewRat(1, 1), AddTermOptions{CheckZero: true}))
	c, ok = s.terms.Lookup(k)
	require.True(t, ok)
	require.True(t, r.Equal(c, ring.NewRat(7, 1)))
}

func TestAddLazyTermDropsNetZero(t *testing.T) {
	r := ring.Rational{}
	s := New[int32, *big.Rat](symbolset.New("x"), r)
	k := mono(t, 1)

	require.NoError(t, s.AddLazyTerm(k, ring.NewRat(2, 1), ring.NewRat(3, 1), AddTermOptions{CheckZero: true}))
	require.NoError(t, s.AddLazyTerm(k, ring.NewRat(-2, 1), ring.NewRat(3, 1), AddTermOptions{CheckZero: true}))
	require.Equal(t, 0, s.NumTerms())
}

func TestSubCancelsEqualSeries(t *testing.T) {
	r := ring.Rational{}
	a := New[int32, *big.Rat](symbolset.New("x"), r)
	require.NoError(t, a.AddTerm(mono(t, 1), ring.NewRat(4, 1), AddTermOptions{CheckZero: true}))

	b := New[int32, *big.Rat](symbolset.New("x"), r)
	require.NoError(t, b.AddTerm(mono(t, 1), ring.NewRat(4, 1), AddTermOptions{CheckZero: true}))

	diff, err := a.Sub(b)
	require.NoError(t, err)
	require.Equal(t, 0, diff.NumTerms())
}
