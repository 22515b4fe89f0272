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

package truncate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/obake-go/obake/monomial"
)

func mono(t *testing.T, exps ...int32) monomial.Monomial[int32] {
	t.Helper()
	m, err := monomial.New[int32](exps)
	require.NoError(t, err)
	return m
}

func TestTotalDegreeAllows(t *testing.T) {
	p := Total[int32](3)
	ok, err := p.Allows(mono(t, 1, 2))
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = p.Allows(mono(t, 2, 2))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestPartialDegreeAllows(t *testing.T) {
	p := Partial[int32](2, []int{0})
	ok, err := p.Allows(mono(t, 2, 100))
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = p.Allows(mono(t, 3, 0))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestSortedDegreesAndUpperBound(t *testing.T) {
	terms := []monomial.Monomial[int32]{
		mono(t, 3, 0),
		mono(t, 1, 0),
		mono(t, 2, 0),
	}
	p := Total[int32](10)
	order, degrees, err := SortedDegrees(terms, p)
	require.NoError(t, err)
	require.Equal(t, []int32{1, 2, 3}, degrees)
	require.Equal(t, []int{1, 2, 0}, order)

	require.Equal(t, 2, UpperBound(degrees, int32(2)))
	require.Equal(t, 0, UpperBound(degrees, int32(0)))
	require.Equal(t, 3, UpperBound(degrees, int32(100)))
}
