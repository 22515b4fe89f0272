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

package symbolset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSortsAndDedups(t *testing.T) {
	s := New("z", "x", "y", "x")
	require.Equal(t, []string{"x", "y", "z"}, s.Names())
}

func TestIndexOf(t *testing.T) {
	s := New("x", "y", "z")
	require.Equal(t, 0, s.IndexOf("x"))
	require.Equal(t, 2, s.IndexOf("z"))
	require.Equal(t, -1, s.IndexOf("w"))
}

func TestMergeNeutralWhenIdentical(t *testing.T) {
	a := New("x", "y")
	b := New("x", "y")
	merged, mapA, mapB := Merge(a, b)
	require.True(t, merged.Equal(a))
	require.Empty(t, mapA.Inserted)
	require.Empty(t, mapB.Inserted)
	require.Equal(t, []int{0, 1}, mapA.NewIndexOf)
	require.Equal(t, []int{0, 1}, mapB.NewIndexOf)
}

func TestMergeDisjoint(t *testing.T) {
	a := New("x", "z")
	b := New("y")
	merged, mapA, mapB := Merge(a, b)
	require.Equal(t, []string{"x", "y", "z"}, merged.Names())
	require.Equal(t, []int{0, 2}, mapA.NewIndexOf)
	require.Equal(t, []int{1}, mapA.Inserted)
	require.Equal(t, []int{1}, mapB.NewIndexOf)
	require.Equal(t, []int{0, 2}, mapB.Inserted)
}

func TestIndicesOf(t *testing.T) {
	s := New("x", "y", "z")
	require.Equal(t, []int{0, 2}, s.IndicesOf([]string{"x", "z", "w"}))
}
