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

package bignum

import "testing"

func TestMulSmall(t *testing.T) {
	a := FromInt64(123456)
	b := FromInt64(654321)
	got := Mul(a, b)
	want := FromInt64(123456 * 654321)
	if Cmp(got, want) != 0 {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestAddAndUint64(t *testing.T) {
	a := FromUint64(40)
	b := FromUint64(2)
	sum := Add(a, b)
	v, ok := sum.Uint64()
	if !ok || v != 42 {
		t.Fatalf("got (%d, %v), want (42, true)", v, ok)
	}
}

func TestZero(t *testing.T) {
	z := Zero()
	v, ok := z.Uint64()
	if !ok || v != 0 {
		t.Fatalf("got (%d, %v), want (0, true)", v, ok)
	}
}
