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

// Package ring declares the coefficient-ring contract the polynomial kernel
// requires (copy, equality, +, -, *, /, fused multiply-add, zero test,
// construction from 0 and 1, diagnostic stringification) plus LazyProduct,
// an explicit two-operand lazy-coefficient-product holder. The multiplier
// does not use LazyProduct; it defers the product through
// series.AddLazyTerm and segtable.InsertOrAccumulateLazy instead.
//
// Coefficient instances must be independently mutable across goroutines:
// the ring methods below take and return values rather than mutate shared
// state, which satisfies that requirement for any C whose zero value is
// meaningful to copy.
package ring

import "errors"

// ErrZeroDivision is returned by Ring.Div when dividing by a zero
// coefficient.
var ErrZeroDivision = errors.New("ring: division by zero")

// Ring is the capability protocol the multiplication engine requires of a
// coefficient type C. It is the Go analogue of the ADL customisation points
// (series_mul, series_add, ...) the source dispatches through: a trait
// object keyed on the coefficient type, with a default blanket FMA
// implementation available via DefaultFMA for rings that have no fused
// primitive of their own.
type Ring[C any] interface {
	Zero() C
	One() C
	IsZero(c C) bool
	Equal(a, b C) bool
	Add(a, b C) C
	Sub(a, b C) C
	Neg(a C) C
	Mul(a, b C) C
	// Div returns a/b, or ErrZeroDivision if b is zero.
	Div(a, b C) (C, error)
	// FMA returns acc + a*b, fused where the ring has a native primitive.
	FMA(acc, a, b C) C
	String(c C) string
}

// DefaultFMA implements Ring.FMA as Add(acc, Mul(a, b)) for rings with no
// fused multiply-add of their own.
func DefaultFMA[C any](r Ring[C], acc, a, b C) C {
	return r.Add(acc, r.Mul(a, b))
}

// LazyProduct is a two-operand lazy coefficient product: multiplication is
// deferred until the destination slot is known, so a term landing on a
// fresh key materialises the product directly into its slot and a term
// landing on a duplicate key is fused into the existing accumulator through
// the ring's FMA. Whether that allocates an intermediate product depends on
// the ring: DefaultFMA (which Rational uses) computes Mul and then Add.
type LazyProduct[C any] struct {
	A, B C
}

// MaterializeInto computes A*B, for use when the destination slot is empty.
func (lp LazyProduct[C]) MaterializeInto(r Ring[C]) C {
	return r.Mul(lp.A, lp.B)
}

// AccumulateInto computes dst + A*B, for use when the destination slot
// already holds an accumulator for the same key.
func (lp LazyProduct[C]) AccumulateInto(dst C, r Ring[C]) C {
	return r.FMA(dst, lp.A, lp.B)
}
