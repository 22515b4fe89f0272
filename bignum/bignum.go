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

// Package bignum wraps math/big.Int with an accelerated multiplication
// path for the place the kernel needs arbitrary-precision integers with
// no fixed bound: monomial.Pow, which scales every exponent by an
// arbitrary-precision power before range-checking the result. Above fftThresholdBits, Mul routes through bigfft's Schönhage-Strassen
// multiplication instead of big.Int's built-in Karatsuba cutover, which
// pays off once both operands are large enough to amortise the FFT setup
// cost.
package bignum

import (
	"math/big"

	"github.com/remyoudompheng/bigfft"
)

// fftThresholdBits is the combined operand bit length above which Mul
// prefers bigfft over big.Int.Mul.
const fftThresholdBits = 1 << 16

// Int is an arbitrary-precision signed integer.
type Int struct {
	v *big.Int
}

// FromInt64 wraps n.
func FromInt64(n int64) Int { return Int{v: big.NewInt(n)} }

// FromUint64 wraps n.
func FromUint64(n uint64) Int { return Int{v: new(big.Int).SetUint64(n)} }

// FromBigInt wraps an existing *big.Int, copying it so the caller remains
// free to mutate the original.
func FromBigInt(v *big.Int) Int { return Int{v: new(big.Int).Set(v)} }

// Zero returns the additive identity.
func Zero() Int { return Int{v: new(big.Int)} }

// Add returns a+b.
func Add(a, b Int) Int { return Int{v: new(big.Int).Add(a.v, b.v)} }

// Mul returns a*b, routing through bigfft above fftThresholdBits combined
// operand bits.
func Mul(a, b Int) Int {
	if a.v.BitLen()+b.v.BitLen() > fftThresholdBits {
		return Int{v: bigfft.Mul(a.v, b.v)}
	}
	return Int{v: new(big.Int).Mul(a.v, b.v)}
}

// Cmp compares a and b the way big.Int.Cmp does.
func Cmp(a, b Int) int { return a.v.Cmp(b.v) }

// String renders the decimal representation.
func (i Int) String() string { return i.v.String() }

// Uint64 returns the low 64 bits (and whether the value fit without
// truncation).
func (i Int) Uint64() (uint64, bool) {
	return i.v.Uint64(), i.v.IsUint64()
}

// Int64 returns the value as an int64 (and whether it fit without
// truncation).
func (i Int) Int64() (int64, bool) {
	return i.v.Int64(), i.v.IsInt64()
}
