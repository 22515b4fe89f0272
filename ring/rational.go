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

package ring

import "math/big"

// Rational is the reference Ring implementation used throughout the test
// suite and the demo CLI: arbitrary-precision rationals backed by
// math/big.Rat. Every operation returns a freshly allocated *big.Rat, so
// distinct Rational coefficients are safe to hold and mutate independently
// from different goroutines even though big.Rat itself is not
// concurrency-safe for in-place mutation.
type Rational struct{}

var _ Ring[*big.Rat] = Rational{}

func (Rational) Zero() *big.Rat { return new(big.Rat) }

func (Rational) One() *big.Rat { return new(big.Rat).SetInt64(1) }

func (Rational) IsZero(c *big.Rat) bool { return c.Sign() == 0 }

func (Rational) Equal(a, b *big.Rat) bool { return a.Cmp(b) == 0 }

func (Rational) Add(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(a, b) }

func (Rational) Sub(a, b *big.Rat) *big.Rat { return new(big.Rat).Sub(a, b) }

func (Rational) Neg(a *big.Rat) *big.Rat { return new(big.Rat).Neg(a) }

func (Rational) Mul(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(a, b) }

func (Rational) Div(a, b *big.Rat) (*big.Rat, error) {
	if b.Sign() == 0 {
		return nil, ErrZeroDivision
	}
	return new(big.Rat).Quo(a, b), nil
}

func (r Rational) FMA(acc, a, b *big.Rat) *big.Rat {
	return DefaultFMA[*big.Rat](r, acc, a, b)
}

func (Rational) String(c *big.Rat) string { return c.RatString() }

// NewRat is a convenience constructor mirroring big.NewRat for building
// Rational coefficients from a numerator/denominator pair.
func NewRat(num, denom int64) *big.Rat { return big.NewRat(num, denom) }
