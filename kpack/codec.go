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

package kpack

import (
	"fmt"
	"math/bits"
)

// Packable is the closed set of machine integer types the codec supports.
type Packable interface {
	~int32 | ~uint32 | ~int64 | ~uint64
}

// SMax returns the maximum packable size for T, floor(bits(T)/3).
func SMax[T Packable]() int {
	var zero T
	switch any(zero).(type) {
	case int32, uint32:
		return len(int32Deltas)
	case int64, uint64:
		return len(int64Deltas)
	default:
		panic("kpack: unsupported type")
	}
}

func isSigned[T Packable]() bool {
	var zero T
	switch any(zero).(type) {
	case int32, int64:
		return true
	default:
		return false
	}
}

func delta[T Packable](size int) T {
	var zero T
	switch any(zero).(type) {
	case int32:
		return T(int32Deltas[size-1])
	case uint32:
		return T(uint32Deltas[size-1])
	case int64:
		return T(int64Deltas[size-1])
	case uint64:
		return T(uint64Deltas[size-1])
	default:
		panic("kpack: unsupported type")
	}
}

// Lims returns the inclusive [min, max] range each component of a size-s
// pack may take: symmetric around zero for signed T, [0, max] for unsigned.
func Lims[T Packable](size int) (T, T) {
	var zero T
	switch any(zero).(type) {
	case int32:
		lim := T(int32Lims[size-1])
		return -lim, lim
	case uint32:
		return 0, T(uint32Lims[size-1])
	case int64:
		lim := T(int64Lims[size-1])
		return -lim, lim
	case uint64:
		return 0, T(uint64Lims[size-1])
	default:
		panic("kpack: unsupported type")
	}
}

// Klims returns the inclusive [min, max] range a coded value of size s may
// take.
func Klims[T Packable](size int) (T, T) {
	var zero T
	switch any(zero).(type) {
	case int32:
		lim := T(int32Klims[size-1])
		return -lim, lim
	case uint32:
		return 0, T(uint32Klims[size-1])
	case int64:
		lim := T(int64Klims[size-1])
		return -lim, lim
	case uint64:
		return 0, T(uint64Klims[size-1])
	default:
		panic("kpack: unsupported type")
	}
}

// divConstFor returns the magic-division triple for dividing by delta(size)^index,
// widened to uint64 (the true magnitude fits the working width of T).
func divConstFor[T Packable](size, index int) (mp uint64, sh1, sh2 uint8) {
	var zero T
	switch any(zero).(type) {
	case int32:
		c := int32Divcnst[size-1][index]
		return uint64(c.mp), c.sh1, c.sh2
	case uint32:
		c := uint32Divcnst[size-1][index]
		return uint64(c.mp), c.sh1, c.sh2
	case int64:
		c := int64Divcnst[size-1][index]
		return c.mp, c.sh1, c.sh2
	case uint64:
		c := uint64Divcnst[size-1][index]
		return c.mp, c.sh1, c.sh2
	default:
		panic("kpack: unsupported type")
	}
}

func mulhi32(a, b uint32) uint32 {
	return uint32((uint64(a) * uint64(b)) >> 32)
}

func divcnst32(n, mp uint32, sh1, sh2 uint8) uint32 {
	t1 := mulhi32(mp, n)
	tmp := (n - t1) >> sh1
	return (t1 + tmp) >> sh2
}

func mulhi64(a, b uint64) uint64 {
	hi, _ := bits.Mul64(a, b)
	return hi
}

func divcnst64(n, mp uint64, sh1, sh2 uint8) uint64 {
	t1 := mulhi64(mp, n)
	tmp := (n - t1) >> sh1
	return (t1 + tmp) >> sh2
}

// Pack encodes up to size values of T into a single scalar:
// result = sum_i v_i * delta(size)^i, with missing trailing components
// treated as zero. It fails with ErrOverflow if size exceeds SMax[T](), if
// any value falls outside Lims(size), or with ErrOutOfRange if more than
// size values are supplied.
func Pack[T Packable](size int, values []T) (T, error) {
	if size < 0 || size > SMax[T]() {
		return 0, fmt.Errorf("%w: size %d exceeds maximum packable size %d", ErrOverflow, size, SMax[T]())
	}
	if len(values) > size {
		return 0, fmt.Errorf("%w: pushed %d values but packer size is %d", ErrOutOfRange, len(values), size)
	}
	if size == 0 {
		var zero T
		return zero, nil
	}

	limMin, limMax := Lims[T](size)
	var value T
	curProd := T(1)
	for _, v := range values {
		if v < limMin || v > limMax {
			return 0, fmt.Errorf("%w: value %v outside allowed range [%v, %v]", ErrOverflow, v, limMin, limMax)
		}
		value += v * curProd
		curProd *= delta[T](size)
	}
	return value, nil
}

// Unpack recovers the size values that Pack encoded into n. It fails with
// ErrOverflow if size exceeds SMax[T]() or n falls outside Klims(size); the
// size-0 form requires n == 0, else ErrInvalidArgument.
func Unpack[T Packable](n T, size int) ([]T, error) {
	if size == 0 {
		var zero T
		if n != zero {
			return nil, fmt.Errorf("%w: only a value of zero can be unpacked with size 0, got %v", ErrInvalidArgument, n)
		}
		return []T{}, nil
	}
	if size < 0 || size > SMax[T]() {
		return nil, fmt.Errorf("%w: size %d exceeds maximum packable size %d", ErrOverflow, size, SMax[T]())
	}
	klimMin, klimMax := Klims[T](size)
	if n < klimMin || n > klimMax {
		return nil, fmt.Errorf("%w: value %v outside allowed range [%v, %v]", ErrOverflow, n, klimMin, klimMax)
	}

	var zero T
	switch any(zero).(type) {
	case int32, uint32:
		return unpack32[T](n, size)
	default:
		return unpack64[T](n, size)
	}
}

func unpack32[T Packable](n T, size int) ([]T, error) {
	limMin, _ := Lims[T](size)
	klimMin, _ := Klims[T](size)
	u := uint32(n) - uint32(klimMin)
	d := uint32(delta[T](size))

	out := make([]T, size)
	curProd := uint32(1)
	for i := 0; i < size; i++ {
		curProd *= d

		mpD, sh1D, sh2D := divConstFor[T](size, i)
		mpR, sh1R, sh2R := divConstFor[T](size, i+1)

		qr := divcnst32(u, uint32(mpR), sh1R, sh2R)
		rem := u - qr*curProd
		qd := divcnst32(rem, uint32(mpD), sh1D, sh2D)

		out[i] = T(qd) + limMin
	}
	return out, nil
}

func unpack64[T Packable](n T, size int) ([]T, error) {
	limMin, _ := Lims[T](size)
	klimMin, _ := Klims[T](size)
	u := uint64(n) - uint64(klimMin)
	d := uint64(delta[T](size))

	out := make([]T, size)
	curProd := uint64(1)
	for i := 0; i < size; i++ {
		curProd *= d

		mpD, sh1D, sh2D := divConstFor[T](size, i)
		mpR, sh1R, sh2R := divConstFor[T](size, i+1)

		qr := divcnst64(u, mpR, sh1R, sh2R)
		rem := u - qr*curProd
		qd := divcnst64(rem, mpD, sh1D, sh2D)

		out[i] = T(qd) + limMin
	}
	return out, nil
}
