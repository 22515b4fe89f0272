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

// Package estimate implements the Monte Carlo product-size estimator the
// homomorphic parallel multiplier uses to size its segmented table before
// multiplying: running the real insertion loop to completion would defeat
// the purpose of estimating, so a handful of randomised trials extrapolate
// the true term count from a small sample of collisions.
//
// Each trial shuffles the larger series' index vector, walks it once,
// picks one random partner from the (possibly truncation-narrowed) smaller
// series for each index, and stops at the first duplicate product key. A
// trial that never collides contributes the sum of the partner limits of
// the indices it walked; one that collides contributes a quadratic
// extrapolation instead (2 * steps-before-the-collision squared), since a
// collision in a random walk implies a much smaller table than the
// product of the two operand sizes.
package estimate

import (
	"golang.org/x/sync/errgroup"

	"github.com/obake-go/obake/kpack"
	"github.com/obake-go/obake/monomial"
	"github.com/obake-go/obake/xoroshiro"
)

const (
	nTrials    = 20
	multiplier = 2
)

// Trial reproducibility constants: two arbitrary, fixed 64-bit words mixed
// with the trial index to seed each trial's generator, so repeated runs
// over the same operands always produce the same estimate.
const (
	seedLo = 0xC6BC279692B5C323
	seedHi = 0xA7D2636F6F8D3A19
)

// LimitFunc returns, for a given index into the larger series, how many of
// the smaller series' terms are eligible multiplication partners (the full
// smaller length when untruncated, or a narrower prefix under a degree
// bound). A limit of zero means the index has no eligible partner at all.
type LimitFunc func(largerIdx int) int

// ProductSize estimates the number of distinct terms the product of
// larger and smaller will contain. limit must never return more than
// len(smaller): each step draws a partner index below it (only Hash() and
// Mul() are needed per step).
func ProductSize[T kpack.Packable](larger, smaller []monomial.Monomial[T], limit LimitFunc) (uint64, error) {
	if len(larger) == 0 || len(smaller) == 0 {
		return 0, nil
	}

	results := make([]uint64, nTrials)
	var g errgroup.Group
	for trial := 0; trial < nTrials; trial++ {
		trial := trial
		g.Go(func() error {
			v, err := runTrial(larger, smaller, limit, trial)
			if err != nil {
				return err
			}
			results[trial] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	var sum uint64
	for _, r := range results {
		sum += r
	}
	est := sum / nTrials
	if est == 0 {
		est = 1
	}
	return est, nil
}

func runTrial[T kpack.Packable](larger, smaller []monomial.Monomial[T], limit LimitFunc, trial int) (uint64, error) {
	rng := xoroshiro.New(seedLo+uint64(trial), seedHi+uint64(trial))

	idx := make([]int, len(larger))
	for i := range idx {
		idx[i] = i
	}
	rng.Shuffle(len(idx), func(i, j int) { idx[i], idx[j] = idx[j], idx[i] })

	seen := make(map[uint64]struct{}, len(idx))
	var accY uint64
	var count int
	collided := false

	for _, i1 := range idx {
		lim := limit(i1)
		if lim <= 0 {
			continue
		}
		i2 := rng.Intn(lim)

		prod, err := larger[i1].Mul(smaller[i2])
		if err != nil {
			return 0, err
		}
		h := prod.Hash()
		if _, dup := seen[h]; dup {
			collided = true
			break
		}
		seen[h] = struct{}{}

		accY += uint64(lim)
		count++
	}

	if !collided {
		return accY, nil
	}
	return multiplier * uint64(count) * uint64(count), nil
}
