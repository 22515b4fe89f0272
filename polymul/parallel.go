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
	"math"
	"runtime"
	"sync"

	"github.com/obake-go/obake/estimate"
	"github.com/obake-go/obake/internal/parallel"
	"github.com/obake-go/obake/kpack"
	"github.com/obake-go/obake/monomial"
	"github.com/obake-go/obake/ring"
	"github.com/obake-go/obake/series"
	"github.com/obake-go/obake/truncate"
)

// LMax bounds the segment count exponent: the table never shards into
// more than 2^LMax independent segments regardless of how large the
// estimated product is, so segment bookkeeping overhead cannot outgrow
// the benefit of sharding.
const LMax = 16

// estAvgTermBytes approximates the in-memory footprint of one term
// (packed key plus coefficient); the source measures this from the
// coefficient type's actual sizeof, which Go's type-erased generics
// cannot recover cheaply, so a fixed estimate stands in. Only the
// segment *count* depends on this value, and segment count is already a
// coarse power-of-two choice, so the approximation does not need to be
// precise.
const estAvgTermBytes = 64.0

// nsegsBytesPerSegment and nsegsSizeFactor are the two empirically tuned
// constants the source's heuristic hard-codes (confirmed against
// original_source/include/obake/polynomials/polynomial.hpp): a segment
// holds roughly 500 KiB of terms before the estimator grows L, and the
// raw product-size estimate is scaled down by 0.0001 before that divide.
const (
	nsegsSizeFactor      = 0.0001
	nsegsBytesPerSegment = 500.0 * 1024.0
)

// chooseL picks the segment-count exponent L from the Monte Carlo product
// size estimate, clamped to [0, LMax].
func chooseL(estimatedTerms uint64) int {
	estTotalBytes := nsegsSizeFactor * estAvgTermBytes * float64(estimatedTerms)
	nsegs := estTotalBytes / nsegsBytesPerSegment
	if nsegs < 1 {
		return 0
	}
	l := int(math.Ceil(math.Log2(nsegs)))
	if l < 0 {
		l = 0
	}
	if l > LMax {
		l = LMax
	}
	return l
}

// selectThreshold is the |A|*|B| product below which Select prefers
// Simple over Parallel: below it, segmentation overhead outweighs any
// parallelism gained.
const selectThreshold = 1000

// Select multiplies a and b, choosing Simple or Parallel by estimated
// operand-size product and available parallelism, matching the source's
// own selection policy.
func Select[T kpack.Packable, C any](a, b *series.Series[T, C], policy *truncate.Policy[T]) (*series.Series[T, C], error) {
	if a.NumTerms()*b.NumTerms() < selectThreshold || runtime.GOMAXPROCS(0) == 1 {
		return Simple(a, b, policy)
	}
	return Parallel(a, b, policy)
}

// Parallel multiplies a and b using the homomorphic segmented strategy:
// both operands are partitioned into 2^L buckets by Monomial.Hash() mod
// 2^L, the destination table is sized with the same L, and each output
// bucket k is filled by exactly the operand bucket pairs (i, j) with
// i+j ≡ k (mod 2^L) — the homomorphic hash guarantees no other bucket
// pair can contribute to k, so distinct output buckets never contend for
// the same table segment and no synchronisation beyond the segment's own
// lock is needed.
func Parallel[T kpack.Packable, C any](a, b *series.Series[T, C], policy *truncate.Policy[T]) (*series.Series[T, C], error) {
	merged, ta, tb, err := mergeOperands(a, b)
	if err != nil {
		return nil, err
	}
	if err := checkOverflow(ta, tb); err != nil {
		return nil, err
	}
	r := a.Ring()

	akeys := make([]monomial.Monomial[T], len(ta))
	for i, t := range ta {
		akeys[i] = t.key
	}
	bkeys := make([]monomial.Monomial[T], len(tb))
	for i, t := range tb {
		bkeys[i] = t.key
	}
	estimateB, limitFn, err := estimateLimit(akeys, bkeys, policy)
	if err != nil {
		return nil, err
	}
	estimated, err := estimate.ProductSize(akeys, estimateB, limitFn)
	if err != nil {
		return nil, err
	}
	l := chooseL(estimated)
	result := series.NewWithSegments[T, C](merged, r, l)
	nsegs := result.NumSegments()

	bucketsA := bucketize(result, ta)
	bucketsB := bucketize(result, tb)

	// Bucket-pair work is wildly uneven (bucket sizes follow however the
	// operands happen to hash), so dispatch uses the pool's atomic
	// work-stealing rather than a fixed one-goroutine-per-bucket split:
	// a worker that finishes a light bucket immediately picks up the next
	// unclaimed one instead of idling.
	pool := parallel.New(runtime.GOMAXPROCS(0))
	defer pool.Close()

	var mu sync.Mutex
	var firstErr error
	pool.ParallelForAtomic(nsegs, func(k int) {
		for i := 0; i < nsegs; i++ {
			j := ((k-i)%nsegs + nsegs) % nsegs
			for _, at := range bucketsA[i] {
				for _, bt := range bucketsB[j] {
					if err := multiplyIntoTruncated(result, r, at, bt, policy); err != nil {
						mu.Lock()
						if firstErr == nil {
							firstErr = err
						}
						mu.Unlock()
						return
					}
				}
			}
		}
	})
	if firstErr != nil {
		result.Clear()
		return nil, firstErr
	}
	return result, nil
}

// estimateLimit builds the estimator's LimitFunc together with the
// smaller-side key array it indexes into. Untruncated, the limit is
// always the full smaller length and order is irrelevant. Under
// truncation, §4.F requires Y sorted by degree so that a random index
// below a prefix length only ever lands on an eligible partner; the
// limit itself is the binary-search bound also used by the real
// multiplication loop (truncate.SortedDegrees/UpperBound).
func estimateLimit[T kpack.Packable](akeys, bkeys []monomial.Monomial[T], policy *truncate.Policy[T]) ([]monomial.Monomial[T], estimate.LimitFunc, error) {
	if policy == nil {
		n := len(bkeys)
		return bkeys, func(int) int { return n }, nil
	}
	order, sortedDeg, err := truncate.SortedDegrees(bkeys, *policy)
	if err != nil {
		return nil, nil, err
	}
	sortedB := make([]monomial.Monomial[T], len(bkeys))
	for i, idx := range order {
		sortedB[i] = bkeys[idx]
	}
	maxDeg := policy.MaxDegree()
	limit := func(i int) int {
		aDeg, err := policy.Degree(akeys[i])
		if err != nil {
			return 0
		}
		residual := maxDeg - aDeg
		if residual < 0 {
			return 0
		}
		return truncate.UpperBound(sortedDeg, residual)
	}
	return sortedB, limit, nil
}

// bucketize assigns every term to the same segment the destination
// series' own table would assign its key to, so bucket k's contents are
// guaranteed to land in the output table's segment k with no separate
// mask computation that could drift from the table's.
func bucketize[T kpack.Packable, C any](dst *series.Series[T, C], terms []flatTerm[T, C]) [][]flatTerm[T, C] {
	buckets := make([][]flatTerm[T, C], dst.NumSegments())
	for _, t := range terms {
		b := dst.SegmentIndex(t.key)
		buckets[b] = append(buckets[b], t)
	}
	return buckets
}

func multiplyIntoTruncated[T kpack.Packable, C any](result *series.Series[T, C], r ring.Ring[C], at, bt flatTerm[T, C], policy *truncate.Policy[T]) error {
	key, err := at.key.Mul(bt.key)
	if err != nil {
		return err
	}
	if policy != nil {
		ok, err := policy.Allows(key)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
	return result.AddLazyTerm(key, at.coeff, bt.coeff, series.AddTermOptions{CheckZero: true})
}
