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

package monomial

import (
	"runtime"
	"sync"

	"github.com/obake-go/obake/internal/parallel"
	"github.com/obake-go/obake/kpack"
)

// parallelHull partitions monomials into contiguous chunks, computes each
// chunk's componentHull on its own worker, and combines the partial hulls
// (an associative reduction, per §5's parallel-reduce model) under a
// mutex as each worker finishes. Each chunk is a single contiguous range
// rather than uneven, independently-sized units of work, so this is
// exactly ParallelFor's case rather than ParallelForAtomic's.
func parallelHull[T kpack.Packable](monomials []Monomial[T]) (componentHull[T], error) {
	pool := parallel.New(runtime.GOMAXPROCS(0))
	defer pool.Close()

	var (
		mu       sync.Mutex
		combined componentHull[T]
		firstErr error
	)
	pool.ParallelFor(len(monomials), func(start, end int) {
		partial, err := hullOf(monomials[start:end])
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			return
		}
		combined = combined.combine(partial)
	})
	if firstErr != nil {
		return componentHull[T]{}, firstErr
	}
	return combined, nil
}
