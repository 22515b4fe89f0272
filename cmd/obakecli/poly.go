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

package main

import (
	"fmt"
	"math/big"
	"sort"
	"strconv"
	"strings"

	"github.com/obake-go/obake/monomial"
	"github.com/obake-go/obake/ring"
	"github.com/obake-go/obake/series"
	"github.com/obake-go/obake/symbolset"
)

// parsedTerm is one "coeff|sym:exp,sym:exp" term read from the command
// line, before the symbol set (shared across both operands) is known.
type parsedTerm struct {
	coeff *big.Rat
	exps  map[string]int32
}

// parsePoly parses the demo's textual notation: whitespace-separated
// terms, each "coeff|sym:exp,sym:exp,...", e.g. "1|x:1 -1|y:1" for x-y,
// or "3|" for the bare constant 3.
func parsePoly(text string) ([]parsedTerm, error) {
	fields := strings.Fields(text)
	terms := make([]parsedTerm, 0, len(fields))
	for _, f := range fields {
		parts := strings.SplitN(f, "|", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("obakecli: term %q is missing the coeff|exponents separator", f)
		}
		coeff, ok := new(big.Rat).SetString(parts[0])
		if !ok {
			return nil, fmt.Errorf("obakecli: cannot parse coefficient %q", parts[0])
		}
		exps := map[string]int32{}
		if parts[1] != "" {
			for _, pair := range strings.Split(parts[1], ",") {
				kv := strings.SplitN(pair, ":", 2)
				if len(kv) != 2 {
					return nil, fmt.Errorf("obakecli: cannot parse exponent %q", pair)
				}
				e, err := strconv.Atoi(kv[1])
				if err != nil {
					return nil, fmt.Errorf("obakecli: cannot parse exponent value %q: %w", kv[1], err)
				}
				exps[kv[0]] = int32(e)
			}
		}
		terms = append(terms, parsedTerm{coeff: coeff, exps: exps})
	}
	return terms, nil
}

func symbolsOf(termSets ...[]parsedTerm) []string {
	seen := map[string]bool{}
	for _, terms := range termSets {
		for _, t := range terms {
			for sym := range t.exps {
				seen[sym] = true
			}
		}
	}
	names := make([]string, 0, len(seen))
	for s := range seen {
		names = append(names, s)
	}
	sort.Strings(names)
	return names
}

// buildSeries packs parsed terms into a series over ss, a symbol set that
// is a superset of every symbol the terms reference.
func buildSeries(terms []parsedTerm, ss symbolset.Set, r ring.Ring[*big.Rat]) (*series.Series[int32, *big.Rat], error) {
	s := series.New[int32, *big.Rat](ss, r)
	for _, t := range terms {
		exps := make([]int32, ss.Size())
		for sym, e := range t.exps {
			idx := ss.IndexOf(sym)
			if idx < 0 {
				return nil, fmt.Errorf("obakecli: symbol %q not in symbol set", sym)
			}
			exps[idx] = e
		}
		key, err := monomial.New[int32](exps)
		if err != nil {
			return nil, err
		}
		if err := s.AddTerm(key, t.coeff, series.AddTermOptions{CheckZero: true}); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// formatSeries renders a series back into the demo's textual notation,
// symbols sorted for deterministic output.
func formatSeries(s *series.Series[int32, *big.Rat]) string {
	names := s.Symbols().Names()
	var out []string
	s.Range(func(key monomial.Monomial[int32], coeff *big.Rat) bool {
		exps, _ := key.Exponents()
		var parts []string
		for i, e := range exps {
			if e != 0 {
				parts = append(parts, fmt.Sprintf("%s:%d", names[i], e))
			}
		}
		out = append(out, fmt.Sprintf("%s|%s", coeff.RatString(), strings.Join(parts, ",")))
		return true
	})
	sort.Strings(out)
	return strings.Join(out, " ")
}
