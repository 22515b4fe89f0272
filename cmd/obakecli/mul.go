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
	"strings"

	"github.com/spf13/cobra"

	"github.com/obake-go/obake/polymul"
	"github.com/obake-go/obake/ring"
	"github.com/obake-go/obake/symbolset"
	"github.com/obake-go/obake/truncate"
)

func newMulCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mul POLY1 POLY2",
		Short: "Print POLY1 * POLY2, untruncated",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMul(cmd, args[0], args[1], noPolicy)
		},
	}
}

func newTMulCmd() *cobra.Command {
	var maxDegree int32
	c := &cobra.Command{
		Use:   "tmul POLY1 POLY2",
		Short: "Print POLY1 * POLY2, truncated to total degree <= max-degree",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMul(cmd, args[0], args[1], func(symbolset.Set) (*truncate.Policy[int32], error) {
				policy := truncate.Total[int32](maxDegree)
				return &policy, nil
			})
		},
	}
	c.Flags().Int32Var(&maxDegree, "max-degree", 0, "maximum total degree to keep")
	return c
}

func newPMulCmd() *cobra.Command {
	var maxDegree int32
	var symbols string
	c := &cobra.Command{
		Use:   "pmul POLY1 POLY2",
		Short: "Print POLY1 * POLY2, truncated to partial degree <= max-degree over --symbols",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := strings.Split(symbols, ",")
			return runMul(cmd, args[0], args[1], func(ss symbolset.Set) (*truncate.Policy[int32], error) {
				idx := ss.IndicesOf(names)
				if len(idx) != len(names) {
					return nil, fmt.Errorf("obakecli: --symbols names a symbol absent from either operand")
				}
				policy := truncate.Partial[int32](maxDegree, idx)
				return &policy, nil
			})
		},
	}
	c.Flags().Int32Var(&maxDegree, "max-degree", 0, "maximum partial degree to keep")
	c.Flags().StringVar(&symbols, "symbols", "", "comma-separated symbols the partial degree is taken over")
	return c
}

// noPolicy leaves the product untruncated.
func noPolicy(symbolset.Set) (*truncate.Policy[int32], error) { return nil, nil }

func runMul(cmd *cobra.Command, poly1, poly2 string, buildPolicy func(symbolset.Set) (*truncate.Policy[int32], error)) error {
	t1, err := parsePoly(poly1)
	if err != nil {
		return err
	}
	t2, err := parsePoly(poly2)
	if err != nil {
		return err
	}
	ss := symbolset.New(symbolsOf(t1, t2)...)

	r := ring.Rational{}
	a, err := buildSeries(t1, ss, r)
	if err != nil {
		return err
	}
	b, err := buildSeries(t2, ss, r)
	if err != nil {
		return err
	}

	policy, err := buildPolicy(ss)
	if err != nil {
		return err
	}

	product, err := polymul.Select(a, b, policy)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), formatSeries(product))
	return nil
}
