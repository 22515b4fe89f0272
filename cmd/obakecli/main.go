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

// Command obakecli is a small demonstration of the obake-go kernel: it
// reads two polynomials in a plain sum-of-monomials notation and prints
// their product, optionally truncated by total or partial degree.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "obakecli",
		Short: "Multiply sparse multivariate polynomials over the rationals",
	}
	root.AddCommand(newMulCmd())
	root.AddCommand(newTMulCmd())
	root.AddCommand(newPMulCmd())
	return root
}
