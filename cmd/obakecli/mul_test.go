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
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) string {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs(args)
	require.NoError(t, root.Execute())
	return out.String()
}

func TestMulCmdUntruncated(t *testing.T) {
	out := runCLI(t, "mul", "1|x:1 1|y:1", "1|x:1 -1|y:1")
	require.Contains(t, out, "1|x:2")
	require.Contains(t, out, "-1|y:2")
}

func TestTMulCmdDropsHighDegreeTerms(t *testing.T) {
	out := runCLI(t, "tmul", "--max-degree=1", "1|x:1 1|y:1", "1|x:1 1|y:1")
	require.NotContains(t, out, "x:2")
	require.NotContains(t, out, "y:2")
}

// TestPMulCmdTruncatesOverNamedSymbols is S2 from spec.md §8 driven through
// the CLI's partial-degree command: (z*x + y)(x - y - 1) truncated to
// partial degree <= 2 over {x, z}.
func TestPMulCmdTruncatesOverNamedSymbols(t *testing.T) {
	out := runCLI(t, "pmul", "--max-degree=2", "--symbols=x,z",
		"1|x:1,z:1 1|y:1", "1|x:1 -1|y:1 -1|")
	require.Contains(t, out, "-1|x:1,y:1,z:1")
	require.Contains(t, out, "1|x:1,y:1")
	require.Contains(t, out, "-1|y:1")
	require.Contains(t, out, "-1|x:1,z:1")
	require.Contains(t, out, "-1|y:2")
}

func TestPMulCmdRejectsUnknownSymbol(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"pmul", "--max-degree=1", "--symbols=w", "1|x:1", "1|x:1"})
	require.Error(t, root.Execute())
}
