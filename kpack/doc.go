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

// Package kpack implements Kronecker packing: the bijective encoding of a
// fixed-length vector of bounded integers into a single machine scalar, and
// the constant-time unpacker that recovers the vector without runtime
// division.
//
// Packing is parametrised by a "size" (the number of components) and a
// machine type T drawn from the closed set {int32, uint32, int64, uint64}.
// For each size the package exposes, via precomputed tables, the packing
// base (delta), the per-component limits, the coded-value limits, and the
// Granlund-Montgomery magic constants needed to replace each unpacking
// division with one high-multiply and two shifts.
//
// Usage:
//
//	packed, err := kpack.Pack(4, []int32{1, -1, 3, 3})
//	values, err := kpack.Unpack(packed, 4)
package kpack
