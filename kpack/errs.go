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

import "errors"

// ErrOverflow is returned when a size exceeds the maximum packable size for
// a type, when a component falls outside the size's component limits, or
// when a coded value falls outside the size's coded-value limits.
var ErrOverflow = errors.New("kpack: overflow")

// ErrOutOfRange is returned when more values are pushed to a packer, or
// pulled from an unpacker, than its size allows.
var ErrOutOfRange = errors.New("kpack: out of range")

// ErrInvalidArgument is returned when a non-zero value is supplied to a
// size-zero unpacker.
var ErrInvalidArgument = errors.New("kpack: invalid argument")
