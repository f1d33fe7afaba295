// Copyright 2026 go-seq Authors
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

// Package checked wraps the precondition-carrying operations of seq and
// seq/sort with variants that validate their contracts first: sortedness
// of inputs to the merge, set, and binary-search families, auxiliary
// buffer capacity, and heap shape. A violated contract is reported as an
// error wrapping one of the package sentinels (ErrNotSorted,
// ErrBufferTooSmall, ErrNotHeap) instead of producing an unspecified
// result.
//
// The validation scans are linear, so this layer is for tests, debugging,
// and boundary code that receives ranges of uncertain provenance; hot
// paths should call the unchecked core directly.
package checked
