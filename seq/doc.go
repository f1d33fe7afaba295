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

// Package seq provides in-place algorithms over caller-owned slices:
// scanning, searching, partitioning, merging, set operations over sorted
// ranges, permutation generation, and randomized sampling and shuffling.
//
// The package introduces no container types. Every operation borrows a
// slice for the duration of one call, copies or swaps elements within the
// storage the caller already owns, and returns a position, a count, or a
// trimmed view of the same storage. Ordering is never assumed: operations
// that depend on order take an explicit three-way comparator
//
//	func(a, b T) int
//
// returning a negative, zero, or positive value under a strict weak
// ordering, and partition-family operations take a boolean predicate
//
//	func(x T) bool
//
// Closures capture whatever context the comparison needs.
//
// # Conventions
//
// Ranges are half-open; an empty slice is always legal and never an error.
// Scans that can miss return -1. Boundary searches (PartitionPoint,
// LowerBound, UpperBound) return an index in [0, len(s)]. Operations that
// shrink a range in place (Unique, RemoveIf) return the trimmed slice over
// the same backing array. Copying operations return the number of elements
// written.
//
// Preconditions (sorted inputs for the merge, set, and binary-search
// families; sufficient output capacity for copies) are the caller's
// responsibility and are not checked here. Package seq/checked wraps this
// surface with validating variants for tests and debugging.
//
// # Example
//
//	nums := []int{5, 2, 8, 2, 9}
//	sort.Sort(nums, seq.Ascending)
//	nums = seq.Unique(nums, seq.Ascending)   // [2 5 8 9]
//	i, ok := seq.BinarySearch(nums, 8, seq.Ascending)
//
// Randomized operations (Shuffle, Sample) take an explicit Source so that
// runs under a fixed seed are deterministic.
package seq
