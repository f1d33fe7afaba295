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

// Package sort provides comparison sorting, order-statistic selection, and
// an array-embedded binary max-heap over caller-owned slices, sharing the
// comparator conventions of package seq.
//
// # Algorithms
//
//   - Sort is a hybrid quicksort: Hoare partitioning while spans exceed a
//     small cutoff, then a single unguarded insertion pass over the whole
//     range, seeded with the minimum of the leftmost partition as a
//     sentinel so the inner shift loop needs no bound check.
//   - StableSort is an adaptive merge sort using half-length scratch via
//     seq.MergeWithBuffer; StableSortWithBuffer is the non-allocating
//     entry point.
//   - HeapSort composes MakeHeap and SortHeap for a worst-case
//     O(n log n) alternative.
//   - NthElement is an iterative quickselect over the same Hoare
//     partition; PartialSort and PartialSortCopy keep the k smallest seen
//     so far in a max-heap window.
//
// The heap primitives (PushHeap, PopHeap, MakeHeap, SortHeap, IsHeap)
// operate on the slice as a complete binary tree with children of i at
// 2i+1 and 2i+2; a prefix heap is addressed by subslicing, as in
// PushHeap(s[:n]).
//
// # Contracts
//
// Preconditions are not validated here (see seq/checked). Internal
// invariants are asserted only under the seqdebug build tag; release
// builds compile the checks away.
package sort
