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

package sort

import "github.com/ajroetker/go-seq/seq"

// Thresholds below which insertion sort beats the divide-and-conquer
// sorts.
const (
	// quicksortCutoff: quicksort leaves spans this size or smaller for
	// the final insertion pass.
	quicksortCutoff = 32

	// stableCutoff: merge sort hands spans this size or smaller to the
	// stable insertion sort.
	stableCutoff = 24
)

// hoarePartition partially orders a non-empty s around a pivot copied
// from the middle index and returns the split m: every element of s[:m]
// compares at or below every element of s[m:]. Two cursors advance past
// elements strictly on their own side and swap otherwise, so runs equal
// to the pivot cost no extra swaps. The pivot is taken by value because
// its slot may move during the pass.
func hoarePartition[T any](s []T, cmp func(a, b T) int) int {
	n := len(s)
	assert(n > 0, "hoarePartition needs a non-empty range")

	// Never the last index, or the left recursion could be empty.
	pivot := s[(n-1)/2]
	first, last := 0, n-1
	for {
		for cmp(s[first], pivot) < 0 {
			first++
		}
		for cmp(pivot, s[last]) < 0 {
			last--
		}
		if first >= last {
			return last + 1
		}
		s[first], s[last] = s[last], s[first]
		first++
		last--
	}
}

// quicksortToCutoff recurses with hoarePartition until every span is at
// most quicksortCutoff long, leaving the slice partially sorted. The
// right side recurses, the left side continues in the loop. Returns the
// length of the leftmost surviving span.
func quicksortToCutoff[T any](s []T, cmp func(a, b T) int) int {
	for len(s) > quicksortCutoff {
		p := hoarePartition(s, cmp)
		quicksortToCutoff(s[p:], cmp)
		s = s[:p]
	}
	return len(s)
}

// Sort sorts s in place: quicksort down to short spans, then one
// unguarded insertion pass over the whole range. The minimum of the
// leftmost span is swapped to the front beforehand; it is a global
// minimum because the partial order between spans already holds, and it
// serves as the sentinel the unguarded pass relies on. Not stable.
func Sort[T any](s []T, cmp func(a, b T) int) {
	if len(s) < 2 {
		return
	}
	front := quicksortToCutoff(s, cmp)
	m := seq.MinElement(s[:front], cmp)
	s[0], s[m] = s[m], s[0]
	insertionSortUnguarded(s, cmp)
}

// HeapSort sorts s in place with a worst-case O(n log n) bound. Not
// stable.
func HeapSort[T any](s []T, cmp func(a, b T) int) {
	MakeHeap(s, cmp)
	SortHeap(s, cmp)
}
