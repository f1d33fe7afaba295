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

// insertionSortUnguarded inserts each element into the sorted prefix with
// a shift loop that has no lower bound check: it runs while the key
// compares less than its predecessor. s[0] must already hold a minimum of
// s, the sentinel that stops every shift at index 0 at the latest.
func insertionSortUnguarded[T any](s []T, cmp func(a, b T) int) {
	for i := 1; i < len(s); i++ {
		x := s[i]
		j := i - 1
		for cmp(x, s[j]) < 0 {
			s[j+1] = s[j]
			j--
		}
		s[j+1] = x
	}
}

// rotateRight shifts s up by one slot, moving the last element to the
// front and keeping the order of the rest.
func rotateRight[T any](s []T) {
	if len(s) == 0 {
		return
	}
	x := s[len(s)-1]
	copy(s[1:], s[:len(s)-1])
	s[0] = x
}

// InsertionSort sorts s in place, O(n²) worst case but fast on short or
// nearly sorted input. The global minimum is swapped to the front first
// so the unguarded shift pass never has to check the range start. Not
// stable: the seeding swap can reorder equal elements.
func InsertionSort[T any](s []T, cmp func(a, b T) int) {
	if len(s) < 2 {
		return
	}
	m := seq.MinElement(s, cmp)
	s[0], s[m] = s[m], s[0]
	insertionSortUnguarded(s, cmp)
}

// InsertionSortStable is InsertionSort seeding the sentinel with a
// rotate-right of the prefix ending at the first minimum instead of a
// swap, which preserves the relative order of equal elements.
func InsertionSortStable[T any](s []T, cmp func(a, b T) int) {
	if len(s) < 2 {
		return
	}
	m := seq.MinElement(s, cmp)
	rotateRight(s[:m+1])
	insertionSortUnguarded(s, cmp)
}
