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

// IsHeapUntil returns the length of the longest prefix of s that is a
// max-heap: the index of the first element that compares greater than its
// parent, or len(s) if the whole slice is a heap.
func IsHeapUntil[T any](s []T, cmp func(a, b T) int) int {
	for i := 1; i < len(s); i++ {
		if cmp(s[(i-1)>>1], s[i]) < 0 {
			return i
		}
	}
	return len(s)
}

// IsHeap reports whether s is a max-heap under cmp.
func IsHeap[T any](s []T, cmp func(a, b T) int) bool {
	return IsHeapUntil(s, cmp) == len(s)
}

// PushHeap inserts the last element of s into the heap s[:len(s)-1],
// sifting it up past every smaller parent. O(log n) comparisons.
func PushHeap[T any](s []T, cmp func(a, b T) int) {
	i := len(s) - 1
	for i > 0 {
		parent := (i - 1) >> 1
		if cmp(s[i], s[parent]) <= 0 {
			break
		}
		s[i], s[parent] = s[parent], s[i]
		i = parent
	}
}

// PopHeap moves the largest element of the heap s to s[len(s)-1] and
// restores the heap property over s[:len(s)-1]. O(log n) comparisons.
func PopHeap[T any](s []T, cmp func(a, b T) int) {
	n := len(s) - 1
	if n < 1 {
		return
	}
	s[0], s[n] = s[n], s[0]
	siftDown(s[:n], 0, cmp)
}

// siftDown sinks s[i] until neither child compares greater.
func siftDown[T any](s []T, i int, cmp func(a, b T) int) {
	n := len(s)
	for {
		largest := i
		left := 2*i + 1
		right := 2*i + 2

		if left < n && cmp(s[left], s[largest]) > 0 {
			largest = left
		}
		if right < n && cmp(s[right], s[largest]) > 0 {
			largest = right
		}
		if largest == i {
			return
		}

		s[i], s[largest] = s[largest], s[i]
		i = largest
	}
}

// MakeHeap rearranges s into a max-heap with a bottom-up sift-down build,
// O(n) comparisons. An equivalent heap can be grown incrementally by
// calling PushHeap over extending prefixes.
func MakeHeap[T any](s []T, cmp func(a, b T) int) {
	for i := len(s)/2 - 1; i >= 0; i-- {
		siftDown(s, i, cmp)
	}
}

// SortHeap turns the max-heap s into an ascending sorted slice by
// repeatedly popping the maximum into the shrinking tail.
func SortHeap[T any](s []T, cmp func(a, b T) int) {
	for n := len(s); n > 1; n-- {
		PopHeap(s[:n], cmp)
	}
}
