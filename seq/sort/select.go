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

// NthElement rearranges s so that s[k] holds the element a full sort
// would put there, everything before k compares at or below s[k], and
// everything after compares at or above it. Iterative quickselect: each
// Hoare partition narrows to the side containing k, expected linear time.
// k must be a valid index of a non-empty s.
func NthElement[T any](s []T, k int, cmp func(a, b T) int) {
	if len(s) < 2 {
		return
	}
	lo, hi := 0, len(s)
	for hi-lo > 1 {
		m := lo + hoarePartition(s[lo:hi], cmp)
		if m <= k {
			lo = m
		} else {
			hi = m
		}
	}
	assert(lo == k, "quickselect must terminate on the target index")
}

// PartialSort sorts the m smallest elements of s into s[:m] ascending;
// the order of the remainder is unspecified. A max-heap over the window
// tracks the m smallest seen so far: any later element smaller than the
// heap maximum replaces it. m == 0 is a no-op.
func PartialSort[T any](s []T, m int, cmp func(a, b T) int) {
	if m == 0 {
		return
	}
	window := s[:m]
	MakeHeap(window, cmp)
	for i := m; i < len(s); i++ {
		if cmp(s[i], window[0]) < 0 {
			PopHeap(window, cmp)
			window[m-1], s[i] = s[i], window[m-1]
			PushHeap(window, cmp)
		}
	}
	SortHeap(window, cmp)
}

// PartialSortCopy writes the min(len(dst), len(src)) smallest elements of
// src into dst in ascending order, leaving src untouched, and returns the
// count written. dst must not overlap src.
func PartialSortCopy[T any](dst, src []T, cmp func(a, b T) int) int {
	if len(src) == 0 || len(dst) == 0 {
		return 0
	}

	// Stream src into dst, keeping dst a heap as it fills.
	dst[0] = src[0]
	out := 1
	i := 1
	for out < len(dst) {
		if i == len(src) {
			SortHeap(dst[:out], cmp)
			return out
		}
		dst[out] = src[i]
		i++
		out++
		PushHeap(dst[:out], cmp)
	}

	// dst is full: keep the smallest out elements.
	for ; i < len(src); i++ {
		if cmp(src[i], dst[0]) < 0 {
			PopHeap(dst[:out], cmp)
			dst[out-1] = src[i]
			PushHeap(dst[:out], cmp)
		}
	}
	SortHeap(dst[:out], cmp)
	return out
}
