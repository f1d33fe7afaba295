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

// mergeSortAdaptive sorts s with the recursive merge sort, switching to
// the stable insertion sort on short spans. buf only ever needs to hold
// the left half of the current span, which is why half-length scratch
// suffices for the whole sort.
func mergeSortAdaptive[T any](s []T, buf []T, cmp func(a, b T) int) {
	if len(s) <= stableCutoff {
		InsertionSortStable(s, cmp)
		return
	}
	half := len(s) / 2
	mergeSortAdaptive(s[:half], buf, cmp)
	mergeSortAdaptive(s[half:], buf, cmp)
	seq.MergeWithBuffer(s, half, buf, cmp)
}

// StableSort sorts s in place preserving the relative order of elements
// that compare equal. This convenience entry point allocates a scratch
// buffer of len(s)/2 elements for the duration of the call; use
// StableSortWithBuffer to supply your own.
func StableSort[T any](s []T, cmp func(a, b T) int) {
	buf := make([]T, len(s)/2)
	mergeSortAdaptive(s, buf, cmp)
}

// StableSortWithBuffer is StableSort without internal allocation. buf
// must hold at least len(s)/2 elements; its contents are clobbered.
func StableSortWithBuffer[T any](s, buf []T, cmp func(a, b T) int) {
	mergeSortAdaptive(s, buf, cmp)
}
