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

package seq

// PartitionPoint returns the boundary of a predicate-partitioned slice:
// pred must hold for a prefix of s and fail for the rest, and the returned
// index is the length of that prefix, found in O(log n) predicate calls.
// If pred is not monotonic over s the result is some index in [0, len(s)],
// but which one is unspecified.
func PartitionPoint[T any](s []T, pred func(T) bool) int {
	first := 0
	n := len(s)
	for n > 0 {
		half := n >> 1
		mid := first + half
		if pred(s[mid]) {
			first = mid + 1
			n -= half + 1
		} else {
			n = half
		}
	}
	return first
}

// LowerBound returns the first index at which value could be inserted
// into the sorted slice s without breaking the order: the first position
// whose element does not compare less than value.
func LowerBound[T any](s []T, value T, cmp func(a, b T) int) int {
	return PartitionPoint(s, func(x T) bool {
		return cmp(x, value) < 0
	})
}

// UpperBound returns the last index at which value could be inserted into
// the sorted slice s without breaking the order: the first position whose
// element compares greater than value.
func UpperBound[T any](s []T, value T, cmp func(a, b T) int) int {
	return PartitionPoint(s, func(x T) bool {
		return cmp(value, x) >= 0
	})
}

// EqualRange returns the half-open index range of elements comparing
// equal to value in the sorted slice s. The upper bound search resumes
// from the lower bound rather than rescanning the prefix.
func EqualRange[T any](s []T, value T, cmp func(a, b T) int) (lo, hi int) {
	lo = LowerBound(s, value, cmp)
	hi = lo + UpperBound(s[lo:], value, cmp)
	return lo, hi
}

// BinarySearch reports whether value occurs in the sorted slice s,
// returning the position of its first occurrence when found, or the
// insertion position when not.
func BinarySearch[T any](s []T, value T, cmp func(a, b T) int) (int, bool) {
	i := LowerBound(s, value, cmp)
	return i, i < len(s) && cmp(s[i], value) == 0
}
