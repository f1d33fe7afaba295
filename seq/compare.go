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

// Mismatch returns the index of the first position where a and b compare
// unequal. Returns the length of the shorter slice if one is a prefix of
// the other.
func Mismatch[T any](a, b []T, cmp func(x, y T) int) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if cmp(a[i], b[i]) != 0 {
			return i
		}
	}
	return n
}

// Equal reports whether a and b have the same length and every pair of
// corresponding elements compares equal.
func Equal[T any](a, b []T, cmp func(x, y T) int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if cmp(a[i], b[i]) != 0 {
			return false
		}
	}
	return true
}

// Compare orders a and b lexicographically: the result of the first
// unequal element comparison, or the comparison of lengths if one slice
// is a prefix of the other.
func Compare[T any](a, b []T, cmp func(x, y T) int) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if r := cmp(a[i], b[i]); r != 0 {
			return r
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

// IsSortedUntil returns the length of the longest non-decreasing prefix:
// the index of the first element that compares less than its predecessor,
// or len(s) if the whole slice is sorted.
func IsSortedUntil[T any](s []T, cmp func(a, b T) int) int {
	for i := 1; i < len(s); i++ {
		if cmp(s[i-1], s[i]) > 0 {
			return i
		}
	}
	return len(s)
}

// IsSorted reports whether s is non-decreasing under cmp.
func IsSorted[T any](s []T, cmp func(a, b T) int) bool {
	return IsSortedUntil(s, cmp) == len(s)
}

// IsStrictlyIncreasingUntil is IsSortedUntil with ties also ending the
// prefix: every kept element must compare strictly less than its successor.
func IsStrictlyIncreasingUntil[T any](s []T, cmp func(a, b T) int) int {
	for i := 1; i < len(s); i++ {
		if cmp(s[i-1], s[i]) >= 0 {
			return i
		}
	}
	return len(s)
}

// IsStrictlyIncreasing reports whether s is strictly increasing under cmp.
func IsStrictlyIncreasing[T any](s []T, cmp func(a, b T) int) bool {
	return IsStrictlyIncreasingUntil(s, cmp) == len(s)
}
