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

// CopyIf copies the elements of src satisfying pred into dst, preserving
// their relative order, and returns the number copied. dst must not
// overlap src and must have room for every match.
func CopyIf[T any](dst, src []T, pred func(T) bool) int {
	n := 0
	for i := range src {
		if pred(src[i]) {
			dst[n] = src[i]
			n++
		}
	}
	return n
}

// CopyBackward copies src into the tail of dst, writing from back to
// front, and returns the index in dst where the copied block begins.
// The backward order makes it safe for dst to overlap src when the
// destination lies at or above the source, which is the shift-up case.
func CopyBackward[T any](dst, src []T) int {
	i := len(src)
	j := len(dst)
	for i > 0 {
		i--
		j--
		dst[j] = src[i]
	}
	return j
}

// Fill overwrites every element of s with v.
func Fill[T any](s []T, v T) {
	for i := range s {
		s[i] = v
	}
}

// FillN overwrites the first n elements of s with v.
func FillN[T any](s []T, n int, v T) {
	for i := 0; i < n; i++ {
		s[i] = v
	}
}

// RemoveIf moves the elements not satisfying pred to the front of s,
// preserving their relative order, and returns the trimmed slice.
// The elements beyond the returned length are unspecified.
func RemoveIf[T any](s []T, pred func(T) bool) []T {
	out := 0
	for i := range s {
		if !pred(s[i]) {
			s[out] = s[i]
			out++
		}
	}
	return s[:out]
}

// RemoveIfNot is RemoveIf with the predicate inverted: it keeps the
// elements satisfying pred.
func RemoveIfNot[T any](s []T, pred func(T) bool) []T {
	out := 0
	for i := range s {
		if pred(s[i]) {
			s[out] = s[i]
			out++
		}
	}
	return s[:out]
}

// ReplaceIf overwrites every element satisfying pred with v.
func ReplaceIf[T any](s []T, v T, pred func(T) bool) {
	for i := range s {
		if pred(s[i]) {
			s[i] = v
		}
	}
}

// Insert places vals into s at index at, shifting s[at:] up to make room,
// and returns the extended slice. The backing array must already have
// capacity for len(s)+len(vals) elements; Insert never allocates.
func Insert[T any](s []T, at int, vals []T) []T {
	n := len(s)
	s = s[:n+len(vals)]
	copy(s[at+len(vals):], s[at:n])
	copy(s[at:], vals)
	return s
}
