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

// Unique collapses runs of equal adjacent elements of the sorted slice s
// down to their first element and returns the trimmed slice over the same
// backing array. Each survivor is compared against the last kept element,
// so only sorted input collapses all duplicates. Elements beyond the
// returned length are unspecified.
func Unique[T any](s []T, cmp func(a, b T) int) []T {
	if len(s) == 0 {
		return s
	}
	out := 0
	for i := 1; i < len(s); i++ {
		if cmp(s[out], s[i]) != 0 {
			out++
			s[out] = s[i]
		}
	}
	return s[:out+1]
}

// UniqueCopy writes the first element of every run of equal adjacent
// elements of the sorted slice src into dst and returns the count
// written. dst must not overlap src.
func UniqueCopy[T any](dst, src []T, cmp func(a, b T) int) int {
	if len(src) == 0 {
		return 0
	}
	dst[0] = src[0]
	out := 0
	for i := 1; i < len(src); i++ {
		if cmp(dst[out], src[i]) != 0 {
			out++
			dst[out] = src[i]
		}
	}
	return out + 1
}

// UniqueCount returns the number of runs of equal adjacent elements in
// the sorted slice s, without modifying it. Returns 0 on an empty slice.
func UniqueCount[T any](s []T, cmp func(a, b T) int) int {
	if len(s) == 0 {
		return 0
	}
	count := 1
	group := 0
	for i := 1; i < len(s); i++ {
		if cmp(s[group], s[i]) != 0 {
			count++
			group = i
		}
	}
	return count
}
