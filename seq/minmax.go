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

// Min returns the lesser of a and b. On a tie it returns a, so that
// Min and Max together split a pair stably.
func Min[T any](a, b T, cmp func(x, y T) int) T {
	if cmp(b, a) < 0 {
		return b
	}
	return a
}

// Max returns the greater of a and b. On a tie it returns b.
func Max[T any](a, b T, cmp func(x, y T) int) T {
	if cmp(a, b) > 0 {
		return a
	}
	return b
}

// MinElement returns the index of the smallest element, keeping the first
// of equal candidates. Returns -1 on an empty slice.
func MinElement[T any](s []T, cmp func(a, b T) int) int {
	if len(s) == 0 {
		return -1
	}
	best := 0
	for i := 1; i < len(s); i++ {
		if cmp(s[i], s[best]) < 0 {
			best = i
		}
	}
	return best
}

// MaxElement returns the index of the largest element, keeping the first
// of equal candidates. Returns -1 on an empty slice.
func MaxElement[T any](s []T, cmp func(a, b T) int) int {
	if len(s) == 0 {
		return -1
	}
	best := 0
	for i := 1; i < len(s); i++ {
		if cmp(s[i], s[best]) > 0 {
			best = i
		}
	}
	return best
}

// MinMaxElement returns the indices of the smallest and largest elements
// in one pass, comparing elements pairwise so the total comparison count
// is about 3n/2 rather than 2n. The minimum keeps the first of equal
// candidates and the maximum the last, matching MinElement and the
// reversed-tie convention of the pairwise scan. Returns (-1, -1) on an
// empty slice.
func MinMaxElement[T any](s []T, cmp func(a, b T) int) (minIdx, maxIdx int) {
	n := len(s)
	if n == 0 {
		return -1, -1
	}
	if n == 1 {
		return 0, 0
	}

	minIdx, maxIdx = 0, 1
	if cmp(s[maxIdx], s[minIdx]) < 0 {
		minIdx, maxIdx = maxIdx, minIdx
	}

	i := 2
	for i+1 < n {
		lo, hi := i, i+1
		if cmp(s[hi], s[lo]) < 0 {
			lo, hi = hi, lo
		}
		if cmp(s[lo], s[minIdx]) < 0 {
			minIdx = lo
		}
		if cmp(s[hi], s[maxIdx]) >= 0 {
			maxIdx = hi
		}
		i += 2
	}

	// odd leftover
	if i < n {
		if cmp(s[i], s[minIdx]) < 0 {
			minIdx = i
		} else if cmp(s[i], s[maxIdx]) >= 0 {
			maxIdx = i
		}
	}
	return minIdx, maxIdx
}
