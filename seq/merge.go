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

// Merge combines two sorted slices into dst and returns the number of
// elements written, always len(a)+len(b). When heads compare equal the
// element from b is taken first; MergeWithBuffer and the stable sort rely
// on exactly this tie-break. dst must not overlap a or b, except for the
// controlled aliasing MergeWithBuffer sets up.
func Merge[T any](dst, a, b []T, cmp func(x, y T) int) int {
	n, i, j := 0, 0, 0
	for i < len(a) && j < len(b) {
		if cmp(a[i], b[j]) >= 0 {
			dst[n] = b[j]
			j++
		} else {
			dst[n] = a[i]
			i++
		}
		n++
	}
	n += copy(dst[n:], a[i:])
	n += copy(dst[n:], b[j:])
	return n
}

// MergeWithBuffer merges the two sorted halves s[:mid] and s[mid:] back
// into s using buf as scratch, so a full-length temporary is never needed:
// the left half is copied out to buf and then merged against the right
// half in place. The buffered left half is passed as Merge's second input,
// whose elements win ties, so equal elements keep their original
// left-before-right order and the stable sort built on top stays stable.
// The merge cursor never overtakes the unread right half, which is what
// makes the aliasing safe. buf must hold at least mid elements.
func MergeWithBuffer[T any](s []T, mid int, buf []T, cmp func(x, y T) int) {
	left := buf[:mid]
	copy(left, s[:mid])
	Merge(s, s[mid:], left, cmp)
}
