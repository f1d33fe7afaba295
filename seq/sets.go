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

// Set operations over sorted ranges. Both inputs must be non-decreasing
// under cmp; the outputs are again sorted. Duplicates are kept the way the
// two-pointer scan encounters them, they are not collapsed.

// Includes reports whether every element of sub has a matching element in
// super, both sorted. Each element of super can witness at most one
// element of sub, so duplicated sub elements need duplicated matches.
func Includes[T any](sub, super []T, cmp func(a, b T) int) bool {
	if len(sub) == 0 {
		return true
	}
	i := 0
	for j := 0; j < len(super); j++ {
		r := cmp(sub[i], super[j])
		if r < 0 {
			return false
		}
		if r == 0 {
			i++
			if i == len(sub) {
				return true
			}
		}
	}
	return false
}

// Union writes the sorted union of a and b into dst and returns the count
// written. A pair of equal heads contributes one element, taken from b to
// mirror Merge's tie rule. dst needs room for up to len(a)+len(b)
// elements and must not overlap the inputs.
func Union[T any](dst, a, b []T, cmp func(x, y T) int) int {
	n, i, j := 0, 0, 0
	for {
		if i == len(a) {
			return n + copy(dst[n:], b[j:])
		}
		if j == len(b) {
			return n + copy(dst[n:], a[i:])
		}
		r := cmp(a[i], b[j])
		switch {
		case r == 0:
			dst[n] = b[j]
			i++
			j++
		case r > 0:
			dst[n] = b[j]
			j++
		default:
			dst[n] = a[i]
			i++
		}
		n++
	}
}

// Intersection writes the elements of a that also occur in b into dst and
// returns the count written. Equal heads advance both inputs, so an
// element appears as many times as it occurs in both. dst may alias a.
func Intersection[T any](dst, a, b []T, cmp func(x, y T) int) int {
	n, i, j := 0, 0, 0
	for i < len(a) && j < len(b) {
		r := cmp(a[i], b[j])
		switch {
		case r == 0:
			dst[n] = a[i]
			n++
			i++
			j++
		case r < 0:
			i++
		default:
			j++
		}
	}
	return n
}

// Difference writes the elements of a without a matching element in b
// into dst and returns the count written. dst may alias a: the write
// cursor never runs ahead of the read cursor.
func Difference[T any](dst, a, b []T, cmp func(x, y T) int) int {
	n, i, j := 0, 0, 0
	for i < len(a) && j < len(b) {
		r := cmp(a[i], b[j])
		switch {
		case r == 0:
			i++
			j++
		case r < 0:
			dst[n] = a[i]
			n++
			i++
		default:
			j++
		}
	}
	return n + copy(dst[n:], a[i:])
}
