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

// SwapRanges exchanges the elements of a with the first len(a) elements
// of b. b must have at least len(a) elements. The ranges must not overlap.
func SwapRanges[T any](a, b []T) {
	for i := range a {
		a[i], b[i] = b[i], a[i]
	}
}

// Reverse reverses s in place.
func Reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// ReverseCopy writes the elements of src into dst in reverse order and
// returns the number written. dst must not overlap src.
func ReverseCopy[T any](dst, src []T) int {
	n := 0
	for i := len(src) - 1; i >= 0; i-- {
		dst[n] = src[i]
		n++
	}
	return n
}
