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

// NextPermutation rearranges s into the lexicographically next permutation
// under cmp and returns true. When s is already the last permutation (the
// whole slice is non-increasing) it wraps around to the first, ascending,
// permutation and returns false. Starting from ascending order, repeated
// calls enumerate all n! permutations of n distinct elements.
func NextPermutation[T any](s []T, cmp func(a, b T) int) bool {
	n := len(s)
	if n == 0 {
		return false
	}

	// Walk back over the longest non-increasing suffix s[i:].
	i := n - 1
	for i > 0 && cmp(s[i-1], s[i]) >= 0 {
		i--
	}
	if i == 0 {
		Reverse(s)
		return false
	}

	// s[i-1] is the pivot. Swap it with the rightmost suffix element that
	// exceeds it, then restore the suffix to ascending order.
	j := n - 1
	for cmp(s[i-1], s[j]) >= 0 {
		j--
	}
	s[i-1], s[j] = s[j], s[i-1]
	Reverse(s[i:])
	return true
}
