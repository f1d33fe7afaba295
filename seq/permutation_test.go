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

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNextPermutation(t *testing.T) {
	s := []int{1, 2, 3}

	NextPermutation(s, Ascending)
	require.Equal(t, []int{1, 3, 2}, s)
	NextPermutation(s, Ascending)
	require.Equal(t, []int{2, 1, 3}, s)
	NextPermutation(s, Ascending)
	require.Equal(t, []int{2, 3, 1}, s)
}

func TestNextPermutationEnumerates(t *testing.T) {
	s := []int{1, 2, 3, 4}
	seen := map[[4]int]bool{{1, 2, 3, 4}: true}

	// From ascending order, 23 further permutations follow before the
	// sequence wraps.
	for i := 0; i < 23; i++ {
		require.True(t, NextPermutation(s, Ascending))
		var key [4]int
		copy(key[:], s)
		require.False(t, seen[key], "permutation %v repeated", s)
		seen[key] = true
	}

	// The wrapping call restores ascending order and reports it.
	require.False(t, NextPermutation(s, Ascending))
	require.Equal(t, []int{1, 2, 3, 4}, s)
	require.Len(t, seen, 24)
}

func TestNextPermutationDuplicates(t *testing.T) {
	// Equal elements shrink the orbit: "aab" has three distinct
	// arrangements, not six.
	s := []byte("aab")
	asc := func(a, b byte) int { return int(a) - int(b) }

	require.True(t, NextPermutation(s, asc))
	require.Equal(t, "aba", string(s))
	require.True(t, NextPermutation(s, asc))
	require.Equal(t, "baa", string(s))
	require.False(t, NextPermutation(s, asc))
	require.Equal(t, "aab", string(s))
}

func TestNextPermutationEdge(t *testing.T) {
	require.False(t, NextPermutation(nil, Ascending[int]))

	one := []int{5}
	require.False(t, NextPermutation(one, Ascending))
	require.Equal(t, []int{5}, one)
}
