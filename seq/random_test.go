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
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShuffle(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	// Every shuffle is a permutation of the input.
	s := []int{1, 2, 3, 4, 5, 6, 7, 8}
	for i := 0; i < 10; i++ {
		Shuffle(r, s)
		require.ElementsMatch(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, s)
	}

	// Degenerate lengths never touch the source.
	Shuffle(nil, []int{})
	Shuffle(nil, []int{42})
}

func TestShuffleDistribution(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	counts := map[string]int{}

	const trials = 6000
	for i := 0; i < trials; i++ {
		s := []byte("abc")
		Shuffle(r, s)
		counts[string(s)]++
	}

	// All 3! arrangements show up, each within a loose band around the
	// uniform expectation of 1000.
	require.Len(t, counts, 6)
	for perm, c := range counts {
		require.Greater(t, c, 800, "permutation %q", perm)
		require.Less(t, c, 1200, "permutation %q", perm)
	}
}

func TestSample(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	src := []int{10, 20, 30, 40, 50, 60, 70, 80, 90, 100}

	dst := make([]int, 4)
	n := Sample(r, dst, src)
	require.Equal(t, 4, n)
	for _, v := range dst {
		require.Contains(t, src, v)
	}

	// No element is picked twice.
	seen := map[int]bool{}
	for _, v := range dst {
		require.False(t, seen[v])
		seen[v] = true
	}
}

func TestSampleSmallSource(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	src := []int{1, 2, 3}

	// A reservoir at least as large as the source receives it verbatim.
	dst := make([]int, 5)
	n := Sample(r, dst, src)
	require.Equal(t, 3, n)
	require.Equal(t, []int{1, 2, 3}, dst[:n])

	require.Equal(t, 0, Sample(r, dst, nil))
	require.Equal(t, 0, Sample(r, nil, src))
}

func TestSampleDistribution(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	src := []int{0, 1, 2, 3, 4}
	counts := make([]int, len(src))

	const trials = 5000
	dst := make([]int, 2)
	for i := 0; i < trials; i++ {
		Sample(r, dst, src)
		counts[dst[0]]++
		counts[dst[1]]++
	}

	// Each element is chosen with probability k/n = 2/5, i.e. about 2000
	// appearances over 5000 trials.
	for v, c := range counts {
		require.Greater(t, c, 1700, "element %d", v)
		require.Less(t, c, 2300, "element %d", v)
	}
}
