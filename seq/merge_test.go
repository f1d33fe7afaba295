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

func TestMerge(t *testing.T) {
	tests := []struct {
		name   string
		a, b   []int
		expect []int
	}{
		{
			name:   "interleaved",
			a:      []int{1, 1, 3, 4},
			b:      []int{-1, 1, 2, 3, 4, 5},
			expect: []int{-1, 1, 1, 1, 2, 3, 3, 4, 4, 5},
		},
		{
			name:   "disjoint",
			a:      []int{1, 2, 3},
			b:      []int{4, 5, 6},
			expect: []int{1, 2, 3, 4, 5, 6},
		},
		{
			name:   "empty a",
			a:      nil,
			b:      []int{1, 2},
			expect: []int{1, 2},
		},
		{
			name:   "empty b",
			a:      []int{1, 2},
			b:      nil,
			expect: []int{1, 2},
		},
		{
			name:   "both empty",
			a:      nil,
			b:      nil,
			expect: []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := make([]int, len(tt.a)+len(tt.b))
			n := Merge(dst, tt.a, tt.b, Ascending[int])
			require.Equal(t, len(tt.expect), n)
			require.Equal(t, tt.expect, dst[:n])
		})
	}
}

func TestMergeTieBreak(t *testing.T) {
	a := []tagged{{1, 10}, {2, 11}}
	b := []tagged{{1, 20}, {2, 21}}
	dst := make([]tagged, 4)

	// Equal heads take the element from the second input first.
	Merge(dst, a, b, byKey)
	require.Equal(t, []tagged{{1, 20}, {1, 10}, {2, 21}, {2, 11}}, dst)
}

func TestMergeWithBuffer(t *testing.T) {
	s := []int{1, 3, 5, 7, 0, 2, 4, 6, 8, 9}
	buf := make([]int, 4)
	MergeWithBuffer(s, 4, buf, Ascending)
	require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, s)
}

func TestMergeWithBufferStability(t *testing.T) {
	// Elements from the left half must land before equal elements from
	// the right half.
	s := []tagged{{1, 0}, {2, 1}, {1, 2}, {2, 3}}
	buf := make([]tagged, 2)
	MergeWithBuffer(s, 2, buf, byKey)
	require.Equal(t, []tagged{{1, 0}, {1, 2}, {2, 1}, {2, 3}}, s)
}

func TestMergeWithBufferDegenerate(t *testing.T) {
	s := []int{4, 5, 6, 1, 2, 3}
	buf := make([]int, len(s))

	// mid == 0 leaves the slice untouched.
	MergeWithBuffer(s, 0, buf, Ascending)
	require.Equal(t, []int{4, 5, 6, 1, 2, 3}, s)

	// mid == len(s) reduces to a copy through the buffer.
	MergeWithBuffer(s, len(s), buf, Ascending)
	require.Equal(t, []int{4, 5, 6, 1, 2, 3}, s)
}
