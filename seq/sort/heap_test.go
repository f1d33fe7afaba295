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

package sort

import (
	"math/rand"
	"testing"

	"github.com/ajroetker/go-seq/seq"
	"github.com/stretchr/testify/require"
)

func TestIsHeap(t *testing.T) {
	tests := []struct {
		name   string
		s      []int
		expect bool
	}{
		{"empty", nil, true},
		{"single", []int{1}, true},
		{"valid", []int{9, 5, 8, 3, 4, 7}, true},
		{"left child too big", []int{5, 9, 3}, false},
		{"deep violation", []int{9, 5, 8, 3, 6, 7}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expect, IsHeap(tt.s, seq.Ascending[int]))
		})
	}

	require.Equal(t, 1, IsHeapUntil([]int{5, 9, 3}, seq.Ascending))
	require.Equal(t, 3, IsHeapUntil([]int{9, 5, 8}, seq.Ascending))
}

func TestPushPopHeap(t *testing.T) {
	r := rand.New(rand.NewSource(5))

	s := make([]int, 0, 64)
	for len(s) < 64 {
		s = append(s, r.Intn(100))
		PushHeap(s, seq.Ascending)
		require.True(t, IsHeap(s, seq.Ascending[int]), "after push %d", len(s))
	}

	prev := s[0]
	for n := len(s); n > 0; n-- {
		top := s[0]
		require.LessOrEqual(t, top, prev)
		PopHeap(s[:n], seq.Ascending)
		require.Equal(t, top, s[n-1])
		require.True(t, IsHeap(s[:n-1], seq.Ascending[int]), "after pop %d", n)
		prev = top
	}
}

func TestMakeHeap(t *testing.T) {
	r := rand.New(rand.NewSource(6))

	for _, n := range []int{0, 1, 2, 3, 7, 8, 100} {
		s := make([]int, n)
		for i := range s {
			s[i] = r.Intn(50)
		}
		MakeHeap(s, seq.Ascending)
		require.True(t, IsHeap(s, seq.Ascending[int]), "length %d", n)
	}
}

func TestSortHeap(t *testing.T) {
	s := []int{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5}
	MakeHeap(s, seq.Ascending)
	SortHeap(s, seq.Ascending)
	require.Equal(t, []int{1, 1, 2, 3, 3, 4, 5, 5, 5, 6, 9}, s)
}
