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

func TestSwapRanges(t *testing.T) {
	dog := []byte("dog")
	cat := []byte("cat")
	SwapRanges(dog, cat)
	require.Equal(t, "cat", string(dog))
	require.Equal(t, "dog", string(cat))
}

func TestReverse(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		expect string
	}{
		{"odd", "dog", "god"},
		{"even", "people", "elpoep"},
		{"single", "x", "x"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := []byte(tt.in)
			Reverse(s)
			require.Equal(t, tt.expect, string(s))
		})
	}
}

func TestReverseCopy(t *testing.T) {
	out := make([]byte, 6)
	n := ReverseCopy(out, []byte("people"))
	require.Equal(t, 6, n)
	require.Equal(t, "elpoep", string(out))

	require.Equal(t, 0, ReverseCopy(out, nil))
}
