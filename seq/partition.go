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

// IsPartitioned reports whether s consists of a (possibly empty) prefix of
// elements satisfying pred followed by a (possibly empty) suffix of
// elements failing it.
func IsPartitioned[T any](s []T, pred func(T) bool) bool {
	i := 0
	for i < len(s) && pred(s[i]) {
		i++
	}
	for ; i < len(s); i++ {
		if pred(s[i]) {
			return false
		}
	}
	return true
}

// Partition moves the elements satisfying pred to the front of s and
// returns the boundary index. The relative order within each group is not
// preserved: each match is swapped into the next slot of the growing
// true-prefix.
func Partition[T any](s []T, pred func(T) bool) int {
	out := 0
	for i := range s {
		if pred(s[i]) {
			s[out], s[i] = s[i], s[out]
			out++
		}
	}
	return out
}

// PartitionCopy streams src into two disjoint outputs: elements satisfying
// pred into dstTrue, the rest into dstFalse, preserving relative order
// within each. It returns the counts written. Neither output may overlap
// src, and each must have room for its share.
func PartitionCopy[T any](dstTrue, dstFalse, src []T, pred func(T) bool) (nTrue, nFalse int) {
	for i := range src {
		if pred(src[i]) {
			dstTrue[nTrue] = src[i]
			nTrue++
		} else {
			dstFalse[nFalse] = src[i]
			nFalse++
		}
	}
	return nTrue, nFalse
}
