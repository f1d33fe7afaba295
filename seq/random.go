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

// Source yields uniform random ints in [0, n). *math/rand.Rand satisfies
// it. Randomness is always passed in explicitly, so every operation in
// this package is deterministic under a caller-seeded source.
type Source interface {
	Intn(n int) int
}

// Shuffle permutes s uniformly at random with a Fisher-Yates pass from
// the end: each position trades places with a uniformly drawn position at
// or below it.
func Shuffle[T any](r Source, s []T) {
	for n := len(s); n > 1; {
		j := r.Intn(n)
		n--
		s[n], s[j] = s[j], s[n]
	}
}

// Sample fills dst with a uniform random subset of src by reservoir
// sampling (Algorithm R) and returns the number written,
// min(len(dst), len(src)). When src fits entirely, it is copied through
// in order; otherwise each later element of src replaces a random
// reservoir slot with decaying probability.
func Sample[T any](r Source, dst, src []T) int {
	k := len(dst)
	for n := 0; n < k; n++ {
		if n == len(src) {
			return n
		}
		dst[n] = src[n]
	}
	for i := k; i < len(src); i++ {
		j := r.Intn(i + 1)
		if j < k {
			dst[j] = src[i]
		}
	}
	return k
}
