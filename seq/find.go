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

// FindIf returns the index of the first element satisfying pred.
// Returns -1 if no element matches.
func FindIf[T any](s []T, pred func(T) bool) int {
	for i := range s {
		if pred(s[i]) {
			return i
		}
	}
	return -1
}

// FindIfNot returns the index of the first element not satisfying pred.
// Returns -1 if every element matches.
func FindIfNot[T any](s []T, pred func(T) bool) int {
	for i := range s {
		if !pred(s[i]) {
			return i
		}
	}
	return -1
}

// FindLastIf returns the index of the last element satisfying pred.
// Returns -1 if no element matches.
func FindLastIf[T any](s []T, pred func(T) bool) int {
	found := -1
	for i := range s {
		if pred(s[i]) {
			found = i
		}
	}
	return found
}

// FindIfUnguarded is FindIf without a bound check. The caller guarantees
// that some element in s satisfies pred; the scan stops at the first one.
func FindIfUnguarded[T any](s []T, pred func(T) bool) int {
	i := 0
	for !pred(s[i]) {
		i++
	}
	return i
}

// FindIfNotUnguarded is FindIfNot without a bound check. The caller
// guarantees that some element in s fails pred.
func FindIfNotUnguarded[T any](s []T, pred func(T) bool) int {
	i := 0
	for pred(s[i]) {
		i++
	}
	return i
}

// AdjacentFind returns the first index i such that s[i] and s[i+1] compare
// equal. Returns -1 if no adjacent pair does.
func AdjacentFind[T any](s []T, cmp func(a, b T) int) int {
	for i := 0; i+1 < len(s); i++ {
		if cmp(s[i], s[i+1]) == 0 {
			return i
		}
	}
	return -1
}

// Any reports whether pred holds for at least one element.
// Short-circuits on the first match.
func Any[T any](s []T, pred func(T) bool) bool {
	return FindIf(s, pred) != -1
}

// All reports whether pred holds for every element.
// Short-circuits on the first failure. True on an empty slice.
func All[T any](s []T, pred func(T) bool) bool {
	return FindIfNot(s, pred) == -1
}

// None reports whether pred holds for no element.
// True on an empty slice.
func None[T any](s []T, pred func(T) bool) bool {
	return FindIf(s, pred) == -1
}

// CountIf returns the number of elements satisfying pred.
func CountIf[T any](s []T, pred func(T) bool) int {
	count := 0
	for i := range s {
		if pred(s[i]) {
			count++
		}
	}
	return count
}
