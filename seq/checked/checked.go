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

package checked

import (
	"errors"
	"fmt"

	"github.com/ajroetker/go-seq/seq"
	"github.com/ajroetker/go-seq/seq/sort"
)

// Sentinel errors for violated preconditions; match with errors.Is.
var (
	ErrNotSorted      = errors.New("input range is not sorted")
	ErrBufferTooSmall = errors.New("auxiliary buffer is too small")
	ErrNotHeap        = errors.New("range is not a max-heap")
)

func checkSorted[T any](op, which string, s []T, cmp func(a, b T) int) error {
	if i := seq.IsSortedUntil(s, cmp); i != len(s) {
		return fmt.Errorf("%s: %s unsorted at index %d: %w", op, which, i, ErrNotSorted)
	}
	return nil
}

// Merge is seq.Merge validating that both inputs are sorted and that dst
// can hold the merged result.
func Merge[T any](dst, a, b []T, cmp func(x, y T) int) (int, error) {
	if err := checkSorted("merge", "first input", a, cmp); err != nil {
		return 0, err
	}
	if err := checkSorted("merge", "second input", b, cmp); err != nil {
		return 0, err
	}
	if len(dst) < len(a)+len(b) {
		return 0, fmt.Errorf("merge: output holds %d of %d: %w", len(dst), len(a)+len(b), ErrBufferTooSmall)
	}
	return seq.Merge(dst, a, b, cmp), nil
}

// MergeWithBuffer is seq.MergeWithBuffer validating the split point, the
// sortedness of both halves, and the scratch capacity.
func MergeWithBuffer[T any](s []T, mid int, buf []T, cmp func(x, y T) int) error {
	if mid < 0 || mid > len(s) {
		return fmt.Errorf("merge: split %d outside [0, %d]", mid, len(s))
	}
	if err := checkSorted("merge", "left half", s[:mid], cmp); err != nil {
		return err
	}
	if err := checkSorted("merge", "right half", s[mid:], cmp); err != nil {
		return err
	}
	if len(buf) < mid {
		return fmt.Errorf("merge: scratch holds %d of %d: %w", len(buf), mid, ErrBufferTooSmall)
	}
	seq.MergeWithBuffer(s, mid, buf, cmp)
	return nil
}

// Union is seq.Union validating both inputs.
func Union[T any](dst, a, b []T, cmp func(x, y T) int) (int, error) {
	if err := checkSorted("union", "first input", a, cmp); err != nil {
		return 0, err
	}
	if err := checkSorted("union", "second input", b, cmp); err != nil {
		return 0, err
	}
	return seq.Union(dst, a, b, cmp), nil
}

// Intersection is seq.Intersection validating both inputs.
func Intersection[T any](dst, a, b []T, cmp func(x, y T) int) (int, error) {
	if err := checkSorted("intersection", "first input", a, cmp); err != nil {
		return 0, err
	}
	if err := checkSorted("intersection", "second input", b, cmp); err != nil {
		return 0, err
	}
	return seq.Intersection(dst, a, b, cmp), nil
}

// Difference is seq.Difference validating both inputs.
func Difference[T any](dst, a, b []T, cmp func(x, y T) int) (int, error) {
	if err := checkSorted("difference", "first input", a, cmp); err != nil {
		return 0, err
	}
	if err := checkSorted("difference", "second input", b, cmp); err != nil {
		return 0, err
	}
	return seq.Difference(dst, a, b, cmp), nil
}

// Includes is seq.Includes validating both inputs.
func Includes[T any](sub, super []T, cmp func(a, b T) int) (bool, error) {
	if err := checkSorted("includes", "subset input", sub, cmp); err != nil {
		return false, err
	}
	if err := checkSorted("includes", "superset input", super, cmp); err != nil {
		return false, err
	}
	return seq.Includes(sub, super, cmp), nil
}

// LowerBound is seq.LowerBound validating that s is sorted.
func LowerBound[T any](s []T, value T, cmp func(a, b T) int) (int, error) {
	if err := checkSorted("lower bound", "input", s, cmp); err != nil {
		return 0, err
	}
	return seq.LowerBound(s, value, cmp), nil
}

// UpperBound is seq.UpperBound validating that s is sorted.
func UpperBound[T any](s []T, value T, cmp func(a, b T) int) (int, error) {
	if err := checkSorted("upper bound", "input", s, cmp); err != nil {
		return 0, err
	}
	return seq.UpperBound(s, value, cmp), nil
}

// EqualRange is seq.EqualRange validating that s is sorted.
func EqualRange[T any](s []T, value T, cmp func(a, b T) int) (lo, hi int, err error) {
	if err := checkSorted("equal range", "input", s, cmp); err != nil {
		return 0, 0, err
	}
	lo, hi = seq.EqualRange(s, value, cmp)
	return lo, hi, nil
}

// BinarySearch is seq.BinarySearch validating that s is sorted.
func BinarySearch[T any](s []T, value T, cmp func(a, b T) int) (int, bool, error) {
	if err := checkSorted("binary search", "input", s, cmp); err != nil {
		return 0, false, err
	}
	i, ok := seq.BinarySearch(s, value, cmp)
	return i, ok, nil
}

// Unique is seq.Unique validating that s is sorted.
func Unique[T any](s []T, cmp func(a, b T) int) ([]T, error) {
	if err := checkSorted("unique", "input", s, cmp); err != nil {
		return nil, err
	}
	return seq.Unique(s, cmp), nil
}

// UniqueCount is seq.UniqueCount validating that s is sorted.
func UniqueCount[T any](s []T, cmp func(a, b T) int) (int, error) {
	if err := checkSorted("unique count", "input", s, cmp); err != nil {
		return 0, err
	}
	return seq.UniqueCount(s, cmp), nil
}

// StableSortWithBuffer is sort.StableSortWithBuffer validating the
// scratch capacity.
func StableSortWithBuffer[T any](s, buf []T, cmp func(a, b T) int) error {
	if len(buf) < len(s)/2 {
		return fmt.Errorf("stable sort: scratch holds %d of %d: %w", len(buf), len(s)/2, ErrBufferTooSmall)
	}
	sort.StableSortWithBuffer(s, buf, cmp)
	return nil
}

// PushHeap is sort.PushHeap validating that everything below the new
// element already forms a heap.
func PushHeap[T any](s []T, cmp func(a, b T) int) error {
	if n := len(s); n > 0 && !sort.IsHeap(s[:n-1], cmp) {
		return fmt.Errorf("push heap: %w", ErrNotHeap)
	}
	sort.PushHeap(s, cmp)
	return nil
}

// PopHeap is sort.PopHeap validating the heap shape of s.
func PopHeap[T any](s []T, cmp func(a, b T) int) error {
	if !sort.IsHeap(s, cmp) {
		return fmt.Errorf("pop heap: %w", ErrNotHeap)
	}
	sort.PopHeap(s, cmp)
	return nil
}

// SortHeap is sort.SortHeap validating the heap shape of s.
func SortHeap[T any](s []T, cmp func(a, b T) int) error {
	if !sort.IsHeap(s, cmp) {
		return fmt.Errorf("sort heap: %w", ErrNotHeap)
	}
	sort.SortHeap(s, cmp)
	return nil
}
