// Package sort implements merge sort over generic slices. All functions,
// with the exception of SortInPlace and SortInPlaceFunc, return newly allocated
// slices and never modify their arguments.
package sort

import (
	"errors"
	"fmt"

	"github.com/golang/glog"
	"golang.org/x/exp/constraints"
)

// ErrInvalidRange error returns when Sort is called with bounds which do not
// satisfy 0 <= from <= to < len(sequence)
var ErrInvalidRange = errors.New("invalid range")

// Comparable is satisfied by any type supporting the < <= >= > operators.
type Comparable interface {
	constraints.Ordered
}

func compare[T Comparable](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Merge combines two slices sorted in non-decreasing order into a new sorted slice.
// When elements of left and right are equal, the element from left is taken first.
// Either slice may be empty.
func Merge[T Comparable](left, right []T) []T {
	return MergeFunc(left, right, compare[T])
}

// MergeFunc is Merge ordered by cmp, which must return a negative number when a < b,
// zero when a == b and a positive number when a > b.
func MergeFunc[T any](left, right []T, cmp func(a, b T) int) []T {
	result := make([]T, len(left)+len(right))
	mergeRuns(result, left, right, cmp)

	return result
}

func mergeSort[T any](s []T, from, to int, cmp func(a, b T) int) []T {
	if from == to {
		return []T{s[from]}
	}
	middle := (from + to) / 2
	lower := mergeSort(s, from, middle, cmp)
	upper := mergeSort(s, middle+1, to, cmp)

	return MergeFunc(lower, upper, cmp)
}

// Sort returns a new slice with elements s[from] through s[to], both inclusive,
// in non-decreasing order. If the bounds do not satisfy 0 <= from <= to < len(s),
// the returned error wraps ErrInvalidRange.
func Sort[T Comparable](s []T, from, to int) ([]T, error) {
	return SortFunc(s, from, to, compare[T])
}

// SortFunc is Sort ordered by cmp.
func SortFunc[T any](s []T, from, to int, cmp func(a, b T) int) ([]T, error) {
	if from < 0 || from > to || to >= len(s) {
		return nil, fmt.Errorf("%w: from %d, to %d, length %d", ErrInvalidRange, from, to, len(s))
	}
	glog.V(6).Infof("sorting range [%d, %d] of %d elements", from, to, len(s))

	return mergeSort(s, from, to, cmp), nil
}

// SortAll returns a new slice with all elements of s in non-decreasing order.
// An empty slice results in an empty slice, nil in nil.
func SortAll[T Comparable](s []T) []T {
	return SortAllFunc(s, compare[T])
}

// SortAllFunc is SortAll ordered by cmp.
func SortAllFunc[T any](s []T, cmp func(a, b T) int) []T {
	if s == nil {
		return nil
	}
	if len(s) == 0 {
		return []T{}
	}
	glog.V(6).Infof("sorting %d elements", len(s))

	return mergeSort(s, 0, len(s)-1, cmp)
}
