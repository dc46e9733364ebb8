package sort

import (
	"github.com/golang/glog"
	"golang.org/x/exp/slices"
)

// SortBuffered returns the same result as SortAll, it merges runs of doubling width
// bottom-up instead of recursing, so apart from the result itself it allocates only
// one scratch buffer regardless of the length of s.
func SortBuffered[T Comparable](s []T) []T {
	return SortBufferedFunc(s, compare[T])
}

// SortBufferedFunc is SortBuffered ordered by cmp.
func SortBufferedFunc[T any](s []T, cmp func(a, b T) int) []T {
	if s == nil {
		return nil
	}
	src := slices.Clone(s)
	if len(src) < 2 {
		return src
	}
	dst := make([]T, len(src))
	for width := 1; width < len(src); width *= 2 {
		glog.V(5).Infof("merging runs of width %d", width)
		for low := 0; low < len(src); low += 2 * width {
			mid := min(low+width, len(src))
			high := min(low+2*width, len(src))
			mergeRuns(dst[low:high], src[low:mid], src[mid:high], cmp)
		}
		src, dst = dst, src
	}

	return src
}

// mergeRuns merges left and right into dst, len(dst) must be len(left)+len(right).
func mergeRuns[T any](dst, left, right []T, cmp func(a, b T) int) {
	l, r := 0, 0
	for k := range dst {
		if l == len(left) {
			dst[k] = right[r]
			r++
		} else if r == len(right) {
			dst[k] = left[l]
			l++
		} else if cmp(left[l], right[r]) <= 0 {
			dst[k] = left[l]
			l++
		} else {
			dst[k] = right[r]
			r++
		}
	}
}
