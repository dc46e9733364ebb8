package sort

func mergeInPlace[T any](s []T, low, mid, high int, temp []T, cmp func(a, b T) int) {
	for k := low; k <= high; k++ {
		temp[k] = s[k]
	}
	i := low
	j := mid + 1
	for k := low; k <= high; k++ {
		if i > mid {
			s[k] = temp[j]
			j++
		} else if j > high {
			s[k] = temp[i]
			i++
		} else if cmp(temp[j], temp[i]) < 0 {
			s[k] = temp[j]
			j++
		} else {
			s[k] = temp[i]
			i++
		}
	}
}

func sortInPlace[T any](s []T, low, high int, temp []T, cmp func(a, b T) int) {
	if high <= low {
		return
	}
	mid := low + (high-low)/2
	sortInPlace(s, low, mid, temp, cmp)
	sortInPlace(s, mid+1, high, temp, cmp)
	// Halves are already in order, nothing to merge
	if cmp(s[mid], s[mid+1]) <= 0 {
		return
	}
	mergeInPlace(s, low, mid, high, temp, cmp)
}

// SortInPlace sorts s in place, unlike every other function of the package it mutates
// its argument. The returned slice is s itself.
func SortInPlace[T Comparable](s []T) []T {
	return SortInPlaceFunc(s, compare[T])
}

// SortInPlaceFunc is SortInPlace ordered by cmp.
func SortInPlaceFunc[T any](s []T, cmp func(a, b T) int) []T {
	if len(s) < 2 {
		return s
	}
	temp := make([]T, len(s))
	sortInPlace(s, 0, len(s)-1, temp, cmp)
	return s
}
