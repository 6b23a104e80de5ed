package utils

import (
	"golang.org/x/exp/constraints"
)

// EqualSlice checks the equality between two slices of comparables.
func EqualSlice[V comparable](a, b []V) (v bool) {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// MaxSlice returns the maximum value in the slice, or the zero value if the slice is empty.
func MaxSlice[V constraints.Ordered](slice []V) (max V) {
	for i := range slice {
		if i == 0 || slice[i] > max {
			max = slice[i]
		}
	}
	return
}

// AllLessThan returns true if every element of slice is strictly smaller than bound.
func AllLessThan[V constraints.Ordered](slice []V, bound V) bool {
	for i := range slice {
		if slice[i] >= bound {
			return false
		}
	}
	return true
}

// CopyNew returns a freshly allocated copy of s.
func CopyNew[V any](s []V) (c []V) {
	c = make([]V, len(s))
	copy(c, s)
	return
}
