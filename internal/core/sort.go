package core

import (
	"cmp"
	"slices"
)

// SortBy returns a new slice of records ordered by key.
//
// The input slice is never modified. Ascending order is stable: records
// with equal keys keep their original relative order. Descending order is
// the ascending result reversed, so records with equal keys come out in
// the reverse of their original relative order.
func SortBy[T any, K cmp.Ordered](records []T, key func(T) K, order Order) []T {
	out := slices.Clone(records)
	slices.SortStableFunc(out, func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	})
	if order == Descending {
		slices.Reverse(out)
	}
	return out
}
