package stats

import (
	"maps"
	"slices"
)

// GroupBy partitions rs by key and folds every partition with reduce,
// starting from the zero value of A. It is the one grouping primitive
// behind buckets, campaign cells and campaign totals.
func GroupBy[R any, K comparable, A any](rs []R, key func(R) K, reduce func(A, R) A) map[K]A {
	out := make(map[K]A)
	for _, r := range rs {
		k := key(r)
		out[k] = reduce(out[k], r)
	}
	return out
}

// SortedKeys returns the keys of m ordered by cmp.
func SortedKeys[K comparable, A any](m map[K]A, cmp func(a, b K) int) []K {
	keys := slices.Collect(maps.Keys(m))
	slices.SortFunc(keys, cmp)
	return keys
}
