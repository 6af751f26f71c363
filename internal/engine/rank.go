package engine

import "sort"

// MaxRouteRecommendations bounds the ranked route list returned to callers.
const MaxRouteRecommendations = 20

// RankBy sorts items in place by key, descending. The sort is stable:
// equal keys keep their original relative order.
func RankBy[T any](items []T, key func(T) float64) {
	sort.SliceStable(items, func(i, j int) bool {
		return key(items[i]) > key(items[j])
	})
}

// Truncate caps a ranked list at n entries.
func Truncate[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}
