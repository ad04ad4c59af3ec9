package mmheap

import "golang.org/x/exp/constraints"

// TopK returns the k largest items, in descending order.
// It maintains a heap of at most k items while scanning the input,
// so it takes O(n log k) time and O(k) space. The input is not modified.
// If k exceeds the input length, all items are returned.
func TopK[T constraints.Ordered](items []T, k int) []T {
	return TopKFunc(items, k, func(a, b T) bool { return a < b })
}

// TopKFunc is like [TopK], but orders items by the given less function.
func TopKFunc[T any](items []T, k int, less func(a, b T) bool) []T {
	if k <= 0 {
		return nil
	}

	h := New(less)
	h.Grow(min(k, len(items)))

	for _, v := range items {
		if h.Len() < k {
			h.Push(v)
			continue
		}

		// v competes with the smallest of the k current winners
		if m, _ := h.PeekMin(); less(m, v) {
			h.PopMin()
			h.Push(v)
		}
	}

	res := make([]T, h.Len())
	for i := len(res) - 1; i >= 0; i-- {
		res[i], _ = h.PopMin()
	}
	return res
}

// BottomK returns the k smallest items, in ascending order.
// Complexity and edge cases are the same as for [TopK].
func BottomK[T constraints.Ordered](items []T, k int) []T {
	return BottomKFunc(items, k, func(a, b T) bool { return a < b })
}

// BottomKFunc is like [BottomK], but orders items by the given less function.
func BottomKFunc[T any](items []T, k int, less func(a, b T) bool) []T {
	if k <= 0 {
		return nil
	}

	h := New(less)
	h.Grow(min(k, len(items)))

	for _, v := range items {
		if h.Len() < k {
			h.Push(v)
			continue
		}

		if m, _ := h.PeekMax(); less(v, m) {
			h.PopMax()
			h.Push(v)
		}
	}

	res := make([]T, h.Len())
	for i := len(res) - 1; i >= 0; i-- {
		res[i], _ = h.PopMax()
	}
	return res
}
