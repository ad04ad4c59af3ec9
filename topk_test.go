package mmheap

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/destel/mmheap/internal/th"
)

func TestTopK(t *testing.T) {
	items := []int{5, 1, 9, 3, 7, 2, 7}

	th.ExpectSlice(t, TopK(items, 0), nil)
	th.ExpectSlice(t, TopK(items, -1), nil)
	th.ExpectSlice(t, TopK(items, 1), []int{9})
	th.ExpectSlice(t, TopK(items, 3), []int{9, 7, 7})
	th.ExpectSlice(t, TopK(items, 7), []int{9, 7, 7, 5, 3, 2, 1})
	th.ExpectSlice(t, TopK(items, 100), []int{9, 7, 7, 5, 3, 2, 1})

	th.ExpectSlice(t, TopK([]int{}, 3), []int{})
}

func TestBottomK(t *testing.T) {
	items := []int{5, 1, 9, 3, 7, 2, 7}

	th.ExpectSlice(t, BottomK(items, 0), nil)
	th.ExpectSlice(t, BottomK(items, -1), nil)
	th.ExpectSlice(t, BottomK(items, 1), []int{1})
	th.ExpectSlice(t, BottomK(items, 3), []int{1, 2, 3})
	th.ExpectSlice(t, BottomK(items, 7), []int{1, 2, 3, 5, 7, 7, 9})
	th.ExpectSlice(t, BottomK(items, 100), []int{1, 2, 3, 5, 7, 7, 9})
}

func TestTopKFunc(t *testing.T) {
	type hit struct {
		url   string
		count int
	}

	hits := []hit{
		{"/a", 10},
		{"/b", 50},
		{"/c", 30},
		{"/d", 20},
	}

	top := TopKFunc(hits, 2, func(a, b hit) bool { return a.count < b.count })

	th.ExpectValue(t, len(top), 2)
	th.ExpectValue(t, top[0].url, "/b")
	th.ExpectValue(t, top[1].url, "/c")
}

func TestTopKRandom(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))

	for _, n := range []int{1, 10, 100, 1000} {
		for _, k := range []int{1, 2, 5, n / 2, n, n + 1} {
			t.Run(th.Name("n", n, "k", k), func(t *testing.T) {
				items := make([]int, n)
				for i := range items {
					items[i] = rnd.Intn(n)
				}

				expected := make([]int, n)
				copy(expected, items)
				sort.Sort(sort.Reverse(sort.IntSlice(expected)))
				if k < n {
					expected = expected[:k]
				}

				th.ExpectSlice(t, TopK(items, k), expected)

				// input must not be modified
				th.ExpectValue(t, len(items), n)
			})
		}
	}
}

func TestBottomKRandom(t *testing.T) {
	rnd := rand.New(rand.NewSource(8))

	for _, n := range []int{1, 10, 100, 1000} {
		for _, k := range []int{1, 2, 5, n / 2, n, n + 1} {
			t.Run(th.Name("n", n, "k", k), func(t *testing.T) {
				items := make([]int, n)
				for i := range items {
					items[i] = rnd.Intn(n)
				}

				expected := make([]int, n)
				copy(expected, items)
				sort.Ints(expected)
				if k < n {
					expected = expected[:k]
				}

				th.ExpectSlice(t, BottomK(items, k), expected)
			})
		}
	}
}
