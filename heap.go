package mmheap

import (
	"errors"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// ErrEmpty is returned by peek and pop operations invoked on an empty heap.
var ErrEmpty = errors.New("mmheap: heap is empty")

// Heap is a generic min-max heap: a double-ended priority queue backed by
// a single slice. Even tree levels hold local minimums and odd levels hold
// local maximums, which makes both the smallest and the largest item
// reachable in O(1) and removable in O(log n).
// The zero value is not usable, create heaps with [New], [NewOrdered]
// or [New] followed by [Heap.SetData].
type Heap[T any] struct {
	data []T
	less func(a, b T) bool
}

// New creates an empty heap ordered by the given less function.
// The less function must define a strict weak ordering on T.
func New[T any](less func(a, b T) bool) *Heap[T] {
	return &Heap[T]{less: less}
}

// NewOrdered creates an empty heap for a naturally ordered type,
// comparing items with the < operator.
func NewOrdered[T constraints.Ordered]() *Heap[T] {
	return New(func(a, b T) bool { return a < b })
}

// SetData replaces the heap's contents with the given slice, taking ownership of it,
// and rearranges it into min-max order in place. The caller must not use the slice
// afterwards. Unlike repeated Push calls, SetData takes O(n) time.
func (h *Heap[T]) SetData(data []T) {
	h.data = data

	// heapify
	n := h.Len()
	for i := n/2 - 1; i >= 0; i-- {
		h.down(i)
	}
}

// Len returns the number of items in the heap.
func (h *Heap[T]) Len() int {
	return len(h.data)
}

// IsEmpty reports whether the heap has no items.
func (h *Heap[T]) IsEmpty() bool {
	return len(h.data) == 0
}

// Grow grows the heap's capacity, if necessary, to guarantee space for another n items.
func (h *Heap[T]) Grow(n int) {
	targetCap := len(h.data) + n
	if targetCap > cap(h.data) {
		data := make([]T, len(h.data), targetCap)
		copy(data, h.data)
		h.data = data
	}
}

// Push adds an item to the heap. Takes O(log n) time.
func (h *Heap[T]) Push(item T) {
	h.data = append(h.data, item)
	h.up(h.Len() - 1)
}

// PeekMin returns the smallest item without removing it.
// Returns ErrEmpty if the heap is empty.
func (h *Heap[T]) PeekMin() (T, error) {
	if len(h.data) == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return h.data[0], nil
}

// PeekMax returns the largest item without removing it. When the two
// candidate positions for the maximum hold equal items, the one at the lower
// index is preferred. Returns ErrEmpty if the heap is empty.
func (h *Heap[T]) PeekMax() (T, error) {
	if len(h.data) == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return h.data[h.maxIndex()], nil
}

// PopMin removes and returns the smallest item. Takes O(log n) time.
// Returns ErrEmpty if the heap is empty, leaving it unchanged.
func (h *Heap[T]) PopMin() (T, error) {
	if len(h.data) == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return h.popAt(0), nil
}

// PopMax removes and returns the largest item. Takes O(log n) time.
// Returns ErrEmpty if the heap is empty, leaving it unchanged.
func (h *Heap[T]) PopMax() (T, error) {
	if len(h.data) == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return h.popAt(h.maxIndex()), nil
}

// maxIndex returns the index of the largest item: one of the root's children
// (both live on a max level), or the root itself when there are no children.
// A tie between the two children resolves to the lower index.
func (h *Heap[T]) maxIndex() int {
	i := 0
	if len(h.data) > 1 {
		i = 1
	}
	if len(h.data) > 2 && h.less(h.data[1], h.data[2]) {
		i = 2
	}
	return i
}

// popAt removes and returns the item at index i by moving the last item
// into its place and sifting it down.
func (h *Heap[T]) popAt(i int) T {
	n := h.Len() - 1
	h.swap(i, n)

	res := h.data[n]
	var zero T
	h.data[n] = zero // for GC
	h.data = h.data[:n]

	if i < n {
		h.down(i)
	}
	return res
}

// up sifts the item at index i toward the root until it no longer beats its
// ancestors. The first step checks the immediate parent: an item that's on
// the wrong side of its parent's level swaps with it and continues climbing
// under the opposite polarity. All the following steps compare against
// grandparents, which live on levels of the same polarity.
func (h *Heap[T]) up(i int) {
	min := isMinLevel(i)

	if i > 0 {
		p := parent(i)
		if h.before(p, i, min) {
			h.swap(i, p)
			i = p
			min = !min
		}
	}

	for i > 2 {
		g := grandparent(i)
		if !h.before(i, g, min) {
			return
		}
		h.swap(i, g)
		i = g
	}
}

// down sifts the item at index i toward the leaves until it's the extreme of
// its two-level window - the up to six children and grandchildren under it.
// A swap with a child finishes the sift: the child's subtrees were valid
// before the swap and remain valid. A swap with a grandchild stays on the
// same polarity and descends, but may first need to repair the pair between
// the grandchild and its parent, which the swap can put on the wrong sides
// of each other.
func (h *Heap[T]) down(i int) {
	n := len(h.data)
	min := isMinLevel(i)

	for {
		l := lchild(i)
		if l >= n || l < 0 { // l < 0 after int overflow
			return
		}

		// find the extreme item among i's children and grandchildren
		m := l
		r := l + 1
		if r < n && h.before(r, m, min) {
			m = r
		}
		for g := lchild(l); g < n && g <= rchild(r); g++ {
			if h.before(g, m, min) {
				m = g
			}
		}

		if !h.before(m, i, min) {
			return
		}
		h.swap(i, m)

		if m <= r {
			return
		}

		p := parent(m)
		if h.before(p, m, min) {
			h.swap(m, p)
		}
		i = m
	}
}

// before reports whether the item at index i must be ordered above the item
// at index j under the given polarity: the smaller one wins on min levels,
// the larger one on max levels. Equal items never need reordering.
func (h *Heap[T]) before(i, j int, min bool) bool {
	if min {
		return h.less(h.data[i], h.data[j])
	}
	return h.less(h.data[j], h.data[i])
}

func (h *Heap[T]) swap(i, j int) {
	h.data[i], h.data[j] = h.data[j], h.data[i]
}

// level returns the depth of index i in the implicit tree: floor(log2(i+1)).
func level(i int) int {
	return bits.Len(uint(i)+1) - 1
}

// isMinLevel reports whether index i lives on a min level (even depth).
func isMinLevel(i int) bool {
	return level(i)%2 == 0
}

func lchild(i int) int { return 2*i + 1 }
func rchild(i int) int { return 2*i + 2 }
func parent(i int) int { return (i - 1) / 2 }

func grandparent(i int) int { return parent(parent(i)) }
