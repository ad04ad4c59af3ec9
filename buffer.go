package mmheap

// Buffer is a double-ended priority queue built on top of [Heap]:
// items are written in any order and read back from either end.
type Buffer[T any] struct {
	heap     *Heap[T]
	capacity int
}

// NewBuffer creates a priority buffer with the given capacity and less function.
// Non-zero capacity will create a fixed size buffer. Any write operation on a full buffer will panic.
func NewBuffer[T any](capacity int, less func(a, b T) bool) *Buffer[T] {
	h := New(less)
	if capacity > 0 {
		h.Grow(capacity)
	}

	return &Buffer[T]{
		heap:     h,
		capacity: capacity,
	}
}

// Len returns the number of buffered items.
func (b *Buffer[T]) Len() int {
	return b.heap.Len()
}

func (b *Buffer[T]) IsEmpty() bool {
	return b.heap.IsEmpty()
}

func (b *Buffer[T]) IsFull() bool {
	if b.capacity <= 0 {
		return false
	}

	return b.heap.Len() >= b.capacity
}

func (b *Buffer[T]) Write(v T) {
	if b.IsFull() {
		panic("mmheap: buffer is full")
	}
	b.heap.Push(v)
}

// ReadMin removes and returns the smallest buffered item.
// Returns ErrEmpty if the buffer is empty.
func (b *Buffer[T]) ReadMin() (T, error) {
	return b.heap.PopMin()
}

// ReadMax removes and returns the largest buffered item.
// Returns ErrEmpty if the buffer is empty.
func (b *Buffer[T]) ReadMax() (T, error) {
	return b.heap.PopMax()
}

func (b *Buffer[T]) PeekMin() (T, error) {
	return b.heap.PeekMin()
}

func (b *Buffer[T]) PeekMax() (T, error) {
	return b.heap.PeekMax()
}
