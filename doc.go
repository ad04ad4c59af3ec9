// Package mmheap provides a generic min-max heap: an array-backed double-ended
// priority queue with O(1) access to both the minimum and the maximum item,
// and O(log n) insertion and removal at either end. There are no goroutines,
// locks or I/O involved - it's a plain in-memory container.
//
// # Min-max heaps
//
// A min-max heap is a complete binary tree stored in a flat slice, where the ordering
// rule alternates between tree levels. Nodes on even levels (the root is level 0) are
// less than or equal to everything in their subtree, while nodes on odd levels are greater
// than or equal to everything in theirs. As a result the minimum always sits at the root,
// and the maximum at one of the root's two children, so both ends of the queue are
// equally cheap to query and to pop. The algorithm comes from the 1986 paper
// "Min-Max Heaps and Generalized Priority Queues" by Atkinson, Sack, Santoro and Strothotte.
//
// Operation costs for a heap of n items:
//
//	SetData (bulk build)    O(n)
//	Push                    O(log n)
//	PeekMin, PeekMax        O(1)
//	PopMin, PopMax          O(log n)
//	Len, IsEmpty            O(1)
//
// # Ordering
//
// [Heap] is parameterized by a less function, so items of any type can be stored.
// For naturally ordered types (integers, floats, strings) use [NewOrdered],
// which compares with the < operator.
//
// # Errors
//
// Peek and pop operations on an empty heap return [ErrEmpty] and leave the heap
// unchanged. No other operation can fail.
//
// # Concurrency
//
// A Heap instance is not safe for concurrent use. Callers that share a heap
// between goroutines must provide their own synchronization.
package mmheap
