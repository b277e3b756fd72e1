package structures

import (
	"container/heap"

	"golang.org/x/exp/constraints"
)

// PriorityQueue pops elements in ascending order according to less.
type PriorityQueue[T any] struct {
	h *minHeap[T]
}

func NewPriorityQueue[T any](less func(a, b T) bool) *PriorityQueue[T] {
	if less == nil {
		panic("priority queue needs a less function")
	}
	return &PriorityQueue[T]{h: &minHeap[T]{less: less}}
}

func NewOrderedPriorityQueue[T constraints.Ordered]() *PriorityQueue[T] {
	return NewPriorityQueue(func(a, b T) bool { return a < b })
}

func (pq *PriorityQueue[T]) Push(v T) {
	heap.Push(pq.h, v)
}

func (pq *PriorityQueue[T]) Pop() (T, error) {
	if pq.Empty() {
		var zero T
		return zero, ErrEmptyContainer
	}
	return heap.Pop(pq.h).(T), nil
}

func (pq *PriorityQueue[T]) Empty() bool {
	return pq.h.Len() == 0
}

func (pq *PriorityQueue[T]) Len() int {
	return pq.h.Len()
}

type minHeap[T any] struct {
	items []T
	less  func(a, b T) bool
}

func (h *minHeap[T]) Len() int           { return len(h.items) }
func (h *minHeap[T]) Less(i, j int) bool { return h.less(h.items[i], h.items[j]) }
func (h *minHeap[T]) Swap(i, j int)      { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *minHeap[T]) Push(x any) {
	h.items = append(h.items, x.(T))
}

func (h *minHeap[T]) Pop() any {
	last := len(h.items) - 1
	v := h.items[last]
	var zero T
	h.items[last] = zero
	h.items = h.items[:last]
	return v
}
