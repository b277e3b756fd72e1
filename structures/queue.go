package structures

// Queue is a first-in first-out container.
type Queue[T any] struct {
	data []T
	head int
}

func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{}
}

func (q *Queue[T]) Push(v T) {
	q.data = append(q.data, v)
}

func (q *Queue[T]) Pop() (T, error) {
	var zero T
	if q.Empty() {
		return zero, ErrEmptyContainer
	}
	v := q.data[q.head]
	q.data[q.head] = zero
	q.head++
	// Compact once the consumed prefix dominates the backing array
	if q.head > len(q.data)/2 {
		n := copy(q.data, q.data[q.head:])
		q.data = q.data[:n]
		q.head = 0
	}
	return v, nil
}

func (q *Queue[T]) Empty() bool {
	return q.Len() == 0
}

func (q *Queue[T]) Len() int {
	return len(q.data) - q.head
}
