package structures

// Stack is a last-in first-out container.
type Stack[T any] struct {
	data []T
}

func NewStack[T any]() *Stack[T] {
	return &Stack[T]{}
}

func (s *Stack[T]) Push(v T) {
	s.data = append(s.data, v)
}

func (s *Stack[T]) Pop() (T, error) {
	var zero T
	if len(s.data) == 0 {
		return zero, ErrEmptyContainer
	}
	last := len(s.data) - 1
	v := s.data[last]
	s.data[last] = zero // Release reference
	s.data = s.data[:last]
	return v, nil
}

// Peek returns the top element without removing it.
func (s *Stack[T]) Peek() (T, error) {
	if len(s.data) == 0 {
		var zero T
		return zero, ErrEmptyContainer
	}
	return s.data[len(s.data)-1], nil
}

func (s *Stack[T]) Empty() bool {
	return len(s.data) == 0
}

func (s *Stack[T]) Len() int {
	return len(s.data)
}

// Items returns a copy of the contents, bottom first.
func (s *Stack[T]) Items() []T {
	items := make([]T, len(s.data))
	copy(items, s.data)
	return items
}
