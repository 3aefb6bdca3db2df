package frontier

// Stack is a LIFO frontier: Pop returns the most recently pushed item.
// The zero value is ready to use.
type Stack[T comparable] struct {
	items []T
}

// NewStack returns an empty LIFO frontier.
func NewStack[T comparable]() *Stack[T] {
	return &Stack[T]{}
}

// Push places item on top of the stack.
// Complexity: amortized O(1)
func (s *Stack[T]) Push(item T) {
	s.items = append(s.items, item)
}

// Pop removes and returns the top item. The second return is false when
// the stack is empty.
// Complexity: O(1)
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}
	top := len(s.items) - 1
	item := s.items[top]
	s.items = s.items[:top]

	return item, true
}

// Len returns the number of stacked items.
func (s *Stack[T]) Len() int { return len(s.items) }

// Contains reports whether item is currently on the stack.
// Complexity: O(n)
func (s *Stack[T]) Contains(item T) bool {
	for _, it := range s.items {
		if it == item {
			return true
		}
	}

	return false
}

// Snapshot returns a copy of the stack contents in pop order (top first)
// without mutating the stack.
func (s *Stack[T]) Snapshot() []T {
	out := make([]T, len(s.items))
	for i, item := range s.items {
		out[len(s.items)-1-i] = item
	}

	return out
}
