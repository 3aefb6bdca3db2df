package frontier

// Queue is a FIFO frontier: Pop returns the oldest pushed item.
// The zero value is ready to use.
type Queue[T comparable] struct {
	items []T
}

// NewQueue returns an empty FIFO frontier.
func NewQueue[T comparable]() *Queue[T] {
	return &Queue[T]{}
}

// Push appends item to the back of the queue.
// Complexity: amortized O(1)
func (q *Queue[T]) Push(item T) {
	q.items = append(q.items, item)
}

// Pop removes and returns the front item. The second return is false when
// the queue is empty.
// Complexity: O(1)
func (q *Queue[T]) Pop() (T, bool) {
	var zero T
	if len(q.items) == 0 {
		return zero, false
	}
	item := q.items[0]
	q.items = q.items[1:]

	return item, true
}

// Len returns the number of queued items.
func (q *Queue[T]) Len() int { return len(q.items) }

// Contains reports whether item is currently queued.
// Complexity: O(n)
func (q *Queue[T]) Contains(item T) bool {
	for _, it := range q.items {
		if it == item {
			return true
		}
	}

	return false
}

// Snapshot returns a copy of the queue contents in pop order (front first)
// without mutating the queue.
func (q *Queue[T]) Snapshot() []T {
	out := make([]T, len(q.items))
	copy(out, q.items)

	return out
}
