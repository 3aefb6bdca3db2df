package frontier

import (
	"container/heap"
	"sort"
)

// pqItem pairs a node identity with the priority it was pushed under and a
// monotonic sequence number used to break priority ties by insertion order.
type pqItem struct {
	id       string
	priority float64
	seq      uint64
}

// pqHeap implements heap.Interface over *pqItem, ordered ascending by
// priority, then by insertion sequence.
type pqHeap []*pqItem

func (h pqHeap) Len() int { return len(h) }

func (h pqHeap) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}

	return h[i].seq < h[j].seq
}

func (h pqHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *pqHeap) Push(x any) { *h = append(*h, x.(*pqItem)) }

func (h *pqHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}

// PriorityQueue is a minimum-priority frontier over node identities.
//
// Pushing an identity already present re-prioritizes it: the latest push is
// authoritative and the superseded heap entry is discarded lazily on Pop.
// Equal priorities pop in insertion order.
type PriorityQueue struct {
	heap    pqHeap
	entries map[string]*pqItem // authoritative entry per identity
	seq     uint64
}

// NewPriorityQueue returns an empty priority frontier.
func NewPriorityQueue() *PriorityQueue {
	pq := &PriorityQueue{entries: make(map[string]*pqItem)}
	heap.Init(&pq.heap)

	return pq
}

// Push inserts id with the given priority, or re-prioritizes id if already
// present. The latest priority is authoritative for membership queries and
// pop ordering.
// Complexity: O(log n)
func (pq *PriorityQueue) Push(id string, priority float64) {
	pq.seq++
	item := &pqItem{id: id, priority: priority, seq: pq.seq}
	pq.entries[id] = item
	heap.Push(&pq.heap, item)
}

// Pop removes and returns the identity with the lowest authoritative
// priority. The boolean is false when the queue is empty. Stale entries
// left behind by re-pushes are skipped here.
// Complexity: amortized O(log n)
func (pq *PriorityQueue) Pop() (string, float64, bool) {
	for pq.heap.Len() > 0 {
		item := heap.Pop(&pq.heap).(*pqItem)
		if current, ok := pq.entries[item.id]; !ok || current != item {
			continue // superseded by a later push, or already popped
		}
		delete(pq.entries, item.id)

		return item.id, item.priority, true
	}

	return "", 0, false
}

// Len returns the number of distinct identities currently queued.
func (pq *PriorityQueue) Len() int { return len(pq.entries) }

// Contains reports whether id is currently queued.
// Complexity: O(1)
func (pq *PriorityQueue) Contains(id string) bool {
	_, ok := pq.entries[id]

	return ok
}

// Priority returns the authoritative priority of id. The boolean is false
// when id is not queued.
// Complexity: O(1)
func (pq *PriorityQueue) Priority(id string) (float64, bool) {
	item, ok := pq.entries[id]
	if !ok {
		return 0, false
	}

	return item.priority, true
}

// Snapshot returns the queued identities in pop order (ascending priority,
// insertion order on ties) without mutating the queue.
// Complexity: O(n log n)
func (pq *PriorityQueue) Snapshot() []string {
	items := make([]*pqItem, 0, len(pq.entries))
	for _, item := range pq.entries {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].priority != items[j].priority {
			return items[i].priority < items[j].priority
		}

		return items[i].seq < items[j].seq
	})
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.id
	}

	return out
}
