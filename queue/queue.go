// Package queue implements an indexed max-heap priority queue over tasks.
//
// The heap is stored in a flat slice; a position index (task id -> slot)
// mirrors the slice at all times, which is what makes IncreaseKey and
// DecreaseKey on an arbitrary resident task O(log n) instead of a linear
// scan. The ordering contract is part of the public API:
//
//  1. higher Priority first
//  2. on equal priority, earlier ArrivalTime first
//  3. on equal arrival, lexicographically smaller ID first
//
// Rule 3 guarantees that no two distinct tasks compare equal, so extraction
// order is fully deterministic for any input.
package queue

import (
	"github.com/viant/schedq/model/task"
)

// Queue is an indexed max-heap. The zero value is not usable; use New.
// A Queue is not safe for concurrent use; embedders that share one across
// goroutines must serialise all calls behind a single lock.
type Queue struct {
	heap []task.Task
	pos  map[string]int
}

// New returns an empty queue.
func New() *Queue {
	return &Queue{pos: make(map[string]int)}
}

// IsEmpty reports whether the queue holds no tasks.
func (q *Queue) IsEmpty() bool {
	return len(q.heap) == 0
}

// Size returns the number of resident tasks.
func (q *Queue) Size() int {
	return len(q.heap)
}

// Contains reports whether a task with the given id is resident.
func (q *Queue) Contains(id string) bool {
	_, ok := q.pos[id]
	return ok
}

// higherPriority reports whether a belongs nearer the root than b.
func higherPriority(a, b task.Task) bool {
	if a.Priority != b.Priority {
		return a.Priority > b.Priority
	}
	if a.ArrivalTime != b.ArrivalTime {
		return a.ArrivalTime < b.ArrivalTime
	}
	return a.ID < b.ID
}

// swap exchanges two slots and keeps the position index in sync.
func (q *Queue) swap(i, j int) {
	q.heap[i], q.heap[j] = q.heap[j], q.heap[i]
	q.pos[q.heap[i].ID] = i
	q.pos[q.heap[j].ID] = j
}

func (q *Queue) siftUp(idx int) {
	for idx > 0 {
		parent := (idx - 1) / 2
		if !higherPriority(q.heap[idx], q.heap[parent]) {
			return
		}
		q.swap(idx, parent)
		idx = parent
	}
}

func (q *Queue) siftDown(idx int) {
	n := len(q.heap)
	for {
		left := 2*idx + 1
		if left >= n {
			return
		}
		best := left
		if right := left + 1; right < n && higherPriority(q.heap[right], q.heap[left]) {
			best = right
		}
		if !higherPriority(q.heap[best], q.heap[idx]) {
			return
		}
		q.swap(idx, best)
		idx = best
	}
}

// Insert adds a task. The queue keeps its own copy, so later changes to the
// caller's value never bypass the heap invariant. Returns ErrDuplicateKey if
// a task with the same id is already resident.
func (q *Queue) Insert(t task.Task) error {
	if _, ok := q.pos[t.ID]; ok {
		return NewDuplicateKeyError(t.ID)
	}
	q.heap = append(q.heap, t)
	idx := len(q.heap) - 1
	q.pos[t.ID] = idx
	q.siftUp(idx)
	return nil
}

// ExtractMax removes and returns the highest-priority task, or
// ErrEmptyQueue when there is none.
func (q *Queue) ExtractMax() (task.Task, error) {
	if len(q.heap) == 0 {
		return task.Task{}, NewEmptyQueueError("extractMax")
	}
	top := q.heap[0]
	delete(q.pos, top.ID)
	last := len(q.heap) - 1
	q.heap[0] = q.heap[last]
	q.heap[last] = task.Task{}
	q.heap = q.heap[:last]
	if last > 0 {
		q.pos[q.heap[0].ID] = 0
		q.siftDown(0)
	}
	return top, nil
}

// PeekMax returns the highest-priority task without removing it, or
// ErrEmptyQueue when there is none.
func (q *Queue) PeekMax() (task.Task, error) {
	if len(q.heap) == 0 {
		return task.Task{}, NewEmptyQueueError("peekMax")
	}
	return q.heap[0], nil
}

// IncreaseKey raises the priority of a resident task and restores heap order.
// The new priority must not be lower than the current one; raising a priority
// can only move the task toward the root, so only an upward sift is needed.
func (q *Queue) IncreaseKey(id string, newPriority int) error {
	idx, ok := q.pos[id]
	if !ok {
		return NewNotFoundError(id)
	}
	if newPriority < q.heap[idx].Priority {
		return NewInvalidPriorityError("increaseKey", id, q.heap[idx].Priority, newPriority)
	}
	q.heap[idx].Priority = newPriority
	q.siftUp(idx)
	return nil
}

// DecreaseKey lowers the priority of a resident task and restores heap order
// with a downward sift. The new priority must not be higher than the current
// one.
func (q *Queue) DecreaseKey(id string, newPriority int) error {
	idx, ok := q.pos[id]
	if !ok {
		return NewNotFoundError(id)
	}
	if newPriority > q.heap[idx].Priority {
		return NewInvalidPriorityError("decreaseKey", id, q.heap[idx].Priority, newPriority)
	}
	q.heap[idx].Priority = newPriority
	q.siftDown(idx)
	return nil
}
