package engine

import (
	"container/heap"
	"time"
)

// TaskID identifies a scheduled callback; zero is never issued
type TaskID uint64

type task struct {
	id    TaskID
	at    time.Time
	seq   uint64
	fn    func()
	index int
}

type taskHeap []*task

func (h taskHeap) Len() int { return len(h) }

func (h taskHeap) Less(i, j int) bool {
	if h[i].at.Equal(h[j].at) {
		return h[i].seq < h[j].seq
	}
	return h[i].at.Before(h[j].at)
}

func (h taskHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *taskHeap) Push(x any) {
	t := x.(*task)
	t.index = len(*h)
	*h = append(*h, t)
}

func (h *taskHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*h = old[:n-1]
	return t
}

// CommitQueue holds deferred callbacks ordered by due time.
// It never runs anything on its own: the owner drains it with RunDue from the
// engine goroutine, so callbacks share that goroutine with the token walk.
// Callbacks with equal due time run in scheduling order.
type CommitQueue struct {
	tasks taskHeap
	byID  map[TaskID]*task
	next  TaskID
	seq   uint64
}

// NewCommitQueue creates an empty queue
func NewCommitQueue() *CommitQueue {
	return &CommitQueue{byID: make(map[TaskID]*task)}
}

// Schedule registers fn to run once at or after at
func (q *CommitQueue) Schedule(at time.Time, fn func()) TaskID {
	q.next++
	q.seq++
	t := &task{id: q.next, at: at, seq: q.seq, fn: fn}
	heap.Push(&q.tasks, t)
	q.byID[t.id] = t
	return t.id
}

// Cancel drops a pending callback. Returns false if it already ran or was cancelled.
func (q *CommitQueue) Cancel(id TaskID) bool {
	t, ok := q.byID[id]
	if !ok {
		return false
	}
	heap.Remove(&q.tasks, t.index)
	delete(q.byID, id)
	return true
}

// CancelAll drops every pending callback and returns how many were dropped
func (q *CommitQueue) CancelAll() int {
	n := len(q.tasks)
	q.tasks = nil
	q.byID = make(map[TaskID]*task)
	return n
}

// RunDue runs every callback due at or before now, in due order, and returns the count.
// Callbacks scheduled while draining run in the same pass if they are already due.
func (q *CommitQueue) RunDue(now time.Time) int {
	n := 0
	for len(q.tasks) > 0 && !q.tasks[0].at.After(now) {
		t := heap.Pop(&q.tasks).(*task)
		delete(q.byID, t.id)
		t.fn()
		n++
	}
	return n
}

// Len returns the number of pending callbacks
func (q *CommitQueue) Len() int {
	return len(q.tasks)
}

// NextDue returns the earliest pending due time
func (q *CommitQueue) NextDue() (time.Time, bool) {
	if len(q.tasks) == 0 {
		return time.Time{}, false
	}
	return q.tasks[0].at, true
}

// Pending reports whether id is still scheduled
func (q *CommitQueue) Pending(id TaskID) bool {
	_, ok := q.byID[id]
	return ok
}
