package controller

import "sync"

// queue hands work from arbitrary goroutines to the controller loop.
type queue struct {
	mu      sync.Mutex
	pending []func()
	ready   chan struct{}
}

func newQueue() *queue {
	return &queue{ready: make(chan struct{}, 1)}
}

// push never blocks.
func (q *queue) push(task func()) {
	q.mu.Lock()
	q.pending = append(q.pending, task)
	q.mu.Unlock()
	select {
	case q.ready <- struct{}{}:
	default:
	}
}

func (q *queue) drain() []func() {
	q.mu.Lock()
	defer q.mu.Unlock()
	tasks := q.pending
	q.pending = nil
	return tasks
}
