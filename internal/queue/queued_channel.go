package queue

import (
	"sync"
	"sync/atomic"
)

// QueuedChannel is a channel with an unbounded queue in front of it. Publishing never blocks, so a slow reader
// cannot stall the publisher.
type QueuedChannel[T any] struct {
	ch     chan T
	items  []T
	cond   *sync.Cond
	closed atomic.Bool

	// doneCh is closed when queued items are discarded, releasing a pending send nobody will receive.
	doneCh   chan struct{}
	doneOnce sync.Once
}

func NewQueuedChannel[T any](chanBufferSize, queueCapacity int) *QueuedChannel[T] {
	queue := &QueuedChannel[T]{
		ch:     make(chan T, chanBufferSize),
		items:  make([]T, 0, queueCapacity),
		cond:   sync.NewCond(&sync.Mutex{}),
		doneCh: make(chan struct{}),
	}

	go func() {
		defer close(queue.ch)

		for {
			item, ok := queue.pop()
			if !ok {
				return
			}

			select {
			case queue.ch <- item:
			case <-queue.doneCh:
				return
			}
		}
	}()

	return queue
}

// Enqueue adds items to the queue. It returns false if the queue is closed.
func (q *QueuedChannel[T]) Enqueue(items ...T) bool {
	q.cond.L.Lock()
	defer q.cond.L.Unlock()

	if q.closed.Load() {
		return false
	}

	q.items = append(q.items, items...)

	q.cond.Broadcast()

	return true
}

func (q *QueuedChannel[T]) GetChannel() <-chan T {
	return q.ch
}

// Close stops accepting items. Items already queued are still delivered before the channel is closed.
func (q *QueuedChannel[T]) Close() {
	q.cond.L.Lock()
	defer q.cond.L.Unlock()

	q.closed.Store(true)

	q.cond.Broadcast()
}

// CloseAndDiscard stops accepting items and drops those not yet delivered. The channel is closed even if nobody
// reads from it anymore.
func (q *QueuedChannel[T]) CloseAndDiscard() {
	q.cond.L.Lock()
	defer q.cond.L.Unlock()

	q.closed.Store(true)
	q.items = nil

	q.doneOnce.Do(func() { close(q.doneCh) })

	q.cond.Broadcast()
}

func (q *QueuedChannel[T]) pop() (T, bool) {
	q.cond.L.Lock()
	defer q.cond.L.Unlock()

	var item T

	// Keep popping after close until the queue is drained.
	for len(q.items) == 0 {
		if q.closed.Load() {
			return item, false
		}

		q.cond.Wait()
	}

	item, q.items = q.items[0], q.items[1:]

	return item, true
}
