package dispatch

import (
	"context"
	"sync"
	"time"
)

// envelope carries a command to the run loop together with the caller's
// context and its dedicated reply channel (buffered, capacity 1).
type envelope struct {
	ctx      context.Context
	cmd      Command
	enqueued time.Time
	reply    chan Response
}

// queue is an unbounded FIFO with many producers and one consumer. The
// consumer blocks on notify when the queue is empty instead of polling.
type queue struct {
	mu     sync.Mutex
	items  []*envelope
	closed bool
	notify chan struct{}
}

func newQueue() *queue {
	return &queue{notify: make(chan struct{}, 1)}
}

// push appends e. It fails with ErrStopped once the queue is closed.
func (q *queue) push(e *envelope) error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return ErrStopped
	}
	q.items = append(q.items, e)
	q.mu.Unlock()

	q.wake()
	return nil
}

// pop returns the oldest envelope, blocking while the queue is empty. It
// returns false when the queue is closed and drained, or when ctx is done.
func (q *queue) pop(ctx context.Context) (*envelope, bool) {
	for {
		q.mu.Lock()
		if len(q.items) > 0 {
			e := q.items[0]
			q.items[0] = nil
			q.items = q.items[1:]
			q.mu.Unlock()
			return e, true
		}
		closed := q.closed
		q.mu.Unlock()

		if closed {
			return nil, false
		}

		select {
		case <-q.notify:
		case <-ctx.Done():
			return nil, false
		}
	}
}

// close stops further pushes. Envelopes already queued stay poppable.
func (q *queue) close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()

	q.wake()
}

// drain removes and returns every queued envelope.
func (q *queue) drain() []*envelope {
	q.mu.Lock()
	defer q.mu.Unlock()

	items := q.items
	q.items = nil
	return items
}

func (q *queue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

func (q *queue) wake() {
	select {
	case q.notify <- struct{}{}:
	default:
	}
}
