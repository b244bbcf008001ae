// Implements the WaitQueue, which holds all jobs waiting for the server.
// Jobs are enqueued on arrival and dequeued in arrival order.

package sim

import (
	"fmt"
	"strings"
)

// WaitQueue represents a FIFO queue of jobs waiting to be served.
// It is unbounded: the model has no backpressure.
type WaitQueue struct {
	queue []*Job // FIFO queue of jobs
}

// Enqueue adds a job to the back of the wait queue.
func (wq *WaitQueue) Enqueue(j *Job) {
	if j == nil {
		panic("Enqueue: job must not be nil")
	}
	wq.queue = append(wq.queue, j)
}

// Dequeue removes and returns the job at the front of the queue.
// Returns nil if the queue is empty.
func (wq *WaitQueue) Dequeue() *Job {
	if len(wq.queue) == 0 {
		return nil
	}
	head := wq.queue[0]
	wq.queue[0] = nil
	wq.queue = wq.queue[1:]
	return head
}

// Peek returns the job at the front of the queue without removing it.
// Returns nil if the queue is empty.
func (wq *WaitQueue) Peek() *Job {
	if len(wq.queue) == 0 {
		return nil
	}
	return wq.queue[0]
}

// Len returns the number of jobs in the queue.
func (wq *WaitQueue) Len() int {
	return len(wq.queue)
}

// IsEmpty reports whether no jobs are waiting.
func (wq *WaitQueue) IsEmpty() bool {
	return len(wq.queue) == 0
}

func (wq *WaitQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, j := range wq.queue {
		sb.WriteString(fmt.Sprint(j.ID))
		if i < len(wq.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
