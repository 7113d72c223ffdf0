// Package stream provides the ordered device execution queue operators
// enqueue work on. Work submitted to one stream runs FIFO on a single
// worker; completion of an operator call is observed through the one-shot
// notification the operator returns, never by assuming in-call completion.
package stream

import (
	"errors"
	"fmt"
	"sync"
)

// ErrClosed is returned by Submit after the stream has been closed.
var ErrClosed = errors.New("stream: closed")

// ErrDeviceFault marks work rejected or abandoned because the underlying
// device failed. Completions observed after a fault wrap this error so
// callers can distinguish device failure from their own contract bugs.
var ErrDeviceFault = errors.New("stream: device fault")

// Stream is an ordered, device-associated queue of asynchronous work.
// A nil *Stream means "no stream": callers run work synchronously.
type Stream struct {
	name string

	mu     sync.Mutex
	cond   *sync.Cond
	queue  []func()
	closed bool
	err    error

	done chan struct{}
}

// New creates a stream and starts its worker.
func New(name string) *Stream {
	s := &Stream{
		name: name,
		done: make(chan struct{}),
	}
	s.cond = sync.NewCond(&s.mu)
	go s.run()
	return s
}

// Name returns the stream's diagnostic name.
func (s *Stream) Name() string {
	return s.name
}

func (s *Stream) run() {
	defer close(s.done)
	s.mu.Lock()
	for {
		for len(s.queue) == 0 && !s.closed {
			s.cond.Wait()
		}
		if len(s.queue) == 0 || s.err != nil {
			// Closed and drained, or faulted (queue abandoned by Fail).
			s.mu.Unlock()
			return
		}
		fn := s.queue[0]
		s.queue = s.queue[1:]
		s.mu.Unlock()

		fn()

		s.mu.Lock()
	}
}

// Submit enqueues fn to run after all previously submitted work.
// It returns ErrClosed after Close, or the device fault after Fail.
func (s *Stream) Submit(fn func()) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		if s.err != nil {
			return s.err
		}
		return ErrClosed
	}
	s.queue = append(s.queue, fn)
	s.cond.Signal()
	return nil
}

// Wait blocks until all work submitted before the call has retired.
// It returns the device fault if the stream failed before draining.
func (s *Stream) Wait() error {
	barrier := make(chan struct{})
	if err := s.Submit(func() { close(barrier) }); err != nil {
		return err
	}
	select {
	case <-barrier:
		return nil
	case <-s.done:
		return s.Err()
	}
}

// Close drains remaining work and stops the worker. Idempotent.
func (s *Stream) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.cond.Broadcast()
}

// Fail records a device fault, abandons pending work, and stops the
// worker. Later Submit and Wait calls observe the fault.
func (s *Stream) Fail(cause error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	if cause != nil {
		s.err = fmt.Errorf("%w: %v", ErrDeviceFault, cause)
	} else {
		s.err = ErrDeviceFault
	}
	s.queue = nil
	s.cond.Broadcast()
}

// Done is closed once the worker has exited (after Close drains or Fail).
func (s *Stream) Done() <-chan struct{} {
	return s.done
}

// Err returns the recorded device fault, or nil.
func (s *Stream) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}
