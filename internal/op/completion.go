package op

import "sync"

// Completion is the one-shot notification an asynchronous kernel call
// returns. It fires exactly once, after every piece of work the call
// enqueued has retired; callers must not read outputs or reuse inputs
// before then. A device fault surfaces as the completion's error.
type Completion struct {
	once sync.Once
	done chan struct{}
	err  error
}

// NewCompletion creates an unfired completion.
func NewCompletion() *Completion {
	return &Completion{done: make(chan struct{})}
}

// Fire resolves the completion. Only the first call has any effect.
func (c *Completion) Fire(err error) {
	c.once.Do(func() {
		c.err = err
		close(c.done)
	})
}

// Done is closed once the completion has fired.
func (c *Completion) Done() <-chan struct{} {
	return c.done
}

// Fired reports whether the completion has already fired.
func (c *Completion) Fired() bool {
	select {
	case <-c.done:
		return true
	default:
		return false
	}
}

// Wait blocks until the completion fires and returns its error.
func (c *Completion) Wait() error {
	<-c.done
	return c.err
}
