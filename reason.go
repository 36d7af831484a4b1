package envar

import (
	"sync"
	"sync/atomic"
)

// Reason is a deferred, at-most-once string computation. It backs
// ParseError explanations so that formatting cost is only paid when the
// text is actually inspected.
//
// The producer runs exactly once no matter how many goroutines ask for the
// text; all of them observe the same result. Once resolved, reads do not
// take the lock.
type Reason struct {
	mu       sync.Mutex
	producer func() string
	resolved atomic.Pointer[string]
}

// NewReason wraps producer for later, single-shot evaluation.
func NewReason(producer func() string) *Reason {
	return &Reason{producer: producer}
}

// String returns the produced text, running the producer on first call.
func (r *Reason) String() string {
	if s := r.resolved.Load(); s != nil {
		return *s
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Another goroutine may have resolved while we waited for the lock.
	if s := r.resolved.Load(); s != nil {
		return *s
	}

	producer := r.producer
	r.producer = nil
	if producer == nil {
		panic("envar: reason producer already consumed")
	}

	s := producer()
	r.resolved.Store(&s)
	return s
}
