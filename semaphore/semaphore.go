package semaphore

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.uber.org/atomic"

	"github.com/notorious-go/semvar/waitqueue"
)

// Semaphore is a counting semaphore guarding a value of type T. At most Cap()
// guards obtained from Access or TryAccess are live at any instant.
//
// A Semaphore must not be copied after first use.
type Semaphore[T any] struct {
	capacity uint32
	// count is the number of live guards. It stays within [0, capacity] and is
	// also the word that blocked goroutines wait on.
	count atomic.Uint32
	value T

	queue waitqueue.WaitQueue
	log   *logrus.Entry
}

// New creates a semaphore that admits up to capacity concurrent holders of
// value. The capacity must be between 1 and math.MaxUint32; anything else
// yields an error wrapping ErrInvalidCapacity.
func New[T any](capacity int, value T, opts ...Option) (*Semaphore[T], error) {
	if capacity < 1 || uint64(capacity) > math.MaxUint32 {
		return nil, errors.Wrapf(ErrInvalidCapacity, "capacity %d", capacity)
	}
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	if c.queue == nil {
		c.queue = waitqueue.NewParkingLot()
	}
	return &Semaphore[T]{
		capacity: uint32(capacity),
		value:    value,
		queue:    c.queue,
		log:      c.log,
	}, nil
}

// MustNew is like New but panics if the capacity is invalid.
func MustNew[T any](capacity int, value T, opts ...Option) *Semaphore[T] {
	s, err := New(capacity, value, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// Access blocks until a slot is free, claims it, and returns the guard that
// owns it. The caller must call Release on the guard exactly once.
//
// Typical usage pattern:
//
//	g := s.Access()
//	defer g.Release()
//	// ... use g.Value() ...
func (s *Semaphore[T]) Access() *Guard[T] {
	n := s.count.Load()
	for {
		if n < s.capacity {
			if s.count.CompareAndSwap(n, n+1) {
				s.trace("slot acquired", n+1)
				return &Guard[T]{sem: s}
			}
			// Another goroutine moved the count; retry with the fresh value.
			n = s.count.Load()
			continue
		}
		s.trace("waiting for slot", n)
		s.queue.Wait(&s.count, n)
		n = s.count.Load()
	}
}

// TryAccess claims a slot without blocking. It reports false if the semaphore
// was full when observed.
//
// Like Access, TryAccess may take a slot ahead of goroutines already blocked
// in Access.
func (s *Semaphore[T]) TryAccess() (*Guard[T], bool) {
	for {
		n := s.count.Load()
		if n >= s.capacity {
			return nil, false
		}
		if s.count.CompareAndSwap(n, n+1) {
			s.trace("slot acquired", n+1)
			return &Guard[T]{sem: s}, true
		}
	}
}

// Do calls f with the guarded value while holding a slot. The slot is released
// when f returns, including when f panics.
func (s *Semaphore[T]) Do(f func(T)) {
	g := s.Access()
	defer g.Release()
	f(g.Value())
}

// Cap returns the maximum number of concurrent holders.
func (s *Semaphore[T]) Cap() int {
	return int(s.capacity)
}

// Len returns the number of slots currently held. The result is a snapshot and
// may be stale by the time it is used.
func (s *Semaphore[T]) Len() int {
	return int(s.count.Load())
}

// String returns a human-readable representation of the semaphore's state in
// the form "Semaphore(held/capacity)".
func (s *Semaphore[T]) String() string {
	return fmt.Sprintf("Semaphore(%v/%v)", s.Len(), s.Cap())
}

// release gives back one slot and wakes a single waiter, if any.
func (s *Semaphore[T]) release() {
	n := s.count.Dec()
	// A release that did not correspond to a claim would wrap the count
	// around, landing at or above capacity.
	if n >= s.capacity {
		panic(fmt.Errorf("semaphore: count out of range after release: %v/%v", n, s.capacity))
	}
	s.trace("slot released", n)
	s.queue.WakeOne(&s.count)
}

func (s *Semaphore[T]) trace(msg string, count uint32) {
	if s.log == nil {
		return
	}
	s.log.WithFields(logrus.Fields{
		"count":    count,
		"capacity": s.capacity,
	}).Trace(msg)
}
