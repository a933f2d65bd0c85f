package mutex

import (
	"go.uber.org/atomic"

	"github.com/notorious-go/semvar/semaphore"
)

// A Guard grants exclusive access to the value of a locked Mutex until Unlock
// is called. Every method panics once the guard is unlocked.
type Guard[T any] struct {
	mu       *Mutex[T]
	inner    *semaphore.Guard[*T]
	unlocked atomic.Bool
}

// Value returns a copy of the guarded value.
func (g *Guard[T]) Value() T {
	return *g.Pointer()
}

// Set replaces the guarded value.
func (g *Guard[T]) Set(v T) {
	*g.Pointer() = v
}

// Pointer returns a pointer to the guarded value. It is only safe to use while
// the guard is held.
func (g *Guard[T]) Pointer() *T {
	if g.unlocked.Load() {
		panic("mutex: use of unlocked guard")
	}
	return g.inner.Value()
}

// Unlock releases the mutex, waking one goroutine blocked in Lock. A second
// call panics.
func (g *Guard[T]) Unlock() {
	if g.unlocked.Swap(true) {
		panic("mutex: unlock of unlocked guard")
	}
	g.mu.holders.Dec()
	g.inner.Release()
}
