package semaphore

import "go.uber.org/atomic"

// A Guard proves that its holder occupies one slot of a Semaphore. It is
// obtained from Access or TryAccess and stays valid until Release.
type Guard[T any] struct {
	sem      *Semaphore[T]
	released atomic.Bool
}

// Value returns the guarded value. It panics if the guard was released.
func (g *Guard[T]) Value() T {
	if g.released.Load() {
		panic("semaphore: use of released guard")
	}
	return g.sem.value
}

// Release frees the guard's slot and wakes one goroutine waiting in Access.
// Release must be called exactly once; a second call panics.
func (g *Guard[T]) Release() {
	if g.released.Swap(true) {
		panic("semaphore: guard released twice")
	}
	g.sem.release()
}
