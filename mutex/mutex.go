package mutex

import (
	"go.uber.org/atomic"

	"github.com/notorious-go/semvar/semaphore"
)

// A Mutex guards a value of type T, granting exclusive access to one goroutine
// at a time.
//
// A Mutex must not be copied after first use.
type Mutex[T any] struct {
	sem *semaphore.Semaphore[*T]
	// holders counts live guards. Exclusivity rests on the semaphore's
	// capacity of one; holders turns a violation of that into a panic rather
	// than silent aliasing of the value.
	holders atomic.Int32
}

// New returns a Mutex guarding value. The options are passed through to the
// underlying semaphore.
func New[T any](value T, opts ...semaphore.Option) *Mutex[T] {
	return &Mutex[T]{
		sem: semaphore.MustNew(1, &value, opts...),
	}
}

// Lock blocks until the mutex is available and returns the Guard granting
// exclusive access. The caller must call Unlock on the guard exactly once.
func (m *Mutex[T]) Lock() *Guard[T] {
	return m.own(m.sem.Access())
}

// TryLock acquires the mutex if it is free and reports whether it did. It
// never blocks.
func (m *Mutex[T]) TryLock() (*Guard[T], bool) {
	g, ok := m.sem.TryAccess()
	if !ok {
		return nil, false
	}
	return m.own(g), true
}

// Do calls f with a pointer to the value while holding the lock. The lock is
// released when f returns, including when f panics. The pointer must not be
// retained past f.
func (m *Mutex[T]) Do(f func(*T)) {
	g := m.Lock()
	defer g.Unlock()
	f(g.Pointer())
}

func (m *Mutex[T]) own(g *semaphore.Guard[*T]) *Guard[T] {
	if n := m.holders.Inc(); n != 1 {
		// Give back what this call took so the mutex stays usable if the
		// panic is recovered.
		m.holders.Dec()
		g.Release()
		panic("mutex: more than one live guard")
	}
	return &Guard[T]{mu: m, inner: g}
}
