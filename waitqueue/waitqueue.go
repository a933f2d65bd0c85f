package waitqueue

import "go.uber.org/atomic"

// A WaitQueue blocks goroutines on a 32-bit word until they are woken.
//
// Implementations must never lose a wakeup: if WakeOne is called after the
// word was changed, a goroutine that observed the old value in Wait must either
// be woken or must not have blocked in the first place.
type WaitQueue interface {
	// Wait blocks the calling goroutine while *word equals expected. It may
	// return spuriously.
	Wait(word *atomic.Uint32, expected uint32)
	// WakeOne wakes at most one goroutine blocked in Wait on word.
	WakeOne(word *atomic.Uint32)
}
