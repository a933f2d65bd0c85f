// Package waitqueue provides the block/wake capability that the semaphore
// package parks its waiters on.
//
// A WaitQueue lets a goroutine sleep on a 32-bit word until another goroutine
// wakes it, in the manner of a Linux futex. The contract is deliberately
// small:
//
//   - Wait(word, expected) blocks only if *word still equals expected at the
//     moment of the check. Otherwise it returns immediately.
//   - WakeOne(word) wakes at most one goroutine blocked on word. It is a no-op
//     when nobody is waiting.
//
// Wait may return spuriously, so callers must always reload the word and
// re-validate their state after it returns.
//
// # Implementations
//
// ParkingLot is the portable implementation and the default used by the
// semaphore package. It parks goroutines on channels and never blocks an OS
// thread, which makes it the right choice for ordinary Go programs.
//
// Futex, available on Linux only, calls the kernel's futex(2) directly. A
// goroutine waiting on a Futex occupies an OS thread for the duration of the
// wait, so it is only worthwhile when waiters are few and short-lived.
//
// Native returns Futex on Linux and a fresh ParkingLot everywhere else.
package waitqueue
