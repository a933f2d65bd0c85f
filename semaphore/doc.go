// Package semaphore provides a counting semaphore that guards a value, bounding
// the number of goroutines that may hold it at the same time.
//
// A Semaphore is created with a fixed capacity and the value it guards. Access
// hands out a Guard once fewer than capacity guards are live, blocking
// otherwise. The Guard is the only way to reach the value, and releasing it
// frees the slot for the next caller:
//
//	sem := semaphore.MustNew(4, client)
//	g := sem.Access()
//	defer g.Release()
//	g.Value().Fetch(url)
//
// All holders share the guarded value, so it is read-only as far as the
// semaphore is concerned. For exclusive mutable access use the mutex package,
// which fixes the capacity to one.
//
// # Algorithm
//
// The semaphore keeps a single atomic count of live guards. Access loads the
// count and, while it is below capacity, tries to bump it with a
// compare-and-swap. When the count equals capacity it parks on a
// waitqueue.WaitQueue keyed by the count, passing the value it observed, so a
// release that lands between the load and the park is never missed. Release
// decrements the count and wakes one parked goroutine.
//
// The uncontended path is a load and a compare-and-swap; the wait queue is
// touched only when the semaphore is full.
//
// # Design Trade-offs
//
//   - No fairness: a goroutine arriving just after a release may take the slot
//     before the goroutine that was woken for it. The woken goroutine simply
//     parks again.
//   - No reentrancy: acquiring a second slot from a goroutine that already
//     holds the last one deadlocks that goroutine.
//   - No timeouts or context cancellation. TryAccess is the only non-blocking
//     entry point.
//   - A capacity of zero is rejected by New rather than producing a semaphore
//     that blocks forever.
//
// Go has no destructors, so a Guard must be released explicitly, normally with
// defer right after Access. Do wraps that idiom. Releasing a guard twice, or
// reading through a released guard, panics.
package semaphore
