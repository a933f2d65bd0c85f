// Package mutex provides a mutual-exclusion lock that owns the value it
// protects.
//
// A Mutex is a semaphore.Semaphore with a capacity of one, guarding a pointer
// to its value. Because at most one Guard can be live at a time, the Guard may
// hand out the pointer for reading and writing without further locking:
//
//	m := mutex.New(map[string]int{})
//	g := m.Lock()
//	defer g.Unlock()
//	(*g.Pointer())["hits"]++
//
// Like sync.Mutex, a Mutex is not reentrant. Calling Lock from a goroutine
// that already holds the Guard blocks that goroutine forever. There is no
// deadlock detection.
package mutex
