package waitqueue

import (
	"sync"

	"github.com/emirpasic/gods/lists/doublylinkedlist"
	"go.uber.org/atomic"
)

// ParkingLot is a WaitQueue that parks goroutines on channels. Waiters on the
// same word are woken in the order they parked, although callers racing for
// the word afterwards may still overtake them.
//
// The zero ParkingLot is ready to use. A ParkingLot must not be copied after
// first use.
type ParkingLot struct {
	mu sync.Mutex
	// waiters holds, per word, a list of chan struct{}, one per parked
	// goroutine. A word's entry is removed once its list drains.
	waiters map[*atomic.Uint32]*doublylinkedlist.List
}

// NewParkingLot returns an empty ParkingLot.
func NewParkingLot() *ParkingLot {
	return new(ParkingLot)
}

// Wait implements WaitQueue.
func (p *ParkingLot) Wait(word *atomic.Uint32, expected uint32) {
	p.mu.Lock()
	// Comparing under the lot's mutex is what prevents a lost wakeup: WakeOne
	// takes the same mutex, so a waker that changed the word before this check
	// is observed here, and one that changes it afterwards finds us parked.
	if word.Load() != expected {
		p.mu.Unlock()
		return
	}
	if p.waiters == nil {
		p.waiters = make(map[*atomic.Uint32]*doublylinkedlist.List)
	}
	queue, ok := p.waiters[word]
	if !ok {
		queue = doublylinkedlist.New()
		p.waiters[word] = queue
	}
	wake := make(chan struct{})
	queue.Add(wake)
	p.mu.Unlock()

	<-wake
}

// WakeOne implements WaitQueue.
func (p *ParkingLot) WakeOne(word *atomic.Uint32) {
	p.mu.Lock()
	queue, ok := p.waiters[word]
	if !ok {
		p.mu.Unlock()
		return
	}
	head, _ := queue.Get(0)
	queue.Remove(0)
	if queue.Empty() {
		delete(p.waiters, word)
	}
	p.mu.Unlock()

	close(head.(chan struct{}))
}

// Len returns the number of goroutines currently parked on word. The result is
// only a snapshot and may be stale by the time it is used.
func (p *ParkingLot) Len(word *atomic.Uint32) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if queue, ok := p.waiters[word]; ok {
		return queue.Size()
	}
	return 0
}
