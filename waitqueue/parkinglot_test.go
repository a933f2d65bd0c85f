package waitqueue

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"
)

func TestParkingLotWaitReturnsWhenWordDiffers(t *testing.T) {
	var lot ParkingLot
	word := atomic.NewUint32(1)

	done := make(chan struct{})
	go func() {
		lot.Wait(word, 0)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Wait blocked although the word did not hold the expected value")
	}
	assert.Zero(t, lot.Len(word))
}

func TestParkingLotWaitBlocksUntilWoken(t *testing.T) {
	lot := NewParkingLot()
	word := atomic.NewUint32(3)

	done := make(chan struct{})
	go func() {
		lot.Wait(word, 3)
		close(done)
	}()

	require.Eventually(t, func() bool { return lot.Len(word) == 1 }, time.Second, time.Millisecond)
	assert.Never(t, isClosed(done), 50*time.Millisecond, 5*time.Millisecond)

	lot.WakeOne(word)
	assert.Eventually(t, isClosed(done), time.Second, time.Millisecond)
	assert.Zero(t, lot.Len(word))
}

func TestParkingLotWakeOneWithoutWaiters(t *testing.T) {
	var lot ParkingLot
	word := atomic.NewUint32(0)

	assert.NotPanics(t, func() { lot.WakeOne(word) })
	assert.Zero(t, lot.Len(word))
}

// TestParkingLotWakeOneWakesAtMostOne parks several goroutines on one word and
// checks that each WakeOne releases exactly one of them.
func TestParkingLotWakeOneWakesAtMostOne(t *testing.T) {
	const waiters = 4
	var lot ParkingLot
	word := atomic.NewUint32(7)
	woken := atomic.NewInt32(0)

	for range waiters {
		go func() {
			lot.Wait(word, 7)
			woken.Inc()
		}()
	}
	require.Eventually(t, func() bool { return lot.Len(word) == waiters }, time.Second, time.Millisecond)

	for i := 1; i <= waiters; i++ {
		lot.WakeOne(word)
		require.Eventually(t, func() bool { return woken.Load() == int32(i) }, time.Second, time.Millisecond)
		assert.Never(t, func() bool { return woken.Load() > int32(i) }, 20*time.Millisecond, 2*time.Millisecond)
	}
}

func TestParkingLotSeparatesWords(t *testing.T) {
	var lot ParkingLot
	a, b := atomic.NewUint32(0), atomic.NewUint32(0)

	doneA := make(chan struct{})
	go func() {
		lot.Wait(a, 0)
		close(doneA)
	}()
	require.Eventually(t, func() bool { return lot.Len(a) == 1 }, time.Second, time.Millisecond)

	lot.WakeOne(b)
	assert.Never(t, isClosed(doneA), 50*time.Millisecond, 5*time.Millisecond)

	lot.WakeOne(a)
	assert.Eventually(t, isClosed(doneA), time.Second, time.Millisecond)
}

func isClosed(ch <-chan struct{}) func() bool {
	return func() bool {
		select {
		case <-ch:
			return true
		default:
			return false
		}
	}
}
