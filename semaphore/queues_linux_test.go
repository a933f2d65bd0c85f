//go:build linux

package semaphore

import "github.com/notorious-go/semvar/waitqueue"

var testQueues = map[string]func() waitqueue.WaitQueue{
	"ParkingLot": func() waitqueue.WaitQueue { return waitqueue.NewParkingLot() },
	"Futex":      func() waitqueue.WaitQueue { return waitqueue.Futex{} },
}
