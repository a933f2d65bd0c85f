//go:build !linux

package waitqueue

// Native returns a fresh ParkingLot, as this platform has no futex.
func Native() WaitQueue {
	return NewParkingLot()
}
