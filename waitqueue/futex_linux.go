//go:build linux

package waitqueue

import (
	"unsafe"

	"github.com/pkg/errors"
	"go.uber.org/atomic"
	"golang.org/x/sys/unix"
)

const (
	futexWait        = 0
	futexWake        = 1
	futexPrivateFlag = 128
)

// Futex is a WaitQueue backed by the Linux futex(2) system call. The words it
// waits on must not be shared with other processes.
//
// Each goroutine blocked in Wait holds an OS thread until it is woken.
type Futex struct{}

// Wait implements WaitQueue. The kernel performs the comparison against
// expected atomically with going to sleep.
func (Futex) Wait(word *atomic.Uint32, expected uint32) {
	_, _, errno := unix.Syscall6(
		unix.SYS_FUTEX,
		uintptr(unsafe.Pointer(wordAddr(word))),
		futexWait|futexPrivateFlag,
		uintptr(expected),
		0, 0, 0,
	)
	checkFutex("wait", errno)
}

// WakeOne implements WaitQueue.
func (Futex) WakeOne(word *atomic.Uint32) {
	_, _, errno := unix.Syscall6(
		unix.SYS_FUTEX,
		uintptr(unsafe.Pointer(wordAddr(word))),
		futexWake|futexPrivateFlag,
		1,
		0, 0, 0,
	)
	checkFutex("wake", errno)
}

// checkFutex panics on any futex(2) failure other than the ones the WaitQueue
// contract treats as a spurious return: EAGAIN (value changed), EINTR
// (signal) and ETIMEDOUT. Anything else would turn waiting into a busy loop.
func checkFutex(op string, errno unix.Errno) {
	switch errno {
	case 0, unix.EAGAIN, unix.EINTR, unix.ETIMEDOUT:
		return
	}
	panic(errors.Wrapf(errno, "waitqueue: futex %s", op))
}

// wordAddr returns the address of the uint32 held by word. atomic.Uint32 is a
// struct whose only sized field is the value itself, so the addresses coincide.
func wordAddr(word *atomic.Uint32) *uint32 {
	return (*uint32)(unsafe.Pointer(word))
}

// Native returns the operating system's own wait queue.
func Native() WaitQueue {
	return Futex{}
}
