package semaphore

import (
	"github.com/sirupsen/logrus"

	"github.com/notorious-go/semvar/waitqueue"
)

type config struct {
	queue waitqueue.WaitQueue
	log   *logrus.Entry
}

// An Option configures a Semaphore at construction time.
type Option func(*config)

// WithWaitQueue parks blocked goroutines on q instead of the semaphore's own
// waitqueue.ParkingLot. A queue may be shared by several semaphores.
func WithWaitQueue(q waitqueue.WaitQueue) Option {
	return func(c *config) {
		c.queue = q
	}
}

// WithLogger makes the semaphore trace slot acquisition, waiting and release
// to log at trace level.
func WithLogger(log *logrus.Entry) Option {
	return func(c *config) {
		c.log = log
	}
}
