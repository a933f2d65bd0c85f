package semaphore

import "github.com/pkg/errors"

// ErrInvalidCapacity is returned by New when the capacity is not a positive
// number representable in 32 bits.
var ErrInvalidCapacity = errors.New("semaphore: invalid capacity")
