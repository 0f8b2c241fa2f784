package transport

import "time"

// Clock is the engine's monotonic time source. Playback offsets are
// differences between two readings, so the zero point is arbitrary;
// only monotonicity matters.
type Clock interface {
	Now() time.Duration
}

// systemClock reads the monotonic clock relative to its creation.
type systemClock struct {
	epoch time.Time
}

// NewSystemClock returns a Clock backed by the runtime's monotonic
// clock.
func NewSystemClock() Clock {
	return &systemClock{epoch: time.Now()}
}

func (c *systemClock) Now() time.Duration {
	return time.Since(c.epoch)
}
