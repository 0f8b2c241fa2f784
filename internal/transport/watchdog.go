package transport

import "time"

// watchdog schedules the automatic stop when the longest stem runs
// out. It is always accessed with the engine mutex held; the fired
// callback re-acquires that mutex and validates its generation, so a
// disarmed or superseded timer can never affect the transport.
type watchdog struct {
	timer *time.Timer
	gen   uint64
}

// arm schedules fire after d. Any pending timer is disarmed first, so
// at most one timer exists at a time.
func (w *watchdog) arm(d time.Duration, fire func(gen uint64)) {
	w.disarm()
	gen := w.gen
	w.timer = time.AfterFunc(d, func() { fire(gen) })
}

// disarm cancels any pending timer. Idempotent. Bumping the generation
// invalidates a callback that already fired but has not run yet.
func (w *watchdog) disarm() {
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.gen++
}

// live reports whether gen belongs to the currently armed timer.
func (w *watchdog) live(gen uint64) bool {
	return w.timer != nil && w.gen == gen
}
