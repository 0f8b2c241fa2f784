// Package transport owns the shared playback state of a multi-stem
// mix. All stems start, pause and stop as one logical transport on a
// shared timeline; per-stem gain and mute stay live during playback.
package transport

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"

	"github.com/jonasaneufeld-debug/sunny-day-mixer/internal/config"
	"github.com/jonasaneufeld-debug/sunny-day-mixer/internal/loader"
)

// Engine is the playback transport. It owns the track registry, the
// playback clock offsets and the end-of-song watchdog. An Engine is
// created, loaded once, and disposed with Close; independent engines
// do not share state.
type Engine struct {
	mu sync.Mutex

	device Device
	clock  Clock
	ldr    *loader.Loader

	state    State
	registry *Registry
	master   time.Duration

	// pauseOffset is the resume point while not playing;
	// startClock is the engine clock reading that corresponds to
	// offset zero of the current run, valid only while playing.
	pauseOffset time.Duration
	startClock  time.Duration

	watchdog watchdog
	subs     []*Subscription
	closed   bool
}

// NewEngine creates an unloaded transport. Passing nil for device or
// clock selects the system speaker and the monotonic system clock.
func NewEngine(device Device, clock Clock) *Engine {
	if device == nil {
		device = NewSpeakerDevice()
	}
	if clock == nil {
		clock = NewSystemClock()
	}
	return &Engine{
		device: device,
		clock:  clock,
		ldr:    loader.New(),
		state:  StateUninitialized,
	}
}

// Load fetches and decodes every stem, opens the output device and
// builds the track registry. It is valid from Uninitialized and, as an
// explicit retry, from Error. Any single track failure aborts the
// whole load; the transport never plays a partial mix.
func (e *Engine) Load(ctx context.Context, specs map[string]string, progress loader.ProgressFunc) error {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return ErrClosed
	}
	if e.state != StateUninitialized && e.state != StateError {
		e.mu.Unlock()
		return fmt.Errorf("load not allowed in state %s", e.state)
	}
	e.setState(StateLoading)
	e.mu.Unlock()

	tracks, err := e.ldr.Load(ctx, specs, progress)
	if err != nil {
		e.fail()
		return err
	}

	sr := beep.SampleRate(config.SampleRate)
	if err := e.device.Init(sr, sr.N(config.DeviceBuffer)); err != nil {
		e.fail()
		return fmt.Errorf("%w: %v", ErrEngineUnavailable, err)
	}

	e.mu.Lock()
	e.registry = NewRegistry(tracks, e.device)
	e.master = e.registry.MasterDuration()
	e.setState(StateReady)
	e.mu.Unlock()
	return nil
}

func (e *Engine) fail() {
	e.mu.Lock()
	e.setState(StateError)
	e.mu.Unlock()
}

// Play starts or resumes playback of all stems from the current
// resume point.
//
// Every source of the session is created and handed to the device
// within this call, all derived from a single clock reading, so the
// stems stay phase-aligned; a stem shorter than the resume point is
// clamped to just before its own end and starts already drained.
//
// On platforms whose output starts suspended until user activation,
// Play must be invoked from a direct user action; it resumes the
// device synchronously before starting sources.
func (e *Engine) Play() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrClosed
	}
	if e.state == StatePlaying {
		return ErrAlreadyPlaying
	}
	if !e.state.loaded() {
		return ErrNotLoaded
	}

	if err := e.device.Resume(); err != nil {
		return fmt.Errorf("%w: %v", ErrEngineUnavailable, err)
	}

	e.startClock = e.clock.Now() - e.pauseOffset
	sources := e.attachSources(e.pauseOffset)
	e.device.Play(sources...)
	e.watchdog.arm(e.master-e.pauseOffset+config.WatchdogMargin, e.endOfSong)
	e.setState(StatePlaying)
	return nil
}

// attachSources creates one fresh source per stem at the given offset
// and routes each through its registry gain node. Called with the
// engine mutex held.
func (e *Engine) attachSources(offset time.Duration) []beep.Streamer {
	e.device.Lock()
	defer e.device.Unlock()

	sources := make([]beep.Streamer, 0, len(e.registry.names))
	for _, name := range e.registry.names {
		t := e.registry.tracks[name]

		start := int(offset.Seconds() * float64(t.buf.Rate))
		eps := int(config.OffsetEpsilon.Seconds() * float64(t.buf.Rate))
		if eps < 1 {
			eps = 1
		}
		if limit := t.buf.Len() - eps; start > limit {
			start = limit
			if start < 0 {
				start = 0
			}
		}

		var stream beep.Streamer = newBufferSource(t.buf, start)
		if t.buf.Rate != config.SampleRate {
			stream = beep.Resample(config.ResampleQuality,
				beep.SampleRate(t.buf.Rate), beep.SampleRate(config.SampleRate), stream)
		}
		t.gain.Streamer = stream
		sources = append(sources, t.gain)
	}
	return sources
}

// Pause halts playback and records the resume point.
func (e *Engine) Pause() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrClosed
	}
	if e.state != StatePlaying {
		return ErrNotPlaying
	}

	offset := e.clock.Now() - e.startClock
	if offset < 0 {
		offset = 0
	}
	if offset > e.master {
		offset = e.master
	}
	e.pauseOffset = offset
	e.startClock = 0
	e.watchdog.disarm()
	e.device.Clear()
	e.setState(StatePaused)
	return nil
}

// Stop halts playback and rewinds the timeline. It is idempotent and
// valid from any state; before the stems are loaded it does nothing.
func (e *Engine) Stop() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrClosed
	}
	if !e.state.loaded() {
		return nil
	}

	e.watchdog.disarm()
	e.device.Clear()
	e.pauseOffset = 0
	e.startClock = 0
	if e.state != StateStopped {
		e.setState(StateStopped)
	}
	return nil
}

// endOfSong runs when the watchdog fires: the longest stem has
// finished, so force the transport back to Stopped. A stale generation
// means the session was superseded and the firing is ignored.
func (e *Engine) endOfSong(gen uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.watchdog.live(gen) || e.state != StatePlaying {
		return
	}

	e.watchdog.disarm()
	e.device.Clear()
	e.pauseOffset = 0
	e.startClock = 0
	e.setState(StateStopped)
}

// Elapsed returns the current position on the shared timeline.
func (e *Engine) Elapsed() time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != StatePlaying {
		return e.pauseOffset
	}
	elapsed := e.clock.Now() - e.startClock
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > e.master {
		elapsed = e.master
	}
	return elapsed
}

// State returns the current transport state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// MasterDuration returns the song length, the longest stem duration.
func (e *Engine) MasterDuration() time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.master
}

// Registry exposes the track registry for mix control; nil before the
// stems are loaded.
func (e *Engine) Registry() *Registry {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.registry
}

// setState transitions the state machine and notifies subscribers.
// Called with the engine mutex held.
func (e *Engine) setState(next State) {
	prev := e.state
	e.state = next
	e.notify(StateChange{Previous: prev, Current: next})
}

// Close stops playback, cancels the watchdog, signals subscribers and
// releases the output device. Idempotent.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return nil
	}
	e.closed = true
	e.watchdog.disarm()
	if e.state.loaded() {
		e.device.Clear()
	}
	for _, sub := range e.subs {
		close(sub.Done)
	}
	e.subs = nil
	return e.device.Close()
}
