package transport

import (
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

// Device abstracts the audio output. The engine only ever talks to the
// device; tests substitute a silent implementation.
//
// Play hands over every source of a playback session in one call, so
// the device mixes them from the same output position and the stems
// stay phase-aligned. Clear stops all sources; stopping sources that
// already drained is a no-op, never an error.
type Device interface {
	// Init opens the output at the given rate. It reports
	// ErrEngineUnavailable-worthy failures to the caller.
	Init(sr beep.SampleRate, bufferSize int) error

	// Resume unblocks a suspended output. Platforms without an
	// activation policy treat this as a no-op.
	Resume() error

	Play(sources ...beep.Streamer)
	Clear()

	// Lock and Unlock guard live mutations of the playback graph, such
	// as gain changes, against the mixing goroutine.
	Lock()
	Unlock()

	Close() error
}

// SpeakerDevice plays through the system speaker.
type SpeakerDevice struct {
	initialized bool
}

// NewSpeakerDevice returns the real output device.
func NewSpeakerDevice() *SpeakerDevice {
	return &SpeakerDevice{}
}

func (d *SpeakerDevice) Init(sr beep.SampleRate, bufferSize int) error {
	if err := speaker.Init(sr, bufferSize); err != nil {
		return err
	}
	d.initialized = true
	return nil
}

func (d *SpeakerDevice) Resume() error {
	if !d.initialized {
		return nil
	}
	return speaker.Resume()
}

func (d *SpeakerDevice) Play(sources ...beep.Streamer) {
	speaker.Play(sources...)
}

func (d *SpeakerDevice) Clear() {
	speaker.Clear()
}

func (d *SpeakerDevice) Lock() { speaker.Lock() }

func (d *SpeakerDevice) Unlock() { speaker.Unlock() }

func (d *SpeakerDevice) Close() error {
	if d.initialized {
		speaker.Close()
		d.initialized = false
	}
	return nil
}
