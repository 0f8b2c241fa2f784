package config

import "time"

// Playback engine settings
const (
	// SampleRate is the output device rate. Stems recorded at a
	// different rate are resampled on the fly.
	SampleRate = 44100

	// DeviceBuffer is the speaker buffer length. Smaller values lower
	// control latency at the cost of underrun risk.
	DeviceBuffer = 100 * time.Millisecond

	// ResampleQuality is passed to the resampler for stems whose rate
	// differs from SampleRate.
	ResampleQuality = 4
)

// Transport settings
const (
	// TickInterval is how often the UI refreshes the playback position
	// while the transport is playing.
	TickInterval = 250 * time.Millisecond

	// WatchdogMargin is added to the end-of-song timer so clock and
	// timer granularity mismatch never truncates the final samples.
	WatchdogMargin = 50 * time.Millisecond

	// OffsetEpsilon keeps a resume offset strictly inside a stem that
	// is shorter than the song; such stems start already drained
	// instead of erroring.
	OffsetEpsilon = time.Millisecond
)

// Mixer UI settings
const (
	// GainStep is the per-keypress volume increment.
	GainStep = 0.05

	// SpectrumBars is the number of bars in the per-stem frequency
	// preview computed at load time.
	SpectrumBars = 24

	// SpectrumFFTSize is the FFT window used for the preview.
	// Must be a power of two.
	SpectrumFFTSize = 2048
)

// Loader settings
const (
	// FetchTimeout bounds the transfer of a single stem.
	FetchTimeout = 30 * time.Second
)
