package audio

import "time"

// Buffer holds one fully decoded stem as normalized stereo PCM.
// Buffers are immutable after decode; every playback session reads the
// same buffer by reference.
type Buffer struct {
	// Samples is interleaved as [left, right] pairs in [-1.0, 1.0].
	Samples [][2]float64

	// Rate is the sample rate the stem was recorded at, in Hz.
	Rate int
}

// Len returns the number of sample frames in the buffer.
func (b *Buffer) Len() int {
	return len(b.Samples)
}

// Duration returns the play time of the buffer.
func (b *Buffer) Duration() time.Duration {
	if b.Rate == 0 {
		return 0
	}
	return time.Duration(float64(len(b.Samples)) / float64(b.Rate) * float64(time.Second))
}
