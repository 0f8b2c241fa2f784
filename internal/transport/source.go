package transport

import (
	"fmt"

	"github.com/jonasaneufeld-debug/sunny-day-mixer/internal/audio"
)

// bufferSource streams one stem's decoded buffer from a fixed start
// offset. A fresh source is created for every playback session; the
// buffer itself is shared read-only across sessions.
type bufferSource struct {
	buf *audio.Buffer
	pos int
}

func newBufferSource(buf *audio.Buffer, startSample int) *bufferSource {
	if startSample < 0 {
		startSample = 0
	}
	if startSample > buf.Len() {
		startSample = buf.Len()
	}
	return &bufferSource{buf: buf, pos: startSample}
}

// Stream fills samples from the buffer and reports false once the stem
// is drained; the mixer then drops the source silently.
func (s *bufferSource) Stream(samples [][2]float64) (int, bool) {
	if s.pos >= s.buf.Len() {
		return 0, false
	}
	n := copy(samples, s.buf.Samples[s.pos:])
	s.pos += n
	return n, true
}

func (s *bufferSource) Err() error { return nil }

func (s *bufferSource) Len() int { return s.buf.Len() }

func (s *bufferSource) Position() int { return s.pos }

func (s *bufferSource) Seek(p int) error {
	if p < 0 || p > s.buf.Len() {
		return fmt.Errorf("seek position %d out of range [0, %d]", p, s.buf.Len())
	}
	s.pos = p
	return nil
}
