package audio

import (
	"fmt"
	"io"

	mp3 "github.com/hajimehoshi/go-mp3"
)

// DecodeMP3 decodes a whole MP3 payload into a stereo buffer.
func DecodeMP3(r io.Reader) (*Buffer, error) {
	decoder, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("failed to create MP3 decoder: %w", err)
	}

	// go-mp3 always outputs interleaved 16-bit stereo: L0 R0 L1 R1 ...
	raw, err := io.ReadAll(decoder)
	if err != nil {
		return nil, fmt.Errorf("failed to read MP3 data: %w", err)
	}

	numFrames := len(raw) / 4
	samples := make([][2]float64, numFrames)
	for i := 0; i < numFrames; i++ {
		left := int16(raw[i*4]) | int16(raw[i*4+1])<<8
		right := int16(raw[i*4+2]) | int16(raw[i*4+3])<<8
		samples[i] = [2]float64{
			float64(left) / 32768.0,
			float64(right) / 32768.0,
		}
	}

	return &Buffer{Samples: samples, Rate: decoder.SampleRate()}, nil
}
