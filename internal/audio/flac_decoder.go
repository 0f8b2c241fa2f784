package audio

import (
	"fmt"
	"io"

	"github.com/mewkiz/flac"
)

// DecodeFLAC decodes a whole FLAC payload into a stereo buffer.
func DecodeFLAC(r io.Reader) (*Buffer, error) {
	stream, err := flac.New(r)
	if err != nil {
		return nil, fmt.Errorf("failed to create FLAC decoder: %w", err)
	}
	defer stream.Close()

	samples := make([][2]float64, 0, stream.Info.NSamples)

	for {
		frame, err := stream.ParseNext()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("failed to parse FLAC frame: %w", err)
		}

		// FLAC frames carry one subframe per channel.
		maxVal := float64(int64(1) << (frame.BitsPerSample - 1))
		frameSamples := len(frame.Subframes[0].Samples)

		for i := 0; i < frameSamples; i++ {
			var left, right float64
			if len(frame.Subframes) == 1 {
				left = float64(frame.Subframes[0].Samples[i]) / maxVal
				right = left
			} else {
				left = float64(frame.Subframes[0].Samples[i]) / maxVal
				right = float64(frame.Subframes[1].Samples[i]) / maxVal
			}
			samples = append(samples, [2]float64{left, right})
		}
	}

	if len(samples) == 0 {
		return nil, fmt.Errorf("FLAC stream contains no audio frames")
	}

	return &Buffer{Samples: samples, Rate: int(stream.Info.SampleRate)}, nil
}
