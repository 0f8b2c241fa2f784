package audio

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// DecodeWAV decodes a whole WAV payload into a stereo buffer.
func DecodeWAV(r io.ReadSeeker) (*Buffer, error) {
	decoder := wav.NewDecoder(r)
	if !decoder.IsValidFile() {
		return nil, fmt.Errorf("invalid WAV file")
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to read PCM data: %w", err)
	}

	numChans := buf.Format.NumChannels
	if numChans < 1 {
		return nil, fmt.Errorf("WAV file reports %d channels", numChans)
	}

	maxVal := float64(goaudio.IntMaxSignedValue(int(decoder.BitDepth)))
	numFrames := len(buf.Data) / numChans
	samples := make([][2]float64, numFrames)

	switch numChans {
	case 1:
		// Mono - duplicate to both channels
		for i := 0; i < numFrames; i++ {
			s := float64(buf.Data[i]) / maxVal
			samples[i] = [2]float64{s, s}
		}
	case 2:
		for i := 0; i < numFrames; i++ {
			samples[i] = [2]float64{
				float64(buf.Data[i*2]) / maxVal,
				float64(buf.Data[i*2+1]) / maxVal,
			}
		}
	default:
		// Fold surround layouts down to stereo: average the extra
		// channels into both sides.
		for i := 0; i < numFrames; i++ {
			var sum float64
			for ch := 0; ch < numChans; ch++ {
				sum += float64(buf.Data[i*numChans+ch]) / maxVal
			}
			s := sum / float64(numChans)
			samples[i] = [2]float64{s, s}
		}
	}

	return &Buffer{Samples: samples, Rate: int(decoder.SampleRate)}, nil
}
