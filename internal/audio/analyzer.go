package audio

import (
	"fmt"
	"math"

	"github.com/argusdusty/gofft"

	"github.com/jonasaneufeld-debug/sunny-day-mixer/internal/config"
)

// Profile holds per-stem statistics computed once at load time for the
// mixer display.
type Profile struct {
	Peak     float64   // highest absolute sample value
	RMS      float64   // root mean square level
	Spectrum []float64 // normalized bar heights (0.0-1.0), bass first
}

// Analyze computes levels and a frequency preview for one stem.
func Analyze(buf *Buffer) (*Profile, error) {
	p := &Profile{}

	var sumSquares float64
	for _, s := range buf.Samples {
		mono := (s[0] + s[1]) / 2
		if a := math.Abs(mono); a > p.Peak {
			p.Peak = a
		}
		sumSquares += mono * mono
	}
	if n := len(buf.Samples); n > 0 {
		p.RMS = math.Sqrt(sumSquares / float64(n))
	}

	spectrum, err := computeSpectrum(buf, config.SpectrumBars)
	if err != nil {
		return nil, err
	}
	p.Spectrum = spectrum

	return p, nil
}

// computeSpectrum runs a single windowed FFT over a chunk from the
// middle of the stem and bins the magnitudes into bars.
func computeSpectrum(buf *Buffer, numBars int) ([]float64, error) {
	windowed := make([]float64, config.SpectrumFFTSize)

	// Sample from the middle of the stem where the arrangement is
	// usually fully present.
	start := 0
	if extra := buf.Len() - config.SpectrumFFTSize; extra > 0 {
		start = extra / 2
	}
	n := buf.Len() - start
	if n > config.SpectrumFFTSize {
		n = config.SpectrumFFTSize
	}
	for i := 0; i < n; i++ {
		s := buf.Samples[start+i]
		mono := (s[0] + s[1]) / 2
		// Hanning window
		w := 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(config.SpectrumFFTSize-1)))
		windowed[i] = mono * w
	}

	coeffs := gofft.Float64ToComplex128Array(windowed)
	if err := gofft.FFT(coeffs); err != nil {
		return nil, fmt.Errorf("failed to compute spectrum: %w", err)
	}

	return binSpectrum(coeffs, numBars), nil
}

// binSpectrum averages FFT magnitudes into numBars bars and normalizes
// the result to 0.0-1.0. Only the lower three quarters of the positive
// spectrum is used; the topmost bins carry almost no musical content.
func binSpectrum(coeffs []complex128, numBars int) []float64 {
	halfSize := len(coeffs) / 2
	maxFreqBin := (halfSize * 3) / 4

	bars := make([]float64, numBars)
	binsPerBar := maxFreqBin / numBars
	if binsPerBar == 0 {
		binsPerBar = 1
	}

	maxBar := 0.0
	for bar := 0; bar < numBars; bar++ {
		start := bar * binsPerBar
		end := start + binsPerBar
		if end > maxFreqBin {
			end = maxFreqBin
		}

		var sum float64
		for i := start; i < end; i++ {
			sum += math.Sqrt(real(coeffs[i])*real(coeffs[i]) + imag(coeffs[i])*imag(coeffs[i]))
		}
		bars[bar] = sum / float64(binsPerBar)
		if bars[bar] > maxBar {
			maxBar = bars[bar]
		}
	}

	if maxBar > 0 {
		for i := range bars {
			// Log scale reads better than raw magnitude
			bars[i] = math.Log10(1 + 9*bars[i]/maxBar)
		}
	}

	return bars
}
