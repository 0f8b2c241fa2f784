package audio

import (
	"math"
	"testing"

	"github.com/jonasaneufeld-debug/sunny-day-mixer/internal/config"
)

func sineBuffer(freq float64, amplitude float64, rate, frames int) *Buffer {
	samples := make([][2]float64, frames)
	for i := range samples {
		v := amplitude * math.Sin(2*math.Pi*freq*float64(i)/float64(rate))
		samples[i] = [2]float64{v, v}
	}
	return &Buffer{Samples: samples, Rate: rate}
}

func TestAnalyzeLevels(t *testing.T) {
	buf := sineBuffer(440, 0.8, 44100, 44100)

	p, err := Analyze(buf)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if math.Abs(p.Peak-0.8) > 0.01 {
		t.Errorf("Peak = %f, want ~0.8", p.Peak)
	}
	// RMS of a sine is amplitude / sqrt(2)
	wantRMS := 0.8 / math.Sqrt2
	if math.Abs(p.RMS-wantRMS) > 0.01 {
		t.Errorf("RMS = %f, want ~%f", p.RMS, wantRMS)
	}
}

func TestAnalyzeSpectrumShape(t *testing.T) {
	// A low tone should light up the bass bars, not the treble end.
	buf := sineBuffer(100, 0.9, 44100, config.SpectrumFFTSize*4)

	p, err := Analyze(buf)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if len(p.Spectrum) != config.SpectrumBars {
		t.Fatalf("Spectrum has %d bars, want %d", len(p.Spectrum), config.SpectrumBars)
	}

	maxBar, maxIdx := 0.0, 0
	for i, b := range p.Spectrum {
		if b < 0 || b > 1.0 {
			t.Fatalf("Bar %d out of range: %f", i, b)
		}
		if b > maxBar {
			maxBar, maxIdx = b, i
		}
	}
	if maxIdx >= config.SpectrumBars/4 {
		t.Errorf("Loudest bar at index %d, expected it in the bass quarter", maxIdx)
	}
	if maxBar < 0.9 {
		t.Errorf("Loudest bar = %f, normalization should push it near 1.0", maxBar)
	}
}

func TestAnalyzeSilence(t *testing.T) {
	buf := &Buffer{Samples: make([][2]float64, 4096), Rate: 44100}

	p, err := Analyze(buf)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if p.Peak != 0 || p.RMS != 0 {
		t.Errorf("Silence produced Peak=%f RMS=%f, want zeros", p.Peak, p.RMS)
	}
	for i, b := range p.Spectrum {
		if b != 0 {
			t.Errorf("Bar %d = %f for silence, want 0", i, b)
		}
	}
}

func TestAnalyzeShortBuffer(t *testing.T) {
	// Shorter than one FFT window; remaining samples are zero padded.
	buf := sineBuffer(440, 0.5, 44100, 100)

	p, err := Analyze(buf)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if len(p.Spectrum) != config.SpectrumBars {
		t.Errorf("Spectrum has %d bars, want %d", len(p.Spectrum), config.SpectrumBars)
	}
}
