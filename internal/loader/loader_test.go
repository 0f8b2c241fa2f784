package loader

import (
	"context"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// encodeTestWAV writes a sine tone WAV of the given frame count to a
// temp file and returns its bytes.
func encodeTestWAV(t *testing.T, frames int) []byte {
	t.Helper()

	path := filepath.Join(t.TempDir(), "stem.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create temp WAV: %v", err)
	}

	enc := wav.NewEncoder(f, 44100, 16, 2, 1)
	data := make([]int, frames*2)
	for i := 0; i < frames; i++ {
		s := int(0.4 * 32767 * math.Sin(2*math.Pi*220*float64(i)/44100))
		data[i*2] = s
		data[i*2+1] = s
	}
	buf := &goaudio.IntBuffer{
		Data:           data,
		Format:         &goaudio.Format{NumChannels: 2, SampleRate: 44100},
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		t.Fatalf("Failed to write WAV data: %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("Failed to close encoder: %v", err)
	}
	f.Close()

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read back WAV: %v", err)
	}
	return raw
}

func TestLoadFromHTTP(t *testing.T) {
	wavBytes := encodeTestWAV(t, 4410)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(wavBytes)
	}))
	defer srv.Close()

	specs := map[string]string{
		"bass":  srv.URL + "/bass.wav",
		"drums": srv.URL + "/drums.wav",
	}

	var order []string
	tracks, err := New().Load(context.Background(), specs, func(track string, index, total int) {
		order = append(order, track)
		if total != 2 {
			t.Errorf("Progress total = %d, want 2", total)
		}
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(tracks) != 2 {
		t.Fatalf("Loaded %d tracks, want 2", len(tracks))
	}
	if len(order) != 2 || order[0] != "bass" || order[1] != "drums" {
		t.Errorf("Progress order = %v, want sorted [bass drums]", order)
	}
	for name, tr := range tracks {
		if tr.Name != name {
			t.Errorf("Track %q carries name %q", name, tr.Name)
		}
		if tr.Buffer.Len() != 4410 {
			t.Errorf("Track %q has %d frames, want 4410", name, tr.Buffer.Len())
		}
		if tr.Profile == nil {
			t.Errorf("Track %q missing profile", name)
		}
	}
}

func TestLoadFromFile(t *testing.T) {
	wavBytes := encodeTestWAV(t, 2205)
	path := filepath.Join(t.TempDir(), "vocals.wav")
	if err := os.WriteFile(path, wavBytes, 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	tracks, err := New().Load(context.Background(), map[string]string{"vocals": path}, nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if tracks["vocals"].Buffer.Len() != 2205 {
		t.Errorf("Frames = %d, want 2205", tracks["vocals"].Buffer.Len())
	}
}

func TestLoadHTTPStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := New().Load(context.Background(), map[string]string{"guitar": srv.URL + "/missing.wav"}, nil)
	if err == nil {
		t.Fatal("Expected error for 404 response, got nil")
	}

	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("Error is %T, want *FetchError", err)
	}
	if fe.Track != "guitar" {
		t.Errorf("FetchError.Track = %q, want %q", fe.Track, "guitar")
	}
	if fe.Status != http.StatusNotFound {
		t.Errorf("FetchError.Status = %d, want 404", fe.Status)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := New().Load(context.Background(), map[string]string{"keys": "/nonexistent/keys.wav"}, nil)
	if err == nil {
		t.Fatal("Expected error for missing file, got nil")
	}

	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("Error is %T, want *FetchError", err)
	}
	if fe.Track != "keys" {
		t.Errorf("FetchError.Track = %q, want %q", fe.Track, "keys")
	}
}

func TestLoadDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("definitely not audio"))
	}))
	defer srv.Close()

	_, err := New().Load(context.Background(), map[string]string{"synth": srv.URL + "/synth.wav"}, nil)
	if err == nil {
		t.Fatal("Expected error for undecodable payload, got nil")
	}

	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("Error is %T, want *DecodeError", err)
	}
	if de.Track != "synth" {
		t.Errorf("DecodeError.Track = %q, want %q", de.Track, "synth")
	}
}

func TestLoadFailFast(t *testing.T) {
	wavBytes := encodeTestWAV(t, 441)
	var served int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		served++
		if r.URL.Path == "/a.wav" {
			http.Error(w, "gone", http.StatusGone)
			return
		}
		w.Write(wavBytes)
	}))
	defer srv.Close()

	// "a" sorts first; the failure must stop the load before "b".
	specs := map[string]string{
		"a": srv.URL + "/a.wav",
		"b": srv.URL + "/b.wav",
	}
	tracks, err := New().Load(context.Background(), specs, nil)
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
	if tracks != nil {
		t.Errorf("Failed load returned tracks: %v", tracks)
	}
	if served != 1 {
		t.Errorf("Server saw %d requests, want 1", served)
	}
}

func TestMasterDuration(t *testing.T) {
	long := encodeTestWAV(t, 44100)
	short := encodeTestWAV(t, 22050)
	dir := t.TempDir()
	longPath := filepath.Join(dir, "long.wav")
	shortPath := filepath.Join(dir, "short.wav")
	os.WriteFile(longPath, long, 0644)
	os.WriteFile(shortPath, short, 0644)

	tracks, err := New().Load(context.Background(), map[string]string{
		"long":  longPath,
		"short": shortPath,
	}, nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got := MasterDuration(tracks); got != time.Second {
		t.Errorf("MasterDuration = %v, want 1s", got)
	}
}

func TestMasterDurationEmpty(t *testing.T) {
	if got := MasterDuration(nil); got != 0 {
		t.Errorf("MasterDuration(nil) = %v, want 0", got)
	}
}
