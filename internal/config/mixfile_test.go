package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseMixfile(t *testing.T) {
	data := []byte(`
title: Sunny Day
tracks:
  drums: stems/drums.wav
  bass: stems/bass.wav
  vocals: https://example.com/vocals.mp3
`)

	m, err := ParseMixfile(data)
	if err != nil {
		t.Fatalf("ParseMixfile() error = %v", err)
	}

	if m.Title != "Sunny Day" {
		t.Errorf("Title = %q, want Sunny Day", m.Title)
	}
	if len(m.Tracks) != 3 {
		t.Fatalf("len(Tracks) = %d, want 3", len(m.Tracks))
	}
	if m.Tracks["vocals"] != "https://example.com/vocals.mp3" {
		t.Errorf("Tracks[vocals] = %q", m.Tracks["vocals"])
	}
}

func TestParseMixfile_DefaultTitle(t *testing.T) {
	m, err := ParseMixfile([]byte("tracks:\n  drums: drums.wav\n"))
	if err != nil {
		t.Fatalf("ParseMixfile() error = %v", err)
	}
	if m.Title != "Untitled Mix" {
		t.Errorf("Title = %q, want Untitled Mix", m.Title)
	}
}

func TestParseMixfile_NoTracks(t *testing.T) {
	if _, err := ParseMixfile([]byte("title: Empty\n")); err == nil {
		t.Error("Expected error for mixfile without tracks, got nil")
	}
}

func TestParseMixfile_EmptyLocator(t *testing.T) {
	if _, err := ParseMixfile([]byte("tracks:\n  drums: \"\"\n")); err == nil {
		t.Error("Expected error for empty locator, got nil")
	}
}

func TestParseMixfile_InvalidYAML(t *testing.T) {
	if _, err := ParseMixfile([]byte("tracks: [not a map")); err == nil {
		t.Error("Expected error for invalid YAML, got nil")
	}
}

func TestMixfile_TrackNamesSorted(t *testing.T) {
	m := &Mixfile{Tracks: map[string]string{
		"vocals": "v.wav",
		"bass":   "b.wav",
		"drums":  "d.wav",
	}}

	names := m.TrackNames()
	want := []string{"bass", "drums", "vocals"}
	if len(names) != len(want) {
		t.Fatalf("len(TrackNames()) = %d, want %d", len(names), len(want))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("TrackNames()[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestLoadMixfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mix.yaml")
	if err := os.WriteFile(path, []byte("title: T\ntracks:\n  drums: d.wav\n"), 0o644); err != nil {
		t.Fatalf("Failed to write mixfile: %v", err)
	}

	m, err := LoadMixfile(path)
	if err != nil {
		t.Fatalf("LoadMixfile() error = %v", err)
	}
	if m.Tracks["drums"] != "d.wav" {
		t.Errorf("Tracks[drums] = %q, want d.wav", m.Tracks["drums"])
	}
}

func TestLoadMixfile_MissingFile(t *testing.T) {
	if _, err := LoadMixfile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Expected error for missing mixfile, got nil")
	}
}
