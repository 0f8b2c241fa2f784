package config

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Mixfile describes the fixed set of stems that make up one song.
// The track set is decided here, at initialization, and never changes
// at runtime.
type Mixfile struct {
	Title  string            `yaml:"title"`
	Tracks map[string]string `yaml:"tracks"`
}

// LoadMixfile reads and validates a YAML stem manifest.
func LoadMixfile(path string) (*Mixfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read mixfile: %w", err)
	}
	return ParseMixfile(data)
}

// ParseMixfile parses a mixfile from raw YAML.
func ParseMixfile(data []byte) (*Mixfile, error) {
	var m Mixfile
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse mixfile: %w", err)
	}

	if len(m.Tracks) == 0 {
		return nil, fmt.Errorf("mixfile defines no tracks")
	}
	for name, locator := range m.Tracks {
		if name == "" {
			return nil, fmt.Errorf("mixfile contains a track with an empty name")
		}
		if locator == "" {
			return nil, fmt.Errorf("track %q has an empty locator", name)
		}
	}
	if m.Title == "" {
		m.Title = "Untitled Mix"
	}

	return &m, nil
}

// TrackNames returns the track names in stable sorted order.
func (m *Mixfile) TrackNames() []string {
	names := make([]string, 0, len(m.Tracks))
	for name := range m.Tracks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
