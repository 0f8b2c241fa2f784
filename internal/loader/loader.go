// Package loader fetches and decodes the stems named by a mixfile.
// A load either succeeds for every track or fails as a whole; the
// returned error always names the track that broke it.
package loader

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/jonasaneufeld-debug/sunny-day-mixer/internal/audio"
	"github.com/jonasaneufeld-debug/sunny-day-mixer/internal/config"
)

// ProgressFunc is called before each track transfer starts.
type ProgressFunc func(track string, index, total int)

// Track is one loaded stem together with its display statistics.
type Track struct {
	Name    string
	Buffer  *audio.Buffer
	Profile *audio.Profile
}

// Loader fetches raw stem bytes over HTTP or from the local
// filesystem.
type Loader struct {
	client *http.Client
}

// New creates a Loader with the default fetch timeout.
func New() *Loader {
	return &Loader{
		client: &http.Client{Timeout: config.FetchTimeout},
	}
}

// Load fetches, decodes and analyzes every stem in specs. Tracks are
// processed in sorted name order so progress reporting is
// deterministic. The first failure aborts the whole load.
func (l *Loader) Load(ctx context.Context, specs map[string]string, progress ProgressFunc) (map[string]*Track, error) {
	names := make([]string, 0, len(specs))
	for name := range specs {
		names = append(names, name)
	}
	sort.Strings(names)

	tracks := make(map[string]*Track, len(specs))
	for i, name := range names {
		if progress != nil {
			progress(name, i, len(names))
		}

		raw, err := l.fetch(ctx, name, specs[name])
		if err != nil {
			return nil, err
		}

		buf, err := audio.Decode(raw)
		if err != nil {
			return nil, &DecodeError{Track: name, Err: err}
		}

		profile, err := audio.Analyze(buf)
		if err != nil {
			return nil, fmt.Errorf("failed to analyze track %q: %w", name, err)
		}

		tracks[name] = &Track{Name: name, Buffer: buf, Profile: profile}
	}

	return tracks, nil
}

// fetch retrieves the raw bytes for one stem.
func (l *Loader) fetch(ctx context.Context, name, locator string) ([]byte, error) {
	if strings.HasPrefix(locator, "http://") || strings.HasPrefix(locator, "https://") {
		return l.fetchHTTP(ctx, name, locator)
	}

	data, err := os.ReadFile(locator)
	if err != nil {
		return nil, &FetchError{Track: name, Locator: locator, Err: err}
	}
	return data, nil
}

func (l *Loader) fetchHTTP(ctx context.Context, name, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{Track: name, Locator: url, Err: err}
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, &FetchError{Track: name, Locator: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{Track: name, Locator: url, Status: resp.StatusCode}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{Track: name, Locator: url, Err: err}
	}
	return data, nil
}

// MasterDuration returns the longest stem duration; it defines the
// length of the song on the shared timeline.
func MasterDuration(tracks map[string]*Track) time.Duration {
	var master time.Duration
	for _, t := range tracks {
		if d := t.Buffer.Duration(); d > master {
			master = d
		}
	}
	return master
}
