package transport

import (
	"sort"
	"time"

	"github.com/gopxl/beep/v2/effects"

	"github.com/jonasaneufeld-debug/sunny-day-mixer/internal/audio"
	"github.com/jonasaneufeld-debug/sunny-day-mixer/internal/loader"
)

// track bundles one stem's immutable buffer with its live mix
// controls. The gain node survives across playback sessions; only its
// inner streamer is swapped per session.
type track struct {
	name    string
	buf     *audio.Buffer
	profile *audio.Profile
	level   float64
	muted   bool
	gain    *effects.Gain
}

// apply writes the effective gain to the audio graph. Mute wins over
// the stored level without discarding it.
func (t *track) apply() {
	effective := t.level
	if t.muted {
		effective = 0
	}
	// effects.Gain multiplies by 1+Gain
	t.gain.Gain = effective - 1
}

// Registry maps stem names to their buffers and mix controls. It is
// built exactly once, after every stem decoded.
type Registry struct {
	device Device
	tracks map[string]*track
	names  []string
	master time.Duration
}

// NewRegistry wires a gain node for every loaded stem, with gain 1.0
// and mute off.
func NewRegistry(tracks map[string]*loader.Track, device Device) *Registry {
	r := &Registry{
		device: device,
		tracks: make(map[string]*track, len(tracks)),
	}
	for name, lt := range tracks {
		t := &track{
			name:    name,
			buf:     lt.Buffer,
			profile: lt.Profile,
			level:   1.0,
			gain:    &effects.Gain{},
		}
		t.apply()
		r.tracks[name] = t
		r.names = append(r.names, name)
		if d := lt.Buffer.Duration(); d > r.master {
			r.master = d
		}
	}
	sort.Strings(r.names)
	return r
}

// TrackNames returns the stem names in stable sorted order.
func (r *Registry) TrackNames() []string {
	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}

// Duration returns one stem's play time.
func (r *Registry) Duration(name string) (time.Duration, error) {
	t, ok := r.tracks[name]
	if !ok {
		return 0, ErrUnknownTrack
	}
	return t.buf.Duration(), nil
}

// MasterDuration is the longest stem duration, the song length on the
// shared timeline.
func (r *Registry) MasterDuration() time.Duration {
	return r.master
}

// SetGain clamps level to [0, 1] and applies it immediately, also
// during active playback.
func (r *Registry) SetGain(name string, level float64) error {
	t, ok := r.tracks[name]
	if !ok {
		return ErrUnknownTrack
	}
	if level < 0 {
		level = 0
	}
	if level > 1 {
		level = 1
	}
	r.device.Lock()
	t.level = level
	t.apply()
	r.device.Unlock()
	return nil
}

// SetMute silences or restores a stem without touching its gain level.
func (r *Registry) SetMute(name string, muted bool) error {
	t, ok := r.tracks[name]
	if !ok {
		return ErrUnknownTrack
	}
	r.device.Lock()
	t.muted = muted
	t.apply()
	r.device.Unlock()
	return nil
}

// Gain returns a stem's stored level, independent of mute.
func (r *Registry) Gain(name string) (float64, error) {
	t, ok := r.tracks[name]
	if !ok {
		return 0, ErrUnknownTrack
	}
	r.device.Lock()
	level := t.level
	r.device.Unlock()
	return level, nil
}

// Muted returns a stem's mute flag.
func (r *Registry) Muted(name string) (bool, error) {
	t, ok := r.tracks[name]
	if !ok {
		return false, ErrUnknownTrack
	}
	r.device.Lock()
	muted := t.muted
	r.device.Unlock()
	return muted, nil
}

// Profile returns the stem statistics computed at load time.
func (r *Registry) Profile(name string) (*audio.Profile, error) {
	t, ok := r.tracks[name]
	if !ok {
		return nil, ErrUnknownTrack
	}
	return t.profile, nil
}
