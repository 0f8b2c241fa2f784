package transport

import "errors"

var (
	// ErrNotLoaded is returned by playback commands issued before the
	// stems finished loading.
	ErrNotLoaded = errors.New("stems not loaded")

	// ErrAlreadyPlaying is returned by Play while the transport is
	// already playing; no new sources are created.
	ErrAlreadyPlaying = errors.New("transport already playing")

	// ErrNotPlaying is returned by Pause when the transport is not
	// playing.
	ErrNotPlaying = errors.New("transport not playing")

	// ErrEngineUnavailable is returned when the output device cannot
	// be initialized or resumed.
	ErrEngineUnavailable = errors.New("audio engine unavailable")

	// ErrUnknownTrack is returned for gain or mute commands that name
	// a stem outside the fixed track set.
	ErrUnknownTrack = errors.New("unknown track")

	// ErrClosed is returned by commands issued after Close.
	ErrClosed = errors.New("transport closed")
)
