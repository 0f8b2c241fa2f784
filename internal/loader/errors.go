package loader

import "fmt"

// FetchError reports a failed transfer of one stem. Status is the HTTP
// status code when the server answered, 0 when the transfer itself
// failed.
type FetchError struct {
	Track   string
	Locator string
	Status  int
	Err     error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("failed to fetch track %q from %s: HTTP %d", e.Track, e.Locator, e.Status)
	}
	return fmt.Sprintf("failed to fetch track %q from %s: %v", e.Track, e.Locator, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// DecodeError reports a stem whose payload could not be decoded as
// audio.
type DecodeError struct {
	Track string
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode track %q: %v", e.Track, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
