package audio

import (
	"bytes"
	"fmt"
)

// Format identifies a supported stem encoding.
type Format string

const (
	FormatWAV     Format = "wav"
	FormatMP3     Format = "mp3"
	FormatFLAC    Format = "flac"
	FormatUnknown Format = ""
)

// DetectFormat sniffs the payload's magic bytes. MP3 is recognized by
// an ID3 tag or a raw MPEG frame sync, so extension-less locators
// still decode.
func DetectFormat(data []byte) Format {
	if len(data) < 4 {
		return FormatUnknown
	}
	switch {
	case bytes.Equal(data[:4], []byte("RIFF")):
		return FormatWAV
	case bytes.Equal(data[:4], []byte("fLaC")):
		return FormatFLAC
	case bytes.Equal(data[:3], []byte("ID3")):
		return FormatMP3
	case data[0] == 0xFF && data[1]&0xE0 == 0xE0:
		return FormatMP3
	}
	return FormatUnknown
}

// Decode sniffs the payload format and decodes it into a stereo PCM
// buffer.
func Decode(data []byte) (*Buffer, error) {
	switch DetectFormat(data) {
	case FormatWAV:
		return DecodeWAV(bytes.NewReader(data))
	case FormatMP3:
		return DecodeMP3(bytes.NewReader(data))
	case FormatFLAC:
		return DecodeFLAC(bytes.NewReader(data))
	}
	return nil, fmt.Errorf("unrecognized audio format")
}
