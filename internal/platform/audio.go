package platform

import (
	"errors"

	"hitit/internal/core/soundbank"
)

var errMediaReleased = errors.New("media released")

// NewAudioLoader returns the sound backend selected at build time.
// Volume ranges from 0 (silent) to 1 (unchanged).
func NewAudioLoader(volume float64) soundbank.Loader {
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	return newAudioLoader(volume)
}
