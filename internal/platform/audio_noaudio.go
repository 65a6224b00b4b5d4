//go:build noaudio

package platform

import "hitit/internal/core/soundbank"

func newAudioLoader(float64) soundbank.Loader {
	return newSilentLoader()
}
