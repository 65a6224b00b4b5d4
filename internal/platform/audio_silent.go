package platform

import (
	"bytes"
	"sync"
	"time"

	"github.com/gopxl/beep/v2/wav"

	"hitit/internal/core/soundbank"
)

const fallbackCueLength = time.Second

// silentLoader produces media that play nothing but still finish after the
// sound's real length, so cue-driven phase changes keep working without a device.
type silentLoader struct {
	now func() time.Time
}

func newSilentLoader() *silentLoader {
	return &silentLoader{now: time.Now}
}

func (loader *silentLoader) Load(resource soundbank.Resource) (soundbank.Media, error) {
	return &silentMedia{length: soundLength(resource.Content()), now: loader.now}, nil
}

func soundLength(content []byte) time.Duration {
	streamer, format, err := wav.Decode(bytes.NewReader(content))
	if err != nil {
		return fallbackCueLength
	}
	defer streamer.Close()
	return format.SampleRate.D(streamer.Len())
}

type silentMedia struct {
	mu           sync.Mutex
	length       time.Duration
	elapsed      time.Duration
	startedAt    time.Time
	timer        *time.Timer
	run          int
	playing      bool
	released     bool
	onCompletion func()
	now          func() time.Time
}

func (media *silentMedia) Start() error {
	media.mu.Lock()
	defer media.mu.Unlock()
	if media.released {
		return errMediaReleased
	}
	if media.playing {
		return nil
	}
	media.playing = true
	media.scheduleLocked()
	return nil
}

func (media *silentMedia) Pause() error {
	media.mu.Lock()
	defer media.mu.Unlock()
	if !media.playing {
		return nil
	}
	media.cancelLocked()
	media.elapsed += media.now().Sub(media.startedAt)
	media.playing = false
	return nil
}

func (media *silentMedia) SeekToStart() error {
	media.mu.Lock()
	defer media.mu.Unlock()
	media.elapsed = 0
	if media.playing {
		media.cancelLocked()
		media.scheduleLocked()
	}
	return nil
}

func (media *silentMedia) IsPlaying() bool {
	media.mu.Lock()
	defer media.mu.Unlock()
	return media.playing
}

func (media *silentMedia) SetOnCompletion(handler func()) {
	media.mu.Lock()
	media.onCompletion = handler
	media.mu.Unlock()
}

func (media *silentMedia) Release() error {
	media.mu.Lock()
	defer media.mu.Unlock()
	media.cancelLocked()
	media.released = true
	media.playing = false
	media.onCompletion = nil
	return nil
}

func (media *silentMedia) scheduleLocked() {
	remaining := media.length - media.elapsed
	if remaining < 0 {
		remaining = 0
	}
	media.run++
	run := media.run
	media.startedAt = media.now()
	media.timer = time.AfterFunc(remaining, func() { media.finished(run) })
}

func (media *silentMedia) cancelLocked() {
	media.run++
	if media.timer != nil {
		media.timer.Stop()
		media.timer = nil
	}
}

func (media *silentMedia) finished(run int) {
	media.mu.Lock()
	if run != media.run || !media.playing || media.released {
		media.mu.Unlock()
		return
	}
	media.playing = false
	media.elapsed = media.length
	media.timer = nil
	handler := media.onCompletion
	media.mu.Unlock()

	if handler != nil {
		handler()
	}
}
