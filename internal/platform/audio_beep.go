//go:build !noaudio

package platform

import (
	"bytes"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"

	"hitit/internal/core/soundbank"
	"hitit/internal/logger"
)

const speakerSampleRate = beep.SampleRate(22050)

type beepLoader struct {
	volume   float64
	initOnce sync.Once
	initErr  error
	fallback *silentLoader
}

func newAudioLoader(volume float64) soundbank.Loader {
	return &beepLoader{volume: volume, fallback: newSilentLoader()}
}

func (loader *beepLoader) Load(resource soundbank.Resource) (soundbank.Media, error) {
	loader.initOnce.Do(func() {
		loader.initErr = speaker.Init(speakerSampleRate, speakerSampleRate.N(time.Second/10))
		if loader.initErr != nil {
			logger.Warn("audio device unavailable, cues will be silent", "error", loader.initErr)
		}
	})
	if loader.initErr != nil {
		return loader.fallback.Load(resource)
	}

	streamer, format, err := wav.Decode(bytes.NewReader(resource.Content()))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", resource.Name(), err)
	}

	var source beep.Streamer = streamer
	if format.SampleRate != speakerSampleRate {
		source = beep.Resample(4, format.SampleRate, speakerSampleRate, streamer)
	}
	media := &beepMedia{
		name:     resource.Name(),
		streamer: streamer,
		ctrl:     &beep.Ctrl{Streamer: source, Paused: true},
	}
	media.output = &effects.Volume{
		Streamer: media.ctrl,
		Base:     2,
		Volume:   volumeExponent(loader.volume),
		Silent:   loader.volume == 0,
	}
	return media, nil
}

// beepMedia plays one decoded WAV through the shared speaker mixer.
type beepMedia struct {
	mu           sync.Mutex
	name         string
	streamer     beep.StreamSeekCloser
	ctrl         *beep.Ctrl
	output       beep.Streamer
	queued       bool
	playing      bool
	released     bool
	onCompletion func()
}

func (media *beepMedia) Start() error {
	media.mu.Lock()
	defer media.mu.Unlock()
	if media.released {
		return errMediaReleased
	}
	if media.playing {
		return nil
	}

	speaker.Lock()
	media.ctrl.Paused = false
	speaker.Unlock()
	media.playing = true

	if !media.queued {
		media.queued = true
		speaker.Play(beep.Seq(media.output, beep.Callback(media.finished)))
	}
	return nil
}

func (media *beepMedia) Pause() error {
	media.mu.Lock()
	defer media.mu.Unlock()
	if media.released {
		return errMediaReleased
	}
	speaker.Lock()
	media.ctrl.Paused = true
	speaker.Unlock()
	media.playing = false
	return nil
}

func (media *beepMedia) SeekToStart() error {
	media.mu.Lock()
	defer media.mu.Unlock()
	if media.released {
		return errMediaReleased
	}
	speaker.Lock()
	err := media.streamer.Seek(0)
	speaker.Unlock()
	if err != nil {
		return fmt.Errorf("seek %s: %w", media.name, err)
	}
	return nil
}

func (media *beepMedia) IsPlaying() bool {
	media.mu.Lock()
	defer media.mu.Unlock()
	return media.playing
}

func (media *beepMedia) SetOnCompletion(handler func()) {
	media.mu.Lock()
	media.onCompletion = handler
	media.mu.Unlock()
}

func (media *beepMedia) Release() error {
	media.mu.Lock()
	defer media.mu.Unlock()
	if media.released {
		return nil
	}
	media.released = true
	media.playing = false
	media.onCompletion = nil

	speaker.Lock()
	media.ctrl.Streamer = nil
	speaker.Unlock()
	return media.streamer.Close()
}

// finished runs inside the speaker lock, so the bookkeeping is moved off it.
func (media *beepMedia) finished() {
	go func() {
		media.mu.Lock()
		media.queued = false
		if media.released {
			media.mu.Unlock()
			return
		}
		media.playing = false
		handler := media.onCompletion
		media.mu.Unlock()

		if handler != nil {
			handler()
		}
	}()
}

func volumeExponent(volume float64) float64 {
	if volume <= 0 {
		return 0
	}
	return math.Log2(volume)
}
