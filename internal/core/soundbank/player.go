package soundbank

import (
	"fmt"
	"sync"
)

// CuePlayer wraps the media of a single slot.
type CuePlayer struct {
	mu     sync.Mutex
	slot   Slot
	media  Media
	onDone func()
}

// NewCuePlayer creates an empty player for slot.
func NewCuePlayer(slot Slot) *CuePlayer {
	return &CuePlayer{slot: slot}
}

// Slot returns the channel this player serves.
func (player *CuePlayer) Slot() Slot {
	return player.slot
}

// Replace swaps in new media and releases the old one.
func (player *CuePlayer) Replace(media Media) error {
	player.mu.Lock()
	old := player.media
	player.media = media
	player.mu.Unlock()

	if media != nil {
		media.SetOnCompletion(player.completed)
	}
	if old != nil && old != media {
		old.SetOnCompletion(nil)
		if err := old.Release(); err != nil {
			return fmt.Errorf("release %s media: %w", player.slot, err)
		}
	}
	return nil
}

// SetOnDone registers the handler called when playback reaches the end.
func (player *CuePlayer) SetOnDone(handler func()) {
	player.mu.Lock()
	player.onDone = handler
	player.mu.Unlock()
}

// Start begins playback. Unless fromPause is set, playback restarts from the beginning.
// Starting a player that is already playing does nothing.
func (player *CuePlayer) Start(fromPause bool) error {
	media := player.current()
	if media == nil {
		return fmt.Errorf("start %s: %w", player.slot, ErrNoMedia)
	}
	if media.IsPlaying() {
		return nil
	}
	if !fromPause {
		if err := media.SeekToStart(); err != nil {
			return fmt.Errorf("seek %s: %w", player.slot, err)
		}
	}
	if err := media.Start(); err != nil {
		return fmt.Errorf("start %s: %w", player.slot, err)
	}
	return nil
}

// Resume continues playback from the paused position.
func (player *CuePlayer) Resume() error {
	return player.Start(true)
}

// Pause halts playback if it is running and optionally rewinds.
func (player *CuePlayer) Pause(resetToZero bool) error {
	media := player.current()
	if media == nil {
		return nil
	}
	if media.IsPlaying() {
		if err := media.Pause(); err != nil {
			return fmt.Errorf("pause %s: %w", player.slot, err)
		}
	}
	if resetToZero {
		if err := media.SeekToStart(); err != nil {
			return fmt.Errorf("seek %s: %w", player.slot, err)
		}
	}
	return nil
}

// Stop halts playback and rewinds.
func (player *CuePlayer) Stop() error {
	return player.Pause(true)
}

// IsPlaying reports whether the slot is audible.
func (player *CuePlayer) IsPlaying() bool {
	media := player.current()
	return media != nil && media.IsPlaying()
}

// Release frees the underlying media.
func (player *CuePlayer) Release() error {
	return player.Replace(nil)
}

func (player *CuePlayer) current() Media {
	player.mu.Lock()
	defer player.mu.Unlock()
	return player.media
}

func (player *CuePlayer) completed() {
	player.mu.Lock()
	handler := player.onDone
	player.mu.Unlock()
	if handler != nil {
		handler()
	}
}
