package soundbank

import (
	"sync"

	"hitit/internal/core/model"
	"hitit/internal/logger"
)

// Bank holds the workout, rest, alarm and done players.
//
// Playback problems are logged and never returned: audio must not hold up the countdown.
type Bank struct {
	mu       sync.Mutex
	loader   Loader
	resolver Resolver
	players  map[Slot]*CuePlayer
	keys     map[Slot]string
}

// New creates a Bank and loads the fixed alarm and done cues.
func New(loader Loader, resolver Resolver) *Bank {
	bank := &Bank{
		loader:   loader,
		resolver: resolver,
		players:  make(map[Slot]*CuePlayer, len(Slots)),
		keys:     make(map[Slot]string, len(Slots)),
	}
	for _, slot := range Slots {
		bank.players[slot] = NewCuePlayer(slot)
	}
	bank.load(SlotAlarm, model.DefaultAudioKey)
	bank.load(SlotDone, model.DefaultAudioKey)
	return bank
}

// Configure recreates the workout and rest players from the chosen audio keys.
func (bank *Bank) Configure(workoutKey, restKey string) {
	bank.load(SlotWorkout, workoutKey)
	bank.load(SlotRest, restKey)
}

// Key returns the audio key currently loaded in slot.
func (bank *Bank) Key(slot Slot) string {
	bank.mu.Lock()
	defer bank.mu.Unlock()
	return bank.keys[slot]
}

// OnComplete registers the handler called whenever slot finishes playing.
func (bank *Bank) OnComplete(slot Slot, handler func()) {
	if player := bank.player(slot); player != nil {
		player.SetOnDone(handler)
	}
}

// Play starts slot and reports whether playback actually began.
func (bank *Bank) Play(slot Slot, fromPause bool) bool {
	player := bank.player(slot)
	if player == nil {
		logger.Warn("unknown sound slot", "slot", slot)
		return false
	}
	if err := player.Start(fromPause); err != nil {
		logger.Warn("sound playback failed", "slot", slot, "error", err)
		return false
	}
	return true
}

// PauseAll pauses every playing slot. With resetToZero every slot is also rewound.
func (bank *Bank) PauseAll(resetToZero bool) {
	for _, slot := range Slots {
		if err := bank.players[slot].Pause(resetToZero); err != nil {
			logger.Warn("sound pause failed", "slot", slot, "error", err)
		}
	}
}

// StopAndRelease frees all players. Subsequent Play calls report false until Configure.
func (bank *Bank) StopAndRelease() {
	for _, slot := range Slots {
		player := bank.players[slot]
		if err := player.Stop(); err != nil {
			logger.Debug("sound stop failed", "slot", slot, "error", err)
		}
		if err := player.Release(); err != nil {
			logger.Warn("sound release failed", "slot", slot, "error", err)
		}
	}
	bank.mu.Lock()
	bank.keys = make(map[Slot]string, len(Slots))
	bank.mu.Unlock()
}

func (bank *Bank) player(slot Slot) *CuePlayer {
	return bank.players[slot]
}

func (bank *Bank) load(slot Slot, key string) {
	player := bank.players[slot]
	release := func() {
		if err := player.Release(); err != nil {
			logger.Warn("sound release failed", "slot", slot, "error", err)
		}
		bank.mu.Lock()
		delete(bank.keys, slot)
		bank.mu.Unlock()
	}

	resource, err := bank.resolver.Resolve(key, slot)
	if err != nil {
		logger.Warn("sound resolve failed", "slot", slot, "key", key, "error", err)
		release()
		return
	}
	media, err := bank.loader.Load(resource)
	if err != nil {
		logger.Warn("sound load failed", "slot", slot, "resource", resource.Name(), "error", err)
		release()
		return
	}
	if err := player.Replace(media); err != nil {
		logger.Warn("sound release failed", "slot", slot, "error", err)
	}

	bank.mu.Lock()
	bank.keys[slot] = key
	bank.mu.Unlock()
	logger.Debug("sound loaded", "slot", slot, "key", key, "resource", resource.Name())
}
