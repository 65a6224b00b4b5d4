package storage

import (
	"fmt"
	"sync"

	"hitit/internal/core/model"
	"hitit/internal/logger"
)

// Library is the in-memory preset list, saved after every change.
type Library struct {
	mu      sync.RWMutex
	store   PresetStore
	presets []model.Preset
}

// NewLibrary loads presets from store. Load failures start an empty library.
func NewLibrary(store PresetStore) *Library {
	presets, err := store.Load()
	if err != nil {
		logger.Warn("load presets failed, starting empty", "error", err)
		presets = []model.Preset{}
	}
	return &Library{store: store, presets: presets}
}

// List returns a copy of the presets in insertion order.
func (library *Library) List() []model.Preset {
	library.mu.RLock()
	defer library.mu.RUnlock()
	return append([]model.Preset(nil), library.presets...)
}

// Add appends preset and saves. On a failed save the library is left unchanged.
func (library *Library) Add(preset model.Preset) error {
	library.mu.Lock()
	defer library.mu.Unlock()

	updated := append(append([]model.Preset(nil), library.presets...), preset)
	if err := library.store.Save(updated); err != nil {
		return fmt.Errorf("save presets: %w", err)
	}
	library.presets = updated
	return nil
}

// Remove deletes the preset at index and saves.
func (library *Library) Remove(index int) error {
	library.mu.Lock()
	defer library.mu.Unlock()

	if index < 0 || index >= len(library.presets) {
		return fmt.Errorf("remove preset %d: %w", index, ErrPresetNotFound)
	}
	updated := make([]model.Preset, 0, len(library.presets)-1)
	updated = append(updated, library.presets[:index]...)
	updated = append(updated, library.presets[index+1:]...)
	if err := library.store.Save(updated); err != nil {
		return fmt.Errorf("save presets: %w", err)
	}
	library.presets = updated
	return nil
}
