package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"

	"hitit/internal/core/model"
	"hitit/internal/logger"
)

const (
	presetsKey      = "SavedPresets"
	presetsFileName = "presets.json"
)

// ErrPresetNotFound indicates a preset index outside the list.
var ErrPresetNotFound = errors.New("preset not found")

// PresetStore persists the ordered preset list.
type PresetStore interface {
	Load() ([]model.Preset, error)
	Save(presets []model.Preset) error
}

// PreferencesStore keeps presets as a JSON string in fyne preferences.
type PreferencesStore struct {
	prefs fyne.Preferences
}

// NewPreferencesStore wraps the application's preferences.
func NewPreferencesStore(prefs fyne.Preferences) *PreferencesStore {
	return &PreferencesStore{prefs: prefs}
}

// Load returns the stored presets. Missing or malformed data yields an empty list.
func (store *PreferencesStore) Load() ([]model.Preset, error) {
	return decodePresets([]byte(store.prefs.StringWithFallback(presetsKey, "[]"))), nil
}

// Save replaces the stored presets.
func (store *PreferencesStore) Save(presets []model.Preset) error {
	data, err := encodePresets(presets)
	if err != nil {
		return err
	}
	store.prefs.SetString(presetsKey, string(data))
	return nil
}

// FileStore keeps presets in a JSON file.
type FileStore struct {
	path string
}

// NewFileStore stores presets at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// PresetsPath returns the default preset file inside configDir.
func PresetsPath(configDir string) string {
	return filepath.Join(configDir, presetsFileName)
}

// Load reads the preset file. A missing or malformed file yields an empty list;
// only unexpected I/O failures are returned.
func (store *FileStore) Load() ([]model.Preset, error) {
	data, err := os.ReadFile(store.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.Preset{}, nil
		}
		return []model.Preset{}, fmt.Errorf("read presets file: %w", err)
	}
	return decodePresets(data), nil
}

// Save writes to a temp file and renames it over the preset file.
func (store *FileStore) Save(presets []model.Preset) error {
	data, err := encodePresets(presets)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(store.path), 0o755); err != nil {
		return fmt.Errorf("create presets directory: %w", err)
	}

	tmp := store.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write presets file: %w", err)
	}
	if err := os.Rename(tmp, store.path); err != nil {
		return fmt.Errorf("replace presets file: %w", err)
	}
	return nil
}

func decodePresets(data []byte) []model.Preset {
	var presets []model.Preset
	if err := json.Unmarshal(data, &presets); err != nil {
		logger.Warn("discarding malformed presets", "error", err)
		return []model.Preset{}
	}
	if presets == nil {
		return []model.Preset{}
	}
	return presets
}

func encodePresets(presets []model.Preset) ([]byte, error) {
	if presets == nil {
		presets = []model.Preset{}
	}
	data, err := json.Marshal(presets)
	if err != nil {
		return nil, fmt.Errorf("marshal presets: %w", err)
	}
	return data, nil
}
