package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"hitit/internal/ui/preferences"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	WorkoutSeconds  int      `yaml:"workout_seconds"`
	RestSeconds     int      `yaml:"rest_seconds"`
	Rounds          int      `yaml:"rounds"`
	WorkoutAudioKey string   `yaml:"workout_audio_key"`
	RestAudioKey    string   `yaml:"rest_audio_key"`
	CueVolume       *float64 `yaml:"cue_volume"`
	PresetBackend   string   `yaml:"preset_backend"`
}

// LoadSettings reads user defaults from configDir/settings.yaml.
// If the file does not exist, default settings are returned.
func LoadSettings(configDir string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(settingsPath(configDir))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// SaveSettings writes user defaults to configDir/settings.yaml.
func SaveSettings(configDir string, settings preferences.Settings) error {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	volume := settings.CueVolume
	fileData := yamlSettings{
		WorkoutSeconds:  settings.WorkoutSeconds,
		RestSeconds:     settings.RestSeconds,
		Rounds:          settings.Rounds,
		WorkoutAudioKey: settings.WorkoutAudioKey,
		RestAudioKey:    settings.RestAudioKey,
		CueVolume:       &volume,
		PresetBackend:   string(settings.PresetBackend),
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(settingsPath(configDir), serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}
	return nil
}

func settingsPath(configDir string) string {
	return filepath.Join(configDir, settingsFileName)
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if fileData.WorkoutSeconds > 0 {
		settings.WorkoutSeconds = fileData.WorkoutSeconds
	}
	if fileData.RestSeconds > 0 {
		settings.RestSeconds = fileData.RestSeconds
	}
	if fileData.Rounds > 0 {
		settings.Rounds = fileData.Rounds
	}
	if key := strings.TrimSpace(fileData.WorkoutAudioKey); key != "" {
		settings.WorkoutAudioKey = key
	}
	if key := strings.TrimSpace(fileData.RestAudioKey); key != "" {
		settings.RestAudioKey = key
	}

	if fileData.CueVolume != nil && *fileData.CueVolume >= 0 && *fileData.CueVolume <= 1 {
		settings.CueVolume = *fileData.CueVolume
	}

	switch backend := preferences.PresetBackend(fileData.PresetBackend); backend {
	case preferences.PresetsInPreferences, preferences.PresetsInFile:
		settings.PresetBackend = backend
	}
}
