package storage

import (
	"os"
	"path/filepath"
	"testing"

	"hitit/internal/ui/preferences"
)

func TestLoadSettingsMissingFile(t *testing.T) {
	settings, err := LoadSettings(t.TempDir())
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if settings != preferences.DefaultSettings() {
		t.Fatalf("expected defaults, got %+v", settings)
	}
}

func TestSaveAndLoadSettings(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "HITit")
	settings := preferences.DefaultSettings()
	settings.WorkoutSeconds = 45
	settings.RestSeconds = 15
	settings.Rounds = 6
	settings.WorkoutAudioKey = "option 2"
	settings.CueVolume = 0
	settings.PresetBackend = preferences.PresetsInFile

	if err := SaveSettings(dir, settings); err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}
	loaded, err := LoadSettings(dir)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if loaded != settings {
		t.Fatalf("expected %+v, got %+v", settings, loaded)
	}
}

func TestLoadSettingsIgnoresInvalidValues(t *testing.T) {
	dir := t.TempDir()
	content := "workout_seconds: -5\nrounds: 0\ncue_volume: 4\npreset_backend: cloud\nrest_seconds: 12\n"
	if err := os.WriteFile(filepath.Join(dir, settingsFileName), []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	settings, err := LoadSettings(dir)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	defaults := preferences.DefaultSettings()
	if settings.WorkoutSeconds != defaults.WorkoutSeconds || settings.Rounds != defaults.Rounds {
		t.Fatalf("invalid durations should keep defaults, got %+v", settings)
	}
	if settings.CueVolume != defaults.CueVolume || settings.PresetBackend != defaults.PresetBackend {
		t.Fatalf("invalid volume/backend should keep defaults, got %+v", settings)
	}
	if settings.RestSeconds != 12 {
		t.Fatalf("valid field not applied, got %d", settings.RestSeconds)
	}
}

func TestLoadSettingsRejectsBrokenYaml(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, settingsFileName), []byte("rounds: [1, 2"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	settings, err := LoadSettings(dir)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if settings != preferences.DefaultSettings() {
		t.Fatal("defaults should be returned with the error")
	}
}
