package preferences

import "hitit/internal/core/model"

// PresetBackend selects where presets are kept.
type PresetBackend string

const (
	PresetsInPreferences PresetBackend = "preferences"
	PresetsInFile        PresetBackend = "file"
)

// Settings defines persisted user defaults.
type Settings struct {
	WorkoutSeconds  int
	RestSeconds     int
	Rounds          int
	WorkoutAudioKey string
	RestAudioKey    string

	CueVolume     float64
	PresetBackend PresetBackend
}

// DefaultSettings returns default settings for HITit.
func DefaultSettings() Settings {
	return Settings{
		WorkoutSeconds:  30,
		RestSeconds:     10,
		Rounds:          8,
		WorkoutAudioKey: model.DefaultAudioKey,
		RestAudioKey:    model.DefaultAudioKey,
		CueVolume:       1,
		PresetBackend:   PresetsInPreferences,
	}
}

// TimerConfig converts settings to the form's initial TimerConfig.
func (settings Settings) TimerConfig() model.TimerConfig {
	return model.TimerConfig{
		WorkoutSeconds:  settings.WorkoutSeconds,
		RestSeconds:     settings.RestSeconds,
		TotalRounds:     settings.Rounds,
		WorkoutAudioKey: settings.WorkoutAudioKey,
		RestAudioKey:    settings.RestAudioKey,
	}.WithDefaultKeys()
}

// WithLastUsed records config as the defaults for the next launch.
func (settings Settings) WithLastUsed(config model.TimerConfig) Settings {
	settings.WorkoutSeconds = config.WorkoutSeconds
	settings.RestSeconds = config.RestSeconds
	settings.Rounds = config.TotalRounds
	settings.WorkoutAudioKey = config.WorkoutAudioKey
	settings.RestAudioKey = config.RestAudioKey
	return settings
}
