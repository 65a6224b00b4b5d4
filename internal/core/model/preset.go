package model

import (
	"fmt"
	"strings"
)

// Preset is a named snapshot of a TimerConfig.
//
// Field names match the persisted JSON layout.
type Preset struct {
	Name            string `json:"Name"`
	WorkoutTime     int    `json:"WorkoutTime"`
	RestTime        int    `json:"RestTime"`
	Rounds          int    `json:"Rounds"`
	WorkoutAudioKey string `json:"WorkoutAudioKey"`
	RestAudioKey    string `json:"RestAudioKey"`
}

// NewPreset snapshots config under the given name.
func NewPreset(name string, config TimerConfig) (Preset, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Preset{}, fmt.Errorf("%w: preset name is required", ErrInvalidConfig)
	}
	if err := config.Validate(); err != nil {
		return Preset{}, err
	}
	config = config.WithDefaultKeys()
	return Preset{
		Name:            name,
		WorkoutTime:     config.WorkoutSeconds,
		RestTime:        config.RestSeconds,
		Rounds:          config.TotalRounds,
		WorkoutAudioKey: config.WorkoutAudioKey,
		RestAudioKey:    config.RestAudioKey,
	}, nil
}

// TimerConfig converts the preset back into a session config.
func (preset Preset) TimerConfig() TimerConfig {
	return TimerConfig{
		WorkoutSeconds:  preset.WorkoutTime,
		RestSeconds:     preset.RestTime,
		TotalRounds:     preset.Rounds,
		WorkoutAudioKey: preset.WorkoutAudioKey,
		RestAudioKey:    preset.RestAudioKey,
	}.WithDefaultKeys()
}
