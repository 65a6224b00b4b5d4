package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidConfig indicates a non-numeric or non-positive timer input.
var ErrInvalidConfig = errors.New("invalid timer config")

// DefaultAudioKey is the audio key used when none was chosen or the chosen one is unknown.
const DefaultAudioKey = "Default"

// TimerConfig contains the settings of a single timer session.
type TimerConfig struct {
	WorkoutSeconds  int
	RestSeconds     int
	TotalRounds     int
	WorkoutAudioKey string
	RestAudioKey    string
}

// Validate reports ErrInvalidConfig when any duration or the round count is not positive.
func (config TimerConfig) Validate() error {
	if config.WorkoutSeconds <= 0 {
		return fmt.Errorf("%w: workout seconds must be positive, got %d", ErrInvalidConfig, config.WorkoutSeconds)
	}
	if config.RestSeconds <= 0 {
		return fmt.Errorf("%w: rest seconds must be positive, got %d", ErrInvalidConfig, config.RestSeconds)
	}
	if config.TotalRounds <= 0 {
		return fmt.Errorf("%w: rounds must be positive, got %d", ErrInvalidConfig, config.TotalRounds)
	}
	return nil
}

// WithDefaultKeys fills empty audio keys with DefaultAudioKey.
func (config TimerConfig) WithDefaultKeys() TimerConfig {
	if strings.TrimSpace(config.WorkoutAudioKey) == "" {
		config.WorkoutAudioKey = DefaultAudioKey
	}
	if strings.TrimSpace(config.RestAudioKey) == "" {
		config.RestAudioKey = DefaultAudioKey
	}
	return config
}

// ParseTimerConfig builds a TimerConfig from raw form input.
func ParseTimerConfig(workout, rest, rounds, workoutKey, restKey string) (TimerConfig, error) {
	workoutSeconds, err := parseField("workout time", workout)
	if err != nil {
		return TimerConfig{}, err
	}
	restSeconds, err := parseField("rest time", rest)
	if err != nil {
		return TimerConfig{}, err
	}
	totalRounds, err := parseField("rounds", rounds)
	if err != nil {
		return TimerConfig{}, err
	}

	config := TimerConfig{
		WorkoutSeconds:  workoutSeconds,
		RestSeconds:     restSeconds,
		TotalRounds:     totalRounds,
		WorkoutAudioKey: workoutKey,
		RestAudioKey:    restKey,
	}.WithDefaultKeys()
	if err := config.Validate(); err != nil {
		return TimerConfig{}, err
	}
	return config, nil
}

func parseField(name, value string) (int, error) {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not a number", ErrInvalidConfig, name, value)
	}
	return parsed, nil
}
