package resources

import (
	"fmt"
	"sort"

	"hitit/internal/core/model"
	"hitit/internal/core/soundbank"
)

var soundFiles = map[soundbank.Slot]map[string]string{
	soundbank.SlotWorkout: {
		model.DefaultAudioKey: "workout.wav",
		"option 1":            "workout1.wav",
		"option 2":            "workout2.wav",
		"option 3":            "workout3.wav",
		"option 4":            "workout4.wav",
	},
	soundbank.SlotRest: {
		model.DefaultAudioKey: "rest.wav",
		"option 1":            "rest1.wav",
		"option 2":            "rest2.wav",
		"option 3":            "rest3.wav",
		"option 4":            "rest4.wav",
	},
	soundbank.SlotAlarm: {
		model.DefaultAudioKey: "alarm.wav",
	},
	soundbank.SlotDone: {
		model.DefaultAudioKey: "done.wav",
	},
}

// AudioResolver resolves friendly audio keys to embedded sounds.
type AudioResolver struct{}

// Resolve returns the sound for key, or the slot's default sound when key is unknown.
func (AudioResolver) Resolve(key string, slot soundbank.Slot) (soundbank.Resource, error) {
	files, ok := soundFiles[slot]
	if !ok {
		return nil, fmt.Errorf("no sounds for slot %q", slot)
	}
	fileName, ok := files[key]
	if !ok {
		fileName = files[model.DefaultAudioKey]
	}
	return Sound(fileName)
}

// AudioKeys lists the selectable keys for slot, default first.
func AudioKeys(slot soundbank.Slot) []string {
	files := soundFiles[slot]
	keys := make([]string, 0, len(files))
	for key := range files {
		if key != model.DefaultAudioKey {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return append([]string{model.DefaultAudioKey}, keys...)
}
