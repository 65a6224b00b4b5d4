package timerview

import (
	"errors"
	"testing"

	"fyne.io/fyne/v2/test"

	"hitit/internal/core/interval"
	"hitit/internal/core/model"
)

func newTestWindow(t *testing.T, callbacks Callbacks) *Window {
	t.Helper()
	app := test.NewTempApp(t)
	return New(app, Options{
		Initial:     model.TimerConfig{WorkoutSeconds: 30, RestSeconds: 10, TotalRounds: 8},
		WorkoutKeys: []string{"Default", "option 1", "option 2"},
		RestKeys:    []string{"Default", "option 1"},
	}, callbacks)
}

func TestStartPassesParsedConfig(t *testing.T) {
	var started []model.TimerConfig
	view := newTestWindow(t, Callbacks{OnStart: func(config model.TimerConfig) {
		started = append(started, config)
	}})

	view.workoutEntry.SetText("3")
	view.restEntry.SetText("2")
	view.roundsEntry.SetText("2")
	view.workoutAudio.SetSelected("option 2")
	test.Tap(view.startButton)

	if len(started) != 1 {
		t.Fatalf("expected one start, got %d", len(started))
	}
	want := model.TimerConfig{WorkoutSeconds: 3, RestSeconds: 2, TotalRounds: 2, WorkoutAudioKey: "option 2", RestAudioKey: "Default"}
	if started[0] != want {
		t.Fatalf("expected %+v, got %+v", want, started[0])
	}
}

func TestStartRejectsInvalidInput(t *testing.T) {
	cases := []struct {
		workout, rest, rounds string
	}{
		{"abc", "10", "8"},
		{"30", "", "8"},
		{"30", "10", "0"},
		{"-5", "10", "8"},
	}
	for _, tc := range cases {
		started := false
		view := newTestWindow(t, Callbacks{OnStart: func(model.TimerConfig) { started = true }})
		view.workoutEntry.SetText(tc.workout)
		view.restEntry.SetText(tc.rest)
		view.roundsEntry.SetText(tc.rounds)
		test.Tap(view.startButton)
		if started {
			t.Fatalf("input %+v should not start a session", tc)
		}
	}
}

func TestControlButtonsInvokeCallbacks(t *testing.T) {
	var calls []string
	view := newTestWindow(t, Callbacks{
		OnPause:  func() { calls = append(calls, "pause") },
		OnResume: func() { calls = append(calls, "resume") },
		OnReset:  func() { calls = append(calls, "reset") },
	})

	test.Tap(view.pauseButton)
	test.Tap(view.resumeButton)
	test.Tap(view.resetButton)

	if len(calls) != 3 || calls[0] != "pause" || calls[1] != "resume" || calls[2] != "reset" {
		t.Fatalf("unexpected calls %v", calls)
	}
}

func TestSavePresetRequiresName(t *testing.T) {
	saved := 0
	view := newTestWindow(t, Callbacks{OnSavePreset: func(model.Preset) error {
		saved++
		return nil
	}})

	view.nameEntry.SetText("   ")
	test.Tap(view.saveButton)
	if saved != 0 {
		t.Fatal("blank name must not save")
	}

	view.nameEntry.SetText("Tabata")
	view.workoutEntry.SetText("20")
	test.Tap(view.saveButton)
	if saved != 1 {
		t.Fatalf("expected one save, got %d", saved)
	}
	if view.nameEntry.Text != "" {
		t.Fatal("name entry should be cleared after saving")
	}
}

func TestSavePresetKeepsNameOnFailure(t *testing.T) {
	view := newTestWindow(t, Callbacks{OnSavePreset: func(model.Preset) error {
		return errors.New("disk full")
	}})
	view.nameEntry.SetText("Tabata")
	test.Tap(view.saveButton)
	if view.nameEntry.Text != "Tabata" {
		t.Fatal("name should be kept when saving fails")
	}
}

func TestUsePresetFillsForm(t *testing.T) {
	view := newTestWindow(t, Callbacks{})
	view.SetPresets([]model.Preset{
		{Name: "EMOM", WorkoutTime: 45, RestTime: 15, Rounds: 10, WorkoutAudioKey: "option 1", RestAudioKey: "unknown"},
	})

	view.usePreset(0)

	if view.workoutEntry.Text != "45" || view.restEntry.Text != "15" || view.roundsEntry.Text != "10" {
		t.Fatalf("form not filled: %q %q %q", view.workoutEntry.Text, view.restEntry.Text, view.roundsEntry.Text)
	}
	if view.workoutAudio.Selected != "option 1" {
		t.Fatalf("workout sound = %q", view.workoutAudio.Selected)
	}
	if view.restAudio.Selected != model.DefaultAudioKey {
		t.Fatalf("unknown key should select default, got %q", view.restAudio.Selected)
	}
}

func TestDeletePresetPassesIndex(t *testing.T) {
	deleted := -1
	view := newTestWindow(t, Callbacks{OnDeletePreset: func(index int) error {
		deleted = index
		return nil
	}})
	view.SetPresets([]model.Preset{{Name: "A"}, {Name: "B"}})

	view.deletePreset(1)
	if deleted != 1 {
		t.Fatalf("expected index 1, got %d", deleted)
	}

	deleted = -1
	view.deletePreset(7)
	if deleted != -1 {
		t.Fatal("out of range index must be ignored")
	}
}

func TestDisplayLabels(t *testing.T) {
	view := newTestWindow(t, Callbacks{})

	if view.countdown.Text != "0" || view.roundLabel.Text != "Round 0 / 0" {
		t.Fatalf("idle display = %q %q", view.countdown.Text, view.roundLabel.Text)
	}

	view.SetPhase(interval.PhaseRest)
	view.SetCountdown(7, 2, 4)
	if view.countdown.Text != "7" || view.roundLabel.Text != "Round 2 / 4" || view.phaseLabel.Text != "Rest" {
		t.Fatalf("running display = %q %q %q", view.countdown.Text, view.roundLabel.Text, view.phaseLabel.Text)
	}

	view.SetDone(4)
	if view.countdown.Text != "Done!" || view.roundLabel.Text != "Round 4 / 4" {
		t.Fatalf("done display = %q %q", view.countdown.Text, view.roundLabel.Text)
	}

	view.SetIdle()
	if view.countdown.Text != "0" || view.roundLabel.Text != "Round 0 / 0" {
		t.Fatalf("reset display = %q %q", view.countdown.Text, view.roundLabel.Text)
	}
}
