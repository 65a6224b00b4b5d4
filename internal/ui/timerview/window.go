package timerview

import (
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"hitit/internal/core/interval"
	"hitit/internal/core/model"
)

const (
	invalidInputMessage  = "Please enter valid numbers for workout time, rest time, and rounds."
	invalidPresetMessage = "Please enter a valid name, workout time, rest time, and rounds."
)

// Callbacks defines the actions triggered from the timer window.
type Callbacks struct {
	OnStart        func(config model.TimerConfig)
	OnPause        func()
	OnResume       func()
	OnReset        func()
	OnSavePreset   func(preset model.Preset) error
	OnDeletePreset func(index int) error
}

// Options lists the values the form offers and starts with.
type Options struct {
	Initial     model.TimerConfig
	WorkoutKeys []string
	RestKeys    []string
}

// Window is the main HITit window. Its methods must be called on the fyne thread.
type Window struct {
	window    fyne.Window
	callbacks Callbacks

	workoutEntry *widget.Entry
	restEntry    *widget.Entry
	roundsEntry  *widget.Entry
	nameEntry    *widget.Entry
	workoutAudio *widget.Select
	restAudio    *widget.Select

	countdown  *widget.Label
	roundLabel *widget.Label
	phaseLabel *widget.Label

	startButton  *widget.Button
	pauseButton  *widget.Button
	resumeButton *widget.Button
	resetButton  *widget.Button
	saveButton   *widget.Button

	presetList *widget.List
	presets    []model.Preset
}

// New creates the timer window.
func New(app fyne.App, options Options, callbacks Callbacks) *Window {
	window := app.NewWindow("HITit")

	view := &Window{
		window:       window,
		callbacks:    callbacks,
		workoutEntry: widget.NewEntry(),
		restEntry:    widget.NewEntry(),
		roundsEntry:  widget.NewEntry(),
		nameEntry:    widget.NewEntry(),
		workoutAudio: widget.NewSelect(withDefault(options.WorkoutKeys), nil),
		restAudio:    widget.NewSelect(withDefault(options.RestKeys), nil),
		countdown:    widget.NewLabelWithStyle("0", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		roundLabel:   widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{}),
		phaseLabel:   widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{}),
	}
	view.nameEntry.SetPlaceHolder("Preset name")

	view.startButton = widget.NewButton("Start", view.handleStart)
	view.pauseButton = widget.NewButton("Pause", func() {
		if view.callbacks.OnPause != nil {
			view.callbacks.OnPause()
		}
	})
	view.resumeButton = widget.NewButton("Resume", func() {
		if view.callbacks.OnResume != nil {
			view.callbacks.OnResume()
		}
	})
	view.resetButton = widget.NewButton("Reset", func() {
		if view.callbacks.OnReset != nil {
			view.callbacks.OnReset()
		}
	})
	view.saveButton = widget.NewButton("Save preset", view.handleSavePreset)

	view.presetList = widget.NewList(
		func() int { return len(view.presets) },
		func() fyne.CanvasObject {
			use := widget.NewButton("Use", nil)
			remove := widget.NewButton("Delete", nil)
			return container.NewBorder(nil, nil, nil, container.NewHBox(use, remove), widget.NewLabel(""))
		},
		view.updatePresetRow,
	)

	form := widget.NewForm(
		widget.NewFormItem("Workout (sec)", view.workoutEntry),
		widget.NewFormItem("Rest (sec)", view.restEntry),
		widget.NewFormItem("Rounds", view.roundsEntry),
		widget.NewFormItem("Workout sound", view.workoutAudio),
		widget.NewFormItem("Rest sound", view.restAudio),
	)

	display := container.NewVBox(view.phaseLabel, view.countdown, view.roundLabel)
	controls := container.NewHBox(layout.NewSpacer(), view.startButton, view.pauseButton, view.resumeButton, view.resetButton, layout.NewSpacer())
	saving := container.NewBorder(nil, nil, nil, view.saveButton, view.nameEntry)
	top := container.NewVBox(
		widget.NewLabelWithStyle("Timer", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		form,
		controls,
		display,
		widget.NewSeparator(),
		widget.NewLabelWithStyle("Presets", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		saving,
	)

	window.SetContent(container.NewBorder(top, nil, nil, nil, view.presetList))
	window.Resize(fyne.NewSize(460, 640))

	view.ApplyConfig(options.Initial)
	view.SetIdle()
	return view
}

// Window returns the underlying fyne window.
func (view *Window) Window() fyne.Window {
	return view.window
}

// Show displays the window and brings it to the front.
func (view *Window) Show() {
	view.window.Show()
	view.window.RequestFocus()
}

// ApplyConfig fills the form from config.
func (view *Window) ApplyConfig(config model.TimerConfig) {
	config = config.WithDefaultKeys()
	view.workoutEntry.SetText(positiveText(config.WorkoutSeconds))
	view.restEntry.SetText(positiveText(config.RestSeconds))
	view.roundsEntry.SetText(positiveText(config.TotalRounds))
	selectKey(view.workoutAudio, config.WorkoutAudioKey)
	selectKey(view.restAudio, config.RestAudioKey)
}

// ApplyPreset fills the form from preset.
func (view *Window) ApplyPreset(preset model.Preset) {
	view.ApplyConfig(preset.TimerConfig())
}

// SetPresets replaces the listed presets.
func (view *Window) SetPresets(presets []model.Preset) {
	view.presets = append([]model.Preset(nil), presets...)
	view.presetList.Refresh()
}

// SetCountdown shows the remaining seconds and the round.
func (view *Window) SetCountdown(remaining int, round, totalRounds int) {
	view.countdown.SetText(strconv.Itoa(remaining))
	view.roundLabel.SetText(fmt.Sprintf("Round %d / %d", round, totalRounds))
}

// SetPhase shows the running phase.
func (view *Window) SetPhase(phase interval.Phase) {
	view.phaseLabel.SetText(PhaseTitle(phase))
}

// SetDone shows the finished session.
func (view *Window) SetDone(totalRounds int) {
	view.countdown.SetText("Done!")
	view.roundLabel.SetText(fmt.Sprintf("Round %d / %d", totalRounds, totalRounds))
	view.phaseLabel.SetText(PhaseTitle(interval.PhaseDone))
}

// SetIdle shows the display of a reset timer.
func (view *Window) SetIdle() {
	view.countdown.SetText("0")
	view.roundLabel.SetText("Round 0 / 0")
	view.phaseLabel.SetText(PhaseTitle(interval.PhaseIdle))
}

// ShowError displays message in a dialog.
func (view *Window) ShowError(message string) {
	dialog.ShowInformation("Error", message, view.window)
}

// CurrentConfig parses the form.
func (view *Window) CurrentConfig() (model.TimerConfig, error) {
	return model.ParseTimerConfig(
		view.workoutEntry.Text,
		view.restEntry.Text,
		view.roundsEntry.Text,
		view.workoutAudio.Selected,
		view.restAudio.Selected,
	)
}

func (view *Window) handleStart() {
	config, err := view.CurrentConfig()
	if err != nil {
		view.ShowError(invalidInputMessage)
		return
	}
	if view.callbacks.OnStart != nil {
		view.callbacks.OnStart(config)
	}
}

func (view *Window) handleSavePreset() {
	config, err := view.CurrentConfig()
	if err != nil {
		view.ShowError(invalidPresetMessage)
		return
	}
	preset, err := model.NewPreset(view.nameEntry.Text, config)
	if err != nil {
		view.ShowError(invalidPresetMessage)
		return
	}
	if view.callbacks.OnSavePreset != nil {
		if err := view.callbacks.OnSavePreset(preset); err != nil {
			view.ShowError(fmt.Sprintf("Could not save preset: %v", err))
			return
		}
	}
	view.nameEntry.SetText("")
	dialog.ShowInformation("Success", "Preset saved successfully.", view.window)
}

func (view *Window) usePreset(index int) {
	if index < 0 || index >= len(view.presets) {
		return
	}
	preset := view.presets[index]
	view.ApplyPreset(preset)
	dialog.ShowInformation("Loaded", "Loaded preset: "+preset.Name, view.window)
}

func (view *Window) deletePreset(index int) {
	if index < 0 || index >= len(view.presets) || view.callbacks.OnDeletePreset == nil {
		return
	}
	if err := view.callbacks.OnDeletePreset(index); err != nil {
		view.ShowError(fmt.Sprintf("Could not delete preset: %v", err))
	}
}

func (view *Window) updatePresetRow(id widget.ListItemID, item fyne.CanvasObject) {
	if id < 0 || id >= len(view.presets) {
		return
	}
	preset := view.presets[id]
	row := item.(*fyne.Container)
	label := row.Objects[0].(*widget.Label)
	buttons := row.Objects[1].(*fyne.Container)

	label.SetText(fmt.Sprintf("%s  %ds / %ds x %d", preset.Name, preset.WorkoutTime, preset.RestTime, preset.Rounds))
	buttons.Objects[0].(*widget.Button).OnTapped = func() { view.usePreset(id) }
	buttons.Objects[1].(*widget.Button).OnTapped = func() { view.deletePreset(id) }
}

// PhaseTitle returns the display name of phase.
func PhaseTitle(phase interval.Phase) string {
	switch phase {
	case interval.PhaseWorkout:
		return "Workout"
	case interval.PhaseRest:
		return "Rest"
	case interval.PhaseAlarm:
		return "Time!"
	case interval.PhaseDone:
		return "Finished"
	default:
		return "Ready"
	}
}

func withDefault(keys []string) []string {
	for _, key := range keys {
		if key == model.DefaultAudioKey {
			return keys
		}
	}
	return append([]string{model.DefaultAudioKey}, keys...)
}

func selectKey(selector *widget.Select, key string) {
	for _, option := range selector.Options {
		if strings.EqualFold(option, key) {
			selector.SetSelected(option)
			return
		}
	}
	selector.SetSelected(model.DefaultAudioKey)
}

func positiveText(value int) string {
	if value <= 0 {
		return ""
	}
	return strconv.Itoa(value)
}
