package controller

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"hitit/internal/core/interval"
	"hitit/internal/core/model"
	"hitit/internal/core/soundbank"
	"hitit/internal/logger"
)

// SoundBank is the audio surface the controller drives.
type SoundBank interface {
	Configure(workoutKey, restKey string)
	OnComplete(slot soundbank.Slot, handler func())
	Play(slot soundbank.Slot, fromPause bool) bool
	PauseAll(resetToZero bool)
	StopAndRelease()
}

// Callbacks receive display updates. They are called without internal locks held,
// from the goroutine that caused the change.
type Callbacks struct {
	OnTick         func(remaining int, phase interval.Phase, round, totalRounds int)
	OnPhaseStarted func(phase interval.Phase, round int)
	OnFinished     func()
	OnError        func(message string)
}

// Controller couples the interval engine, the sound bank and the clock.
//
// Clock ticks and cue completions are both handled on the Run loop; public
// methods share the same lock, so engine and slot state change in one sequence.
type Controller struct {
	mu        sync.Mutex
	engine    *interval.Engine
	bank      SoundBank
	clock     Clock
	callbacks Callbacks
	posts     *queue

	session     uuid.UUID
	active      soundbank.Slot
	awaitingCue bool
	paused      bool
}

// New creates a Controller. Call Run to start processing ticks and cue completions.
func New(engine *interval.Engine, bank SoundBank, clock Clock, callbacks Callbacks) *Controller {
	return &Controller{
		engine:    engine,
		bank:      bank,
		clock:     clock,
		callbacks: callbacks,
		posts:     newQueue(),
	}
}

// Run processes ticks and posted work until ctx is done, then releases audio.
func (ctrl *Controller) Run(ctx context.Context) {
	defer ctrl.shutdown()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ctrl.clock.C():
			ctrl.handleTick()
		case <-ctrl.posts.ready:
			for _, task := range ctrl.posts.drain() {
				task()
			}
		}
	}
}

// Start validates config and begins a new session, replacing any current one.
func (ctrl *Controller) Start(config model.TimerConfig) error {
	config = config.WithDefaultKeys()
	if err := config.Validate(); err != nil {
		ctrl.reportError(err)
		return err
	}

	ctrl.mu.Lock()
	ctrl.resetLocked()
	if err := ctrl.engine.Start(config); err != nil {
		ctrl.mu.Unlock()
		ctrl.reportError(err)
		return err
	}
	ctrl.session = uuid.New()
	ctrl.bank.Configure(config.WorkoutAudioKey, config.RestAudioKey)
	ctrl.bank.PauseAll(true)
	ctrl.bank.Play(soundbank.SlotWorkout, false)
	ctrl.active = soundbank.SlotWorkout
	ctrl.clock.Start()
	state := ctrl.engine.State()
	session := ctrl.session
	ctrl.mu.Unlock()

	logger.Info("session started", "session", session, "workout", config.WorkoutSeconds,
		"rest", config.RestSeconds, "rounds", config.TotalRounds)
	ctrl.notifyPhaseStarted(state.Phase, state.CurrentRound)
	ctrl.notifyTick(state)
	return nil
}

// Pause stops the countdown and pauses whatever is playing. Repeated calls do nothing.
func (ctrl *Controller) Pause() {
	ctrl.mu.Lock()
	defer ctrl.mu.Unlock()
	if ctrl.paused || ctrl.engine.State().Phase == interval.PhaseIdle {
		return
	}
	ctrl.paused = true
	ctrl.engine.Pause()
	ctrl.clock.Stop()
	ctrl.bank.PauseAll(false)
	logger.Debug("session paused", "session", ctrl.session)
}

// Resume restarts the countdown and the slot that was active when paused.
func (ctrl *Controller) Resume() {
	ctrl.mu.Lock()
	defer ctrl.mu.Unlock()
	if !ctrl.paused {
		return
	}
	ctrl.paused = false
	ctrl.engine.Resume()
	if ctrl.engine.State().IsRunning {
		ctrl.clock.Start()
	}
	if ctrl.active != soundbank.SlotNone {
		ctrl.bank.Play(ctrl.active, true)
	}
	logger.Debug("session resumed", "session", ctrl.session, "slot", ctrl.active)
}

// Reset abandons the session. Cue completions from it are ignored afterwards.
func (ctrl *Controller) Reset() {
	ctrl.mu.Lock()
	ctrl.resetLocked()
	ctrl.mu.Unlock()
}

// State returns the engine snapshot.
func (ctrl *Controller) State() interval.State {
	return ctrl.engine.State()
}

// Paused reports whether the user paused the session.
func (ctrl *Controller) Paused() bool {
	ctrl.mu.Lock()
	defer ctrl.mu.Unlock()
	return ctrl.paused
}

// ActiveSlot returns the slot resumed by Resume.
func (ctrl *Controller) ActiveSlot() soundbank.Slot {
	ctrl.mu.Lock()
	defer ctrl.mu.Unlock()
	return ctrl.active
}

func (ctrl *Controller) resetLocked() {
	if ctrl.session != uuid.Nil {
		logger.Debug("session reset", "session", ctrl.session)
	}
	ctrl.session = uuid.Nil
	ctrl.engine.Reset()
	ctrl.clock.Stop()
	ctrl.bank.PauseAll(true)
	ctrl.active = soundbank.SlotNone
	ctrl.awaitingCue = false
	ctrl.paused = false
}

func (ctrl *Controller) handleTick() {
	ctrl.mu.Lock()
	if ctrl.paused || ctrl.awaitingCue {
		ctrl.mu.Unlock()
		return
	}

	event, err := ctrl.engine.Tick()
	if err != nil {
		ctrl.mu.Unlock()
		if errors.Is(err, interval.ErrInvalidTransition) {
			logger.Debug("stale tick dropped", "error", err)
			return
		}
		logger.Error("tick failed", "error", err)
		return
	}

	if event.Type == interval.EventPhaseExpired {
		ctrl.expireLocked()
	}
	state := ctrl.engine.State()
	ctrl.mu.Unlock()

	ctrl.notifyTick(state)
}

// expireLocked stops the countdown and plays the alarm, or the done cue when the
// session is about to end. Advance waits for that cue.
func (ctrl *Controller) expireLocked() {
	ctrl.clock.Stop()
	ctrl.bank.PauseAll(true)

	cue := soundbank.SlotAlarm
	if ctrl.engine.IsFinalExpiry() {
		cue = soundbank.SlotDone
	}
	ctrl.active = cue
	ctrl.awaitingCue = true

	session := ctrl.session
	finished := func() {
		ctrl.posts.push(func() { ctrl.handleCueFinished(session, cue) })
	}
	ctrl.bank.OnComplete(cue, finished)
	if !ctrl.bank.Play(cue, false) {
		logger.Warn("cue unavailable, advancing without it", "slot", cue)
		finished()
	}
}

func (ctrl *Controller) handleCueFinished(session uuid.UUID, cue soundbank.Slot) {
	ctrl.mu.Lock()
	if session != ctrl.session || !ctrl.awaitingCue || cue != ctrl.active {
		ctrl.mu.Unlock()
		logger.Debug("stale cue completion dropped", "session", session, "slot", cue)
		return
	}
	ctrl.awaitingCue = false

	event, err := ctrl.engine.Advance()
	if err != nil {
		ctrl.mu.Unlock()
		logger.Error("advance failed", "error", err)
		return
	}

	switch event.Type {
	case interval.EventFinished:
		ctrl.active = soundbank.SlotNone
		ctrl.mu.Unlock()
		logger.Info("session finished", "session", session, "rounds", event.Round)
		if ctrl.callbacks.OnFinished != nil {
			ctrl.callbacks.OnFinished()
		}
		return
	case interval.EventPhaseStarted:
		ctrl.startPhaseLocked(event.Phase)
	}
	state := ctrl.engine.State()
	ctrl.mu.Unlock()

	ctrl.notifyPhaseStarted(event.Phase, event.Round)
	ctrl.notifyTick(state)
}

func (ctrl *Controller) startPhaseLocked(phase interval.Phase) {
	slot := soundbank.SlotWorkout
	if phase == interval.PhaseRest {
		slot = soundbank.SlotRest
	}
	ctrl.bank.PauseAll(true)
	ctrl.active = slot

	if ctrl.paused {
		// Resume will start both the clock and the rewound slot.
		ctrl.engine.Pause()
		return
	}
	ctrl.bank.Play(slot, false)
	ctrl.clock.Start()
}

func (ctrl *Controller) notifyTick(state interval.State) {
	if ctrl.callbacks.OnTick != nil {
		ctrl.callbacks.OnTick(state.RemainingSeconds, state.Phase, state.CurrentRound, state.TotalRounds)
	}
}

func (ctrl *Controller) notifyPhaseStarted(phase interval.Phase, round int) {
	if ctrl.callbacks.OnPhaseStarted != nil {
		ctrl.callbacks.OnPhaseStarted(phase, round)
	}
}

func (ctrl *Controller) reportError(err error) {
	logger.Warn("invalid timer input", "error", err)
	if ctrl.callbacks.OnError != nil {
		ctrl.callbacks.OnError(userMessage(err))
	}
}

func (ctrl *Controller) shutdown() {
	ctrl.mu.Lock()
	defer ctrl.mu.Unlock()
	ctrl.session = uuid.Nil
	ctrl.clock.Stop()
	ctrl.bank.StopAndRelease()
}

func userMessage(err error) string {
	if errors.Is(err, model.ErrInvalidConfig) {
		return "Please enter valid numbers for workout time, rest time, and rounds."
	}
	return fmt.Sprintf("Error: %v", err)
}
