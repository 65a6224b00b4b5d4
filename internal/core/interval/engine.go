package interval

import (
	"errors"
	"fmt"
	"sync"

	"hitit/internal/core/model"
)

// ErrInvalidTransition indicates an operation that is not valid in the current phase.
var ErrInvalidTransition = errors.New("invalid timer transition")

// Engine is the workout/rest state machine.
//
// Engine never advances on its own: when a countdown reaches zero it reports
// EventPhaseExpired and waits for Advance.
type Engine struct {
	mu        sync.Mutex
	config    model.TimerConfig
	phase     Phase
	expired   Phase
	remaining int
	round     int
	running   bool
}

// New creates an idle Engine.
func New() *Engine {
	return &Engine{phase: PhaseIdle}
}

// Start begins a new session with round 1 of the workout phase.
func (engine *Engine) Start(config model.TimerConfig) error {
	if err := config.Validate(); err != nil {
		return err
	}

	engine.mu.Lock()
	defer engine.mu.Unlock()
	engine.config = config
	engine.phase = PhaseWorkout
	engine.expired = ""
	engine.remaining = config.WorkoutSeconds
	engine.round = 1
	engine.running = true
	return nil
}

// Tick counts one second down.
func (engine *Engine) Tick() (Event, error) {
	engine.mu.Lock()
	defer engine.mu.Unlock()

	if !engine.running || engine.remaining <= 0 {
		return Event{}, fmt.Errorf("%w: tick while %s and not running", ErrInvalidTransition, engine.phase)
	}

	engine.remaining--
	if engine.remaining > 0 {
		return engine.eventLocked(EventTick, engine.phase), nil
	}

	engine.running = false
	engine.expired = engine.phase
	engine.phase = PhaseAlarm
	return engine.eventLocked(EventPhaseExpired, engine.expired), nil
}

// Advance moves past an expired phase. It is called once the expiry cue has finished.
func (engine *Engine) Advance() (Event, error) {
	engine.mu.Lock()
	defer engine.mu.Unlock()

	if engine.phase != PhaseAlarm {
		return Event{}, fmt.Errorf("%w: advance while %s", ErrInvalidTransition, engine.phase)
	}

	switch engine.expired {
	case PhaseWorkout:
		engine.expired = ""
		engine.enterPhaseLocked(PhaseRest, engine.config.RestSeconds)
		return engine.eventLocked(EventPhaseStarted, PhaseRest), nil
	case PhaseRest:
		engine.expired = ""
		if engine.round >= engine.config.TotalRounds {
			engine.phase = PhaseDone
			engine.remaining = 0
			engine.running = false
			return engine.eventLocked(EventFinished, PhaseDone), nil
		}
		engine.round++
		engine.enterPhaseLocked(PhaseWorkout, engine.config.WorkoutSeconds)
		return engine.eventLocked(EventPhaseStarted, PhaseWorkout), nil
	default:
		return Event{}, fmt.Errorf("%w: no expired phase recorded", ErrInvalidTransition)
	}
}

// Pause freezes the countdown. Calling it repeatedly has no further effect.
func (engine *Engine) Pause() {
	engine.mu.Lock()
	engine.running = false
	engine.mu.Unlock()
}

// Resume restarts the countdown from the current remaining time.
// It does nothing while idle, finished, or waiting for Advance.
func (engine *Engine) Resume() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.phase != PhaseWorkout && engine.phase != PhaseRest {
		return
	}
	engine.running = engine.remaining > 0
}

// Reset returns the engine to idle and discards the config.
func (engine *Engine) Reset() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	engine.config = model.TimerConfig{}
	engine.phase = PhaseIdle
	engine.expired = ""
	engine.remaining = 0
	engine.round = 0
	engine.running = false
}

// IsFinalExpiry reports whether the pending Advance will finish the session.
func (engine *Engine) IsFinalExpiry() bool {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.phase == PhaseAlarm &&
		engine.expired == PhaseRest &&
		engine.round >= engine.config.TotalRounds
}

// Config returns the active session config.
func (engine *Engine) Config() model.TimerConfig {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.config
}

// State returns a snapshot of the engine.
func (engine *Engine) State() State {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return State{
		Phase:            engine.phase,
		Expired:          engine.expired,
		RemainingSeconds: engine.remaining,
		CurrentRound:     engine.round,
		TotalRounds:      engine.config.TotalRounds,
		IsRunning:        engine.running,
	}
}

func (engine *Engine) enterPhaseLocked(phase Phase, seconds int) {
	engine.phase = phase
	engine.remaining = seconds
	engine.running = true
}

func (engine *Engine) eventLocked(eventType EventType, phase Phase) Event {
	return Event{
		Type:        eventType,
		Phase:       phase,
		Remaining:   engine.remaining,
		Round:       engine.round,
		TotalRounds: engine.config.TotalRounds,
	}
}
