package interval

// Phase represents the current interval kind.
type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseWorkout Phase = "workout"
	PhaseRest    Phase = "rest"
	PhaseAlarm   Phase = "alarm"
	PhaseDone    Phase = "done"
)

// EventType defines the type of Engine event.
type EventType string

const (
	EventTick         EventType = "tick"
	EventPhaseExpired EventType = "phase_expired"
	EventPhaseStarted EventType = "phase_started"
	EventFinished     EventType = "finished"
)

// Event is the result of a Tick or Advance call.
//
// For EventPhaseExpired, Phase is the phase that just ran out.
type Event struct {
	Type        EventType
	Phase       Phase
	Remaining   int
	Round       int
	TotalRounds int
}

// State is a snapshot of the engine.
type State struct {
	Phase            Phase
	Expired          Phase
	RemainingSeconds int
	CurrentRound     int
	TotalRounds      int
	IsRunning        bool
}
