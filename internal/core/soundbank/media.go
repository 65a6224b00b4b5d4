package soundbank

import "errors"

// ErrNoMedia indicates a slot has no loaded sound.
var ErrNoMedia = errors.New("no media loaded")

// Slot names one of the four playback channels.
type Slot string

const (
	SlotNone    Slot = ""
	SlotWorkout Slot = "workout"
	SlotRest    Slot = "rest"
	SlotAlarm   Slot = "alarm"
	SlotDone    Slot = "done"
)

// Slots lists every playback channel in a fixed order.
var Slots = []Slot{SlotWorkout, SlotRest, SlotAlarm, SlotDone}

// Resource is an opaque playable asset. fyne.Resource satisfies it.
type Resource interface {
	Name() string
	Content() []byte
}

// Resolver maps a friendly audio key to a resource for a slot.
// Unknown keys resolve to the slot's default sound.
type Resolver interface {
	Resolve(key string, slot Slot) (Resource, error)
}

// Media is a low-level playback primitive for one decoded sound.
//
// The completion handler may be called from any goroutine.
type Media interface {
	Start() error
	Pause() error
	SeekToStart() error
	IsPlaying() bool
	SetOnCompletion(handler func())
	Release() error
}

// Loader turns resources into Media.
type Loader interface {
	Load(resource Resource) (Media, error)
}
