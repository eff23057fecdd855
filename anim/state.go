package anim

// State is the discrete animation category selected for an actor each tick.
// Exactly one holds per tick.
type State int

const (
	// StateIdle is the zero value; fresh resolvers start idle.
	StateIdle State = iota
	StateRun
	StateJump
	StateFall
	StateSlide
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRun:
		return "run"
	case StateJump:
		return "jump"
	case StateFall:
		return "fall"
	case StateSlide:
		return "slide"
	}
	return "unknown"
}
