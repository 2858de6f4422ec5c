package menu

// State is the controller's position in the read-evaluate-print loop.
type State int

const (
	Running State = iota
	AwaitingInput
	Dispatching
	Terminated
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case AwaitingInput:
		return "awaiting-input"
	case Dispatching:
		return "dispatching"
	case Terminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Outcome is the result of dispatching one choice.
type Outcome int

const (
	// Handled means a topic handler ran.
	Handled Outcome = iota
	// Invalid means the choice was out of range and nothing ran.
	Invalid
	// Terminate means the exit sentinel was chosen.
	Terminate
)
