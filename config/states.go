package config

// StateID identifies an entity's AI or action state.
type StateID int

const (
	StateNone StateID = -1

	// Player states
	Idle StateID = iota
	Running
	Jump
	Fall
	Attack
	Walk // overworld movement

	// Enemy AI states
	StatePatrol
	StatePursue
	StateCharge

	// Boss-only states
	StateIntro
	StateActive
	StateTransition
)

var stateNames = map[StateID]string{
	StateNone:       "none",
	Idle:            "idle",
	Running:         "running",
	Jump:            "jump",
	Fall:            "fall",
	Attack:          "attack",
	Walk:            "walk",
	StatePatrol:     "patrol",
	StatePursue:     "pursue",
	StateCharge:     "charge",
	StateIntro:      "intro",
	StateActive:     "active",
	StateTransition: "transition",
}

func (s StateID) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}
