package components

import (
	cfg "github.com/automoto/chain/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's held flags.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  cfg.Actions
	Previous cfg.Actions
}

// Action returns the temporal state of one action.
func (in *InputData) Action(id cfg.ActionID) ActionState {
	if id <= cfg.ActionNone || id >= cfg.ActionCount {
		return ActionState{}
	}
	cur, prev := in.Current[id], in.Previous[id]
	return ActionState{
		Pressed:      cur,
		JustPressed:  cur && !prev,
		JustReleased: !cur && prev,
	}
}

// Push records a new frame of held flags.
func (in *InputData) Push(flags cfg.Actions) {
	in.Previous = in.Current
	in.Current = flags
}

var Input = donburi.NewComponentType[InputData]()
