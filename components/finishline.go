package components

import "github.com/yohamta/donburi"

// FinishLineData marks the exit region of a non-boss level.
type FinishLineData struct {
	Activated bool
}

var FinishLine = donburi.NewComponentType[FinishLineData]()
