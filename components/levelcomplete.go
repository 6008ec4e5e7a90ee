package components

import "github.com/yohamta/donburi"

// LevelCompleteData stores whether the level has been finished
type LevelCompleteData struct {
	IsComplete bool
	Forced     bool // finished by the skip cheat
}

var LevelComplete = donburi.NewComponentType[LevelCompleteData]()
