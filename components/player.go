package components

import (
	"github.com/yohamta/donburi"
)

// PlayerMode selects side-scrolling or overworld movement.
type PlayerMode int

const (
	ModeLevel PlayerMode = iota
	ModeOverworld
)

type PlayerData struct {
	Direction      Vector // facing; X is -1 or 1, Y is used in the overworld
	Mode           PlayerMode
	Score          int
	InvulnFrames   int     // invincibility window after taking damage
	InvincibleMode bool    // cheat: immune to damage, kills enemies on contact
	LastSafeX      float64 // Last position where player was safely grounded
	LastSafeY      float64
}

// FacingRight reports whether the player faces right.
func (p *PlayerData) FacingRight() bool {
	return p.Direction.X >= 0
}

var Player = donburi.NewComponentType[PlayerData]()
