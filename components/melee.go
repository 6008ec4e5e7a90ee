package components

import "github.com/yohamta/donburi"

// AttackVariant is the direction of a melee swing.
type AttackVariant int

const (
	AttackForward AttackVariant = iota
	AttackUp
	AttackDown
)

func (v AttackVariant) String() string {
	switch v {
	case AttackUp:
		return "up"
	case AttackDown:
		return "down"
	}
	return "forward"
}

type MeleeAttackData struct {
	IsAttacking bool
	Variant     AttackVariant
	FramesLeft  int
	Cooldown    int
	HitEntities map[donburi.Entity]bool // enemies already hit by this swing
}

var MeleeAttack = donburi.NewComponentType[MeleeAttackData]()
