package components

import "github.com/yohamta/donburi"

// DeathData marks an entity destroyed this frame. Marked entities are
// ignored by every damage path and removed from the world at the end of the
// frame.
type DeathData struct {
	Killed bool // destroyed by damage rather than by expiring
}

var Death = donburi.NewComponentType[DeathData]()
