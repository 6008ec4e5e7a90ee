package components

import "github.com/yohamta/donburi"

// ProjectileData is a straight-line shot. Player shots hit the first enemy
// they touch; hostile shots belong to the boss and hurt the player.
type ProjectileData struct {
	Damage  int
	Hostile bool
}

var Projectile = donburi.NewComponentType[ProjectileData]()
