package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Tile       = donburi.NewTag().SetName("Tile")
	Enemy      = donburi.NewTag().SetName("Enemy")
	Projectile = donburi.NewTag().SetName("Projectile")
	Effect     = donburi.NewTag().SetName("Effect")
	Item       = donburi.NewTag().SetName("Item")
	FinishLine = donburi.NewTag().SetName("FinishLine")
)

// Resolv tags for physics collision
const (
	ResolvSolid      = "solid"
	ResolvWalkable   = "walkable"
	ResolvPlayer     = "Player"
	ResolvEnemy      = "Enemy"
	ResolvProjectile = "Projectile"
	ResolvItem       = "item"
	ResolvFinishLine = "finishline"
)
