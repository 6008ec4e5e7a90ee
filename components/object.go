package components

import (
	"github.com/automoto/chain/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

// Rect returns the object's current bounds.
func (o *ObjectData) Rect() gamemath.Rect {
	return gamemath.NewRect(o.X, o.Y, o.W, o.H)
}

// MoveTo places the object's top-left corner and refreshes its space cells.
func (o *ObjectData) MoveTo(x, y float64) {
	o.X = x
	o.Y = y
	o.Update()
}

var Object = donburi.NewComponentType[ObjectData]()

// Space holds the level's collision space.
var Space = donburi.NewComponentType[resolv.Space]()
