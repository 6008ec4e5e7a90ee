package components

import (
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Name   string
	Width  float64
	Height float64
	Boss   bool // cleared by defeating every enemy instead of reaching the exit

	StartX float64
	StartY float64
}

var Level = donburi.NewComponentType[LevelData]()

// TileData is static level geometry.
type TileData struct {
	Walkable bool // passable in the overworld
}

var Tile = donburi.NewComponentType[TileData]()
