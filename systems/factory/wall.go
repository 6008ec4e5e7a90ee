package factory

import (
	"github.com/automoto/chain/archetypes"
	"github.com/automoto/chain/components"
	"github.com/automoto/chain/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateTile adds a static tile. Every tile blocks in level mode; walkable
// tiles are passable in the overworld.
func CreateTile(ecs *ecs.ECS, x, y, w, h float64, walkable bool) *donburi.Entry {
	tile := archetypes.Tile.Spawn(ecs)

	resolvTags := []string{tags.ResolvSolid}
	if walkable {
		resolvTags = append(resolvTags, tags.ResolvWalkable)
	}
	newObject(ecs, tile, x, y, w, h, resolvTags...)
	components.Tile.SetValue(tile, components.TileData{Walkable: walkable})

	return tile
}
