package systems

import (
	"math"

	"github.com/automoto/chain/components"
	cfg "github.com/automoto/chain/config"
	"github.com/automoto/chain/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateItems bobs pickups in place and applies the ones the player touches.
func UpdateItems(ecs *ecs.ECS) {
	playerEntry, hasPlayer := tags.Player.First(ecs.World)

	var collected []*donburi.Entry
	tags.Item.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) {
			return
		}
		item := components.Item.Get(e)
		obj := components.Object.Get(e)

		frame := components.Animation.Get(e).Frame + 1
		bob := int(math.Sin(float64(frame)*cfg.Item.BobFrequency) * cfg.Item.BobAmplitude)
		obj.MoveTo(obj.X, item.BaseY+float64(bob))

		if hasPlayer && components.Object.Get(playerEntry).Rect().Intersects(obj.Rect()) {
			collected = append(collected, e)
		}
	})

	for _, e := range collected {
		CollectItem(playerEntry, components.Item.Get(e).Kind)
		markDead(e, false)
	}
}

// CollectItem applies a pickup of the given kind to the player. Unknown kinds
// do nothing.
func CollectItem(playerEntry *donburi.Entry, kind string) {
	itemType, ok := cfg.Item.Types[kind]
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	health := components.Health.Get(playerEntry)
	magic := components.Magic.Get(playerEntry)

	if itemType.MaxHealth > 0 {
		health.Max += itemType.MaxHealth
		health.Current += itemType.MaxHealth
	}
	if itemType.MaxMagic > 0 {
		magic.Max += itemType.MaxMagic
		magic.Current += itemType.MaxMagic
	}
	health.Heal(itemType.Heal)
	magic.Restore(itemType.Magic)
	player.Score += itemType.Score
}
