package systems

import (
	"github.com/automoto/chain/components"
	cfg "github.com/automoto/chain/config"
	"github.com/automoto/chain/shared/gamemath"
	"github.com/automoto/chain/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSpells advances buff timers.
func UpdateSpells(ecs *ecs.ECS) {
	components.Spellbook.Each(ecs.World, func(e *donburi.Entry) {
		book := components.Spellbook.Get(e)
		book.Shield.Tick()
		book.Swift.Tick()
	})
}

// CastSpell casts a spell for the caster and deducts its cost. It returns
// false, changing nothing, when the caster cannot afford it.
func CastSpell(ecs *ecs.ECS, caster *donburi.Entry, id components.SpellID) bool {
	if id < 0 || id >= components.SpellCount {
		return false
	}
	magic := components.Magic.Get(caster)
	cost := id.Cost()
	if magic.Current < cost {
		return false
	}

	book := components.Spellbook.Get(caster)
	facingRight := components.Player.Get(caster).FacingRight()
	facing := gamemath.Facing(facingRight)
	r := components.Object.Get(caster).Rect()

	switch id {
	case components.SpellShield:
		book.Shield.Activate(cfg.Spell.Shield.Duration)
	case components.SpellSwift:
		book.Swift.Activate(cfg.Spell.Swift.Duration)
	case components.SpellFireball:
		factory.CreateFireball(ecs, r.CenterX(), r.CenterY(), facingRight)
	case components.SpellThunder:
		factory.CreateThunder(ecs, r.CenterX()+cfg.Spell.ThunderOffset*facing, r.CenterY())
	case components.SpellStrike:
		factory.CreateStrike(ecs, r.CenterX()+cfg.Spell.StrikeOffset*facing, r.Bottom())
	}

	magic.Current -= cost
	return true
}

// effectCanHit reports whether an area effect may damage the enemy bounds.
// It does not record the hit.
func effectCanHit(effect *components.EffectData, enemy donburi.Entity, bounds gamemath.Rect) bool {
	if effect.HitEntities[enemy] {
		return false
	}
	switch effect.Kind {
	case components.EffectBurst:
		dist := gamemath.Distance(effect.CenterX, effect.CenterY, bounds.CenterX(), bounds.CenterY())
		return dist <= effect.Radius
	case components.EffectStrike:
		dx := bounds.CenterX() - effect.X
		if dx < 0 {
			dx = -dx
		}
		return dx < cfg.Spell.StrikeTolerance &&
			bounds.Y < effect.TargetY &&
			bounds.Bottom() > effect.TargetY-effect.Height
	}
	return false
}
