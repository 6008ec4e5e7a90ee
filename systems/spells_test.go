package systems

import (
	"testing"

	"github.com/automoto/chain/components"
	cfg "github.com/automoto/chain/config"
	"github.com/automoto/chain/systems/factory"
	"github.com/automoto/chain/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCastSpellInsufficientMagic(t *testing.T) {
	w := newTestWorld(t, 640, 480)
	player := factory.CreatePlayer(w, 100, 100)
	magic := components.Magic.Get(player)
	magic.Current = 1

	assert.False(t, CastSpell(w, player, components.SpellThunder))
	assert.Equal(t, 1, magic.Current)
	assert.Empty(t, entriesOf(w, tags.Effect))

	assert.False(t, CastSpell(w, player, components.SpellFireball))
	assert.Empty(t, entriesOf(w, tags.Projectile))
}

func TestCastSpellBuffs(t *testing.T) {
	w := newTestWorld(t, 640, 480)
	player := factory.CreatePlayer(w, 100, 100)
	book := components.Spellbook.Get(player)

	require.True(t, CastSpell(w, player, components.SpellShield))
	require.True(t, CastSpell(w, player, components.SpellSwift))
	assert.Equal(t, 2, components.Magic.Get(player).Current)
	assert.True(t, book.Shield.Active)
	assert.Equal(t, cfg.Spell.Swift.Duration, book.Swift.Remaining)
	assert.Equal(t, 0.5, book.DamageMultiplier())
	assert.Equal(t, 1.5, book.SpeedMultiplier())

	runTicks(w, cfg.Spell.Swift.Duration, UpdateSpells)
	assert.False(t, book.Swift.Active)
	assert.True(t, book.Shield.Active, "shield lasts longer than swift")
	assert.Equal(t, 1.0, book.SpeedMultiplier())

	runTicks(w, cfg.Spell.Shield.Duration, UpdateSpells)
	assert.False(t, book.Shield.Active)
	assert.Equal(t, 0, book.Shield.Remaining)
}

func TestCastSpellFireballDirection(t *testing.T) {
	w := newTestWorld(t, 640, 480)
	player := factory.CreatePlayer(w, 100, 100)
	components.Player.Get(player).Direction.X = -1

	require.True(t, CastSpell(w, player, components.SpellFireball))

	shots := entriesOf(w, tags.Projectile)
	require.Len(t, shots, 1)
	physics := components.Physics.Get(shots[0])
	assert.Equal(t, -cfg.Spell.FireballSpeed, physics.SpeedX)
	assert.Equal(t, 0.0, physics.SpeedY)
	assert.False(t, components.Projectile.Get(shots[0]).Hostile)
	assert.Equal(t, 116.0, components.Object.Get(shots[0]).Rect().CenterX())
}

func TestCastSpellPlacesEffects(t *testing.T) {
	w := newTestWorld(t, 640, 480)
	player := factory.CreatePlayer(w, 100, 100)
	components.Magic.Get(player).Current = 5

	require.True(t, CastSpell(w, player, components.SpellThunder))
	require.True(t, CastSpell(w, player, components.SpellStrike))
	assert.Equal(t, 0, components.Magic.Get(player).Current)

	effects := entriesOf(w, tags.Effect)
	require.Len(t, effects, 2)
	for _, e := range effects {
		effect := components.Effect.Get(e)
		switch effect.Kind {
		case components.EffectBurst:
			assert.Equal(t, 166.0, effect.CenterX)
			assert.Equal(t, 116.0, effect.CenterY)
		case components.EffectStrike:
			assert.Equal(t, 176.0, effect.X)
			assert.Equal(t, 132.0, effect.TargetY, "bolts grow from the caster's feet")
			assert.True(t, effect.Striking)
		}
	}
}

func TestSpellSelection(t *testing.T) {
	w := newTestWorld(t, 640, 480)
	player := factory.CreatePlayer(w, 100, 100)
	book := components.Spellbook.Get(player)

	SetInput(w, cfg.Actions{}.With(cfg.ActionSpell4))
	UpdatePlayer(w)
	assert.Equal(t, components.SpellThunder, book.Selected)

	SetInput(w, cfg.Actions{}.With(cfg.ActionNextSpell))
	UpdatePlayer(w)
	assert.Equal(t, components.SpellStrike, book.Selected)

	SetInput(w, cfg.Actions{}.With(cfg.ActionNextSpell))
	UpdatePlayer(w)
	assert.Equal(t, components.SpellStrike, book.Selected, "held keys only count once")

	SetInput(w, cfg.Actions{})
	UpdatePlayer(w)
	SetInput(w, cfg.Actions{}.With(cfg.ActionNextSpell))
	UpdatePlayer(w)
	assert.Equal(t, components.SpellShield, book.Selected, "selection wraps")

	SetInput(w, cfg.Actions{}.With(cfg.ActionPrevSpell))
	UpdatePlayer(w)
	assert.Equal(t, components.SpellStrike, book.Selected)
}
