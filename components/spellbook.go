package components

import (
	cfg "github.com/automoto/chain/config"
	"github.com/yohamta/donburi"
)

// SpellID indexes the spellbook slots.
type SpellID int

const (
	SpellShield SpellID = iota
	SpellSwift
	SpellFireball
	SpellThunder
	SpellStrike
	SpellCount
)

var spellNames = [SpellCount]string{"shield", "swift", "fireball", "thunder", "strike"}

func (s SpellID) String() string {
	if s < 0 || s >= SpellCount {
		return "unknown"
	}
	return spellNames[s]
}

// Cost returns the magic cost of casting s.
func (s SpellID) Cost() int {
	switch s {
	case SpellShield:
		return cfg.Spell.Shield.Cost
	case SpellSwift:
		return cfg.Spell.Swift.Cost
	case SpellFireball:
		return cfg.Spell.FireballCost
	case SpellThunder:
		return cfg.Spell.ThunderCost
	case SpellStrike:
		return cfg.Spell.StrikeCost
	}
	return 0
}

// BuffData is a timed modifier. Recasting refreshes Remaining.
type BuffData struct {
	Active    bool
	Remaining int
}

// Activate starts or refreshes the buff.
func (b *BuffData) Activate(duration int) {
	b.Active = true
	b.Remaining = duration
}

// Tick advances the buff by one frame.
func (b *BuffData) Tick() {
	if !b.Active {
		return
	}
	b.Remaining--
	if b.Remaining <= 0 {
		b.Remaining = 0
		b.Active = false
	}
}

type SpellbookData struct {
	Selected SpellID
	Shield   BuffData
	Swift    BuffData
}

// Select picks a slot; out-of-range slots are ignored.
func (s *SpellbookData) Select(id SpellID) {
	if id >= 0 && id < SpellCount {
		s.Selected = id
	}
}

func (s *SpellbookData) Next() {
	s.Selected = (s.Selected + 1) % SpellCount
}

func (s *SpellbookData) Prev() {
	s.Selected = (s.Selected + SpellCount - 1) % SpellCount
}

// DamageMultiplier scales incoming damage while the shield is up.
func (s *SpellbookData) DamageMultiplier() float64 {
	if s.Shield.Active {
		return cfg.Spell.DamageMultiplier
	}
	return 1
}

func (s *SpellbookData) SpeedMultiplier() float64 {
	if s.Swift.Active {
		return cfg.Spell.SpeedMultiplier
	}
	return 1
}

func (s *SpellbookData) JumpMultiplier() float64 {
	if s.Swift.Active {
		return cfg.Spell.JumpMultiplier
	}
	return 1
}

var Spellbook = donburi.NewComponentType[SpellbookData]()
