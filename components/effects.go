package components

import "github.com/yohamta/donburi"

// FlashData tracks the hurt flash shown after an entity takes a hit.
type FlashData struct {
	Duration int // frames remaining
}

var Flash = donburi.NewComponentType[FlashData]()

// AutoDestroyData gives an entity a fixed lifetime in frames.
type AutoDestroyData struct {
	FramesRemaining int
}

var AutoDestroy = donburi.NewComponentType[AutoDestroyData]()

// EffectKind distinguishes area spells.
type EffectKind int

const (
	EffectBurst  EffectKind = iota // radial burst around a point
	EffectStrike                   // vertical bolt growing up from a target point
)

type EffectData struct {
	Kind        EffectKind
	Damage      int
	HitEntities map[donburi.Entity]bool // each enemy is damaged at most once

	// Burst
	CenterX float64
	CenterY float64
	Radius  float64

	// Strike
	X        float64 // bolt center
	TargetY  float64 // ground point the bolt grows up from
	Width    float64
	Height   float64
	Striking bool // still growing
}

var Effect = donburi.NewComponentType[EffectData]()
