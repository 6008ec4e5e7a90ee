package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// EnemyKind selects the AI routine an enemy runs.
type EnemyKind int

const (
	KindHopper EnemyKind = iota
	KindFlyer
	KindCharger
	KindBoss
)

var kindNames = map[string]EnemyKind{
	"hopper":  KindHopper,
	"flyer":   KindFlyer,
	"charger": KindCharger,
	"boss":    KindBoss,
}

// ParseEnemyKind maps a config kind name to an EnemyKind.
func ParseEnemyKind(name string) (EnemyKind, bool) {
	k, ok := kindNames[name]
	return k, ok
}

func (k EnemyKind) String() string {
	switch k {
	case KindHopper:
		return "hopper"
	case KindFlyer:
		return "flyer"
	case KindCharger:
		return "charger"
	case KindBoss:
		return "boss"
	}
	return "unknown"
}

type EnemyData struct {
	Kind     EnemyKind
	TypeName string // "slime", "bat", "knight", "cannon"
	Damage   int
	Speed    float64
	Score    int

	// Spawn point; patrols and flight bands are measured from here
	AnchorX float64
	AnchorY float64

	Direction      float64 // patrol direction, -1 or 1
	FacingRight    bool
	AttackCooldown int
}

var Enemy = donburi.NewComponentType[EnemyData]()

type HopperData struct {
	HopTimer int
}

type FlyerData struct {
	Angle float64 // phase accumulator for the erratic path
}

type ChargerData struct {
	ChargeTimer int
}

type BossData struct {
	ArenaLeft  float64
	ArenaRight float64
	BaseY      float64

	Intro      *gween.Tween // vertical offset during the descent
	IntroTimer int

	TransitionTimer int
	LastPhase       int // phase observed on the previous active frame
	PatternTimer    int // firing cadence, reset on every volley
	JumpTimer       int // phase 2 jump cadence, independent of firing
}

var Hopper = donburi.NewComponentType[HopperData]()
var Flyer = donburi.NewComponentType[FlyerData]()
var Charger = donburi.NewComponentType[ChargerData]()
var Boss = donburi.NewComponentType[BossData]()
