package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current int
	Max     int
}

// Heal restores up to amount without exceeding Max.
func (h *HealthData) Heal(amount int) {
	h.Current = min(h.Max, h.Current+amount)
}

// Fraction returns Current/Max, or 0 when Max is not positive.
func (h *HealthData) Fraction() float64 {
	if h.Max <= 0 {
		return 0
	}
	return float64(h.Current) / float64(h.Max)
}

type MagicData struct {
	Current int
	Max     int
}

// Restore refills up to amount without exceeding Max.
func (m *MagicData) Restore(amount int) {
	m.Current = min(m.Max, m.Current+amount)
}

var Health = donburi.NewComponentType[HealthData]()
var Magic = donburi.NewComponentType[MagicData]()
