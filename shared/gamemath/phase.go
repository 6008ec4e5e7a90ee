package gamemath

// BossPhase derives the boss phase from its remaining health. Health above
// phase2 of max is phase 1, above phase3 is phase 2, anything else is phase 3.
// The result never decreases as health decreases.
func BossPhase(health, maxHealth int, phase2, phase3 float64) int {
	if maxHealth <= 0 {
		return 3
	}
	h := float64(health)
	m := float64(maxHealth)
	switch {
	case h <= m*phase3:
		return 3
	case h <= m*phase2:
		return 2
	}
	return 1
}
