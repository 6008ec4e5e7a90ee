package gamemath

import "math"

// CalculateAimVelocity returns a velocity of the given speed pointing from
// (fromX, fromY) toward (targetX, targetY). A zero-length aim falls back to
// (speed, 0).
func CalculateAimVelocity(fromX, fromY, targetX, targetY, speed float64) (velX, velY float64) {
	dirX := targetX - fromX
	dirY := targetY - fromY
	dist := math.Sqrt(dirX*dirX + dirY*dirY)
	if dist == 0 {
		return speed, 0
	}
	return (dirX / dist) * speed, (dirY / dist) * speed
}

// Distance returns the euclidean distance between two points.
func Distance(ax, ay, bx, by float64) float64 {
	return math.Hypot(bx-ax, by-ay)
}
