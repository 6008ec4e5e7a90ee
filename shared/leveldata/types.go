// Package leveldata describes level geometry and placements, and loads them
// from Tiled TMX files. It has no dependencies on donburi or resolv, pure data
// only.
package leveldata

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyLevel   = errors.New("level has no tiles")
	ErrInvalidLevel = errors.New("invalid level")
)

// Spec is everything needed to build a level: static tiles plus initial enemy
// and item placements.
type Spec struct {
	Name   string
	Width  float64 // pixels
	Height float64
	Boss   bool // cleared by defeating every enemy

	PlayerStart Point
	Tiles       []TileRect
	Enemies     []Placement // Type is an enemy type or archetype name
	Items       []Placement // Type is an item kind
	Exit        *Rect       // required unless Boss
}

type Point struct {
	X, Y float64
}

type Rect struct {
	X, Y, W, H float64
}

// TileRect is a static tile. Every tile is solid in a level; walkable tiles
// can be crossed in the overworld.
type TileRect struct {
	X, Y, W, H float64
	Walkable   bool
}

// Placement positions an entity by its top-left corner.
type Placement struct {
	Type string
	X, Y float64
}

// Validate checks the spec can be built into a level.
func (s *Spec) Validate() error {
	if len(s.Tiles) == 0 {
		return fmt.Errorf("%s: %w", s.Name, ErrEmptyLevel)
	}
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: %s has size %gx%g", ErrInvalidLevel, s.Name, s.Width, s.Height)
	}
	if !s.Boss && s.Exit == nil {
		return fmt.Errorf("%w: %s has no exit", ErrInvalidLevel, s.Name)
	}
	for _, t := range s.Tiles {
		if t.W <= 0 || t.H <= 0 {
			return fmt.Errorf("%w: %s has an empty tile at (%g, %g)", ErrInvalidLevel, s.Name, t.X, t.Y)
		}
	}
	return nil
}
