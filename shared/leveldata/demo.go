package leveldata

const demoTile = 32

// Demo returns a small built-in side-scrolling level with one of each regular
// enemy, a pit and an exit.
func Demo() Spec {
	spec := Spec{
		Name:        "Demo Meadow",
		Width:       50 * demoTile,
		Height:      600,
		PlayerStart: Point{X: 64, Y: 480},
		Enemies: []Placement{
			{Type: "slime", X: 400, Y: 520},
			{Type: "bat", X: 900, Y: 320},
			{Type: "knight", X: 1200, Y: 512},
		},
		Items: []Placement{
			{Type: "coin", X: 300, Y: 500},
			{Type: "magic_vial", X: 560, Y: 380},
			{Type: "food", X: 1000, Y: 500},
		},
		Exit: &Rect{X: 1536, Y: 448, W: 64, H: 96},
	}

	// Ground with a pit between columns 20 and 23
	spec.Tiles = append(spec.Tiles, row(0, 20, 544, true)...)
	spec.Tiles = append(spec.Tiles, row(0, 20, 576, true)...)
	spec.Tiles = append(spec.Tiles, row(23, 50, 544, true)...)
	spec.Tiles = append(spec.Tiles, row(23, 50, 576, true)...)

	// Floating platforms
	spec.Tiles = append(spec.Tiles, row(16, 19, 416, false)...)
	spec.Tiles = append(spec.Tiles, row(30, 33, 448, false)...)
	return spec
}

// DemoBoss returns a closed arena holding the boss.
func DemoBoss() Spec {
	spec := Spec{
		Name:        "Demo Fortress",
		Width:       25 * demoTile,
		Height:      600,
		Boss:        true,
		PlayerStart: Point{X: 64, Y: 512},
		Enemies: []Placement{
			{Type: "cannon", X: 500, Y: 496},
		},
	}
	spec.Tiles = append(spec.Tiles, row(0, 25, 544, true)...)
	spec.Tiles = append(spec.Tiles, row(0, 25, 576, true)...)
	for y := 0.0; y < 544; y += demoTile {
		spec.Tiles = append(spec.Tiles,
			TileRect{X: 0, Y: y, W: demoTile, H: demoTile},
			TileRect{X: 24 * demoTile, Y: y, W: demoTile, H: demoTile})
	}
	spec.PlayerStart.X = demoTile + 8
	return spec
}

// row lays tiles along y from column from up to, but excluding, column to.
func row(from, to int, y float64, walkable bool) []TileRect {
	tiles := make([]TileRect, 0, to-from)
	for c := from; c < to; c++ {
		tiles = append(tiles, TileRect{
			X:        float64(c * demoTile),
			Y:        y,
			W:        demoTile,
			H:        demoTile,
			Walkable: walkable,
		})
	}
	return tiles
}
