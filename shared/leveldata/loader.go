package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Layer and object group names read from TMX files.
const (
	TileLayer    = "wg-tiles"
	PlayerGroup  = "PlayerSpawn"
	EnemyGroup   = "EnemySpawn"
	ItemGroup    = "ItemSpawn"
	ExitGroup    = "FinishLine"
	EnemyProp    = "enemyType"
	ItemProp     = "itemType"
	WalkableProp = "walkable"
	BossProp     = "boss"
	NameProp     = "name"
)

// LoadFile parses a TMX file into a level Spec. It takes an fs.FS so callers
// can pass embed.FS or os.DirFS.
//
// Tiles come from the "wg-tiles" layer; a tileset tile with the bool property
// "walkable" is passable in the overworld. Objects in the "EnemySpawn" and
// "ItemSpawn" groups are placed by their "enemyType" and "itemType"
// properties, falling back to the object name. The first "PlayerSpawn" object
// is the start and the first "FinishLine" object is the exit region. Map
// properties "name" and "boss" override the file stem and mark boss levels.
func LoadFile(fsys fs.FS, tmxPath string) (*Spec, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	spec := &Spec{
		Name:   strings.TrimSuffix(path.Base(tmxPath), ".tmx"),
		Width:  float64(levelMap.Width * levelMap.TileWidth),
		Height: float64(levelMap.Height * levelMap.TileHeight),
		Boss:   levelMap.Properties.GetBool(BossProp),
	}
	if name := levelMap.Properties.GetString(NameProp); name != "" {
		spec.Name = name
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, layer := range levelMap.Layers {
		if layer.Name != TileLayer {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}

				walkable := false
				if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
					walkable = tilesetTile.Properties.GetBool(WalkableProp)
				}

				spec.Tiles = append(spec.Tiles, TileRect{
					X:        float64(x) * tileW,
					Y:        float64(y) * tileH,
					W:        tileW,
					H:        tileH,
					Walkable: walkable,
				})
			}
		}
		break
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case PlayerGroup:
			if len(og.Objects) > 0 {
				spec.PlayerStart = Point{X: og.Objects[0].X, Y: og.Objects[0].Y}
			}
		case EnemyGroup:
			spec.Enemies = append(spec.Enemies, placements(og.Objects, EnemyProp)...)
		case ItemGroup:
			spec.Items = append(spec.Items, placements(og.Objects, ItemProp)...)
		case ExitGroup:
			if len(og.Objects) > 0 {
				o := og.Objects[0]
				spec.Exit = &Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
			}
		}
	}

	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	return spec, nil
}

func placements(objects []*tiled.Object, typeProp string) []Placement {
	out := make([]Placement, 0, len(objects))
	for _, o := range objects {
		kind := o.Properties.GetString(typeProp)
		if kind == "" {
			kind = o.Name
		}
		out = append(out, Placement{Type: kind, X: o.X, Y: o.Y})
	}
	// Sort left-to-right for consistent spawn order
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].X < out[j].X
	})
	return out
}

// LoadAll discovers all .tmx files in levelsDir within fsys and loads them,
// sorted by file name.
func LoadAll(fsys fs.FS, levelsDir string) ([]*Spec, error) {
	pattern := path.Join(levelsDir, "*.tmx")
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	sort.Strings(matches)
	specs := make([]*Spec, 0, len(matches))
	for _, p := range matches {
		spec, err := LoadFile(fsys, p)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	return specs, nil
}
