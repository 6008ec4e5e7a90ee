package leveldata

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile(t *testing.T) {
	spec, err := LoadFile(os.DirFS("testdata"), "meadow.tmx")
	require.NoError(t, err)

	assert.Equal(t, "Test Meadow", spec.Name)
	assert.Equal(t, 320.0, spec.Width)
	assert.Equal(t, 160.0, spec.Height)
	assert.False(t, spec.Boss)
	assert.Equal(t, Point{X: 32, Y: 96}, spec.PlayerStart)

	require.Len(t, spec.Tiles, 12)
	walkable := 0
	for _, tile := range spec.Tiles {
		assert.Equal(t, 32.0, tile.W)
		assert.Equal(t, 32.0, tile.H)
		if tile.Walkable {
			walkable++
			assert.Equal(t, 128.0, tile.Y, "only the ground row is walkable")
		}
	}
	assert.Equal(t, 10, walkable)

	assert.Equal(t, []Placement{
		{Type: "bat", X: 128, Y: 32},
		{Type: "slime", X: 256, Y: 104},
	}, spec.Enemies)
	assert.Equal(t, []Placement{{Type: "coin", X: 176, Y: 40}}, spec.Items)

	require.NotNil(t, spec.Exit)
	assert.Equal(t, Rect{X: 288, Y: 64, W: 32, H: 64}, *spec.Exit)
}

func TestLoadFileBossLevel(t *testing.T) {
	spec, err := LoadFile(os.DirFS("testdata"), "arena.tmx")
	require.NoError(t, err)

	assert.Equal(t, "arena", spec.Name)
	assert.True(t, spec.Boss)
	assert.Nil(t, spec.Exit)
	assert.Len(t, spec.Tiles, 8)
	assert.Equal(t, []Placement{{Type: "cannon", X: 160, Y: 48}}, spec.Enemies)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(os.DirFS("testdata"), "nope.tmx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load TMX nope.tmx")
}

func TestLoadAll(t *testing.T) {
	specs, err := LoadAll(os.DirFS("testdata"), ".")
	require.NoError(t, err)
	require.Len(t, specs, 2)
	assert.Equal(t, "arena", specs[0].Name)
	assert.Equal(t, "Test Meadow", specs[1].Name)

	_, err = LoadAll(os.DirFS("testdata"), "empty")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	ground := []TileRect{{X: 0, Y: 100, W: 32, H: 32}}

	tests := []struct {
		name    string
		spec    Spec
		wantErr error
	}{
		{
			name:    "no tiles",
			spec:    Spec{Name: "void", Width: 100, Height: 100, Boss: true},
			wantErr: ErrEmptyLevel,
		},
		{
			name:    "no size",
			spec:    Spec{Name: "flat", Tiles: ground, Boss: true},
			wantErr: ErrInvalidLevel,
		},
		{
			name:    "regular level without exit",
			spec:    Spec{Name: "trap", Width: 100, Height: 200, Tiles: ground},
			wantErr: ErrInvalidLevel,
		},
		{
			name:    "empty tile",
			spec:    Spec{Name: "thin", Width: 100, Height: 200, Boss: true, Tiles: []TileRect{{W: 32}}},
			wantErr: ErrInvalidLevel,
		},
		{
			name: "boss level without exit",
			spec: Spec{Name: "arena", Width: 100, Height: 200, Boss: true, Tiles: ground},
		},
		{
			name: "regular level",
			spec: Spec{Name: "ok", Width: 100, Height: 200, Tiles: ground, Exit: &Rect{W: 10, H: 10}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.spec.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestDemoLevelsAreValid(t *testing.T) {
	for _, spec := range []Spec{Demo(), DemoBoss()} {
		assert.NoError(t, spec.Validate(), spec.Name)
	}
}
