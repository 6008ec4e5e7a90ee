package systems

import (
	"testing"

	"github.com/automoto/chain/components"
	cfg "github.com/automoto/chain/config"
	"github.com/automoto/chain/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newTestWorld builds an empty level of the given size with default tuning.
func newTestWorld(t *testing.T, width, height float64) *ecs.ECS {
	t.Helper()
	cfg.Reset()
	t.Cleanup(cfg.Reset)

	w := ecs.NewECS(donburi.NewWorld())
	factory.CreateLevel(w, components.LevelData{Name: "test", Width: width, Height: height})
	factory.CreateSpace(w, int(width), int(height), cfg.Physics.CellSize, cfg.Physics.CellSize)
	factory.CreateCamera(w)
	factory.CreateInput(w)
	return w
}

// entriesOf collects the live entries carrying tag.
func entriesOf(w *ecs.ECS, tag *donburi.ComponentType[donburi.Tag]) []*donburi.Entry {
	var out []*donburi.Entry
	tag.Each(w.World, func(e *donburi.Entry) {
		if isLive(e) {
			out = append(out, e)
		}
	})
	return out
}

func mustEnemy(t *testing.T, w *ecs.ECS, x, y float64, name string) *donburi.Entry {
	t.Helper()
	e, err := factory.CreateEnemy(w, x, y, name)
	if err != nil {
		t.Fatalf("create %s: %v", name, err)
	}
	return e
}

func runTicks(w *ecs.ECS, n int, systems ...ecs.System) {
	for range n {
		for _, system := range systems {
			system(w)
		}
	}
}
