package factory

import (
	"errors"
	"fmt"

	"github.com/automoto/chain/archetypes"
	"github.com/automoto/chain/components"
	cfg "github.com/automoto/chain/config"
	"github.com/automoto/chain/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var ErrUnknownItem = errors.New("unknown item kind")

func CreateItem(ecs *ecs.ECS, x, y float64, kind string) (*donburi.Entry, error) {
	if _, ok := cfg.Item.Types[kind]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownItem, kind)
	}

	item := archetypes.Item.Spawn(ecs)
	newObject(ecs, item, x, y, cfg.Item.Size, cfg.Item.Size, tags.ResolvItem)
	components.Item.SetValue(item, components.ItemData{
		Kind:  kind,
		BaseY: y,
	})
	return item, nil
}
