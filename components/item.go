package components

import "github.com/yohamta/donburi"

type ItemData struct {
	Kind  string // key into config.Item.Types
	BaseY float64
}

var Item = donburi.NewComponentType[ItemData]()
