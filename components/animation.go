package components

import "github.com/yohamta/donburi"

// AnimationData is the frame counter renderers use to pick sprite frames.
type AnimationData struct {
	Frame int
}

var Animation = donburi.NewComponentType[AnimationData]()
