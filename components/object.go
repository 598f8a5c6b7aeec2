package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is a non-colliding rectangle. The hero entity keeps its
// container bounds here (X, Y = 0, W and H in logical pixels).
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()
