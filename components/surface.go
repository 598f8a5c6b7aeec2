package components

import "github.com/yohamta/donburi"

// SurfaceData describes the drawing surface backing the container.
// The container's logical size lives in the entity's Object.
type SurfaceData struct {
	DPR      float64 // logical to backing scale, capped
	BackingW int
	BackingH int
}

var Surface = donburi.NewComponentType[SurfaceData]()
