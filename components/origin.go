package components

import "github.com/yohamta/donburi"

// OriginData locates the weld point. Until the background image reports its
// natural size the origin is a percentage of the container.
type OriginData struct {
	XPercent, YPercent     float64
	AnchorX, AnchorY       float64 // px in the source image
	ObjectPosX, ObjectPosY float64 // cover alignment, 0..1
	NaturalW, NaturalH     float64 // 0 until known
}

var Origin = donburi.NewComponentType[OriginData]()
