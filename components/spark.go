package components

import "github.com/yohamta/donburi"

// SparkData is one weld spark. Positions are surface-local logical pixels.
type SparkData struct {
	X, Y         float64
	PrevX, PrevY float64 // position one frame ago, only used for the trail
	VX, VY       float64 // px/s
	Life         float64 // remaining ms, 0 < Life <= MaxLife while alive
	MaxLife      float64 // ms
	Size         float64 // trail width and head radius base
	Hue          float64 // degrees
}

var Spark = donburi.NewComponentType[SparkData]()
