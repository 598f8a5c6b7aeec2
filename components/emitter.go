package components

import "github.com/yohamta/donburi"

// EmitterData holds the spawn schedule and frame clock of the hero effect.
// Timestamps are in ms on the scene clock.
type EmitterData struct {
	Intensity float64

	NextSpawnAt float64
	BurstLeft   int

	LastFlash float64 // time of the latest emission
	HasFlash  bool    // false until the first spark is emitted

	Now   float64 // timestamp of the current tick
	LastT float64 // timestamp of the previous tick
	Dt    float64 // seconds, clamped
}

var Emitter = donburi.NewComponentType[EmitterData]()
