package systems

import (
	"math"

	"github.com/weldworks/weldsparks/components"
	cfg "github.com/weldworks/weldsparks/config"
	"github.com/weldworks/weldsparks/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// heroEntry returns the container entity, if the scene created one
func heroEntry(e *ecs.ECS) (*donburi.Entry, bool) {
	return tags.Hero.First(e.World)
}

// CountSparks returns the number of live sparks
func CountSparks(e *ecs.ECS) int {
	n := 0
	tags.Spark.Each(e.World, func(*donburi.Entry) {
		n++
	})
	return n
}

// Capacity returns the maximum number of live sparks for an intensity
func Capacity(intensity float64) int {
	return int(math.Floor(cfg.Sparks.PopulationFactor * intensity))
}

// heroOrigin returns the current emission point of the hero entity
func heroOrigin(entry *donburi.Entry) (float64, float64) {
	obj := components.Object.Get(entry)
	return OriginPx(obj.W, obj.H, components.Origin.Get(entry))
}
