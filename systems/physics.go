package systems

import (
	"math"

	"github.com/weldworks/weldsparks/components"
	cfg "github.com/weldworks/weldsparks/config"
	"github.com/weldworks/weldsparks/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateSparkPhysics creates the integrator system. It moves every spark by
// the tick's clamped dt and removes sparks that burned out or left the container.
func NewUpdateSparkPhysics(rng Rand) ecs.System {
	return func(e *ecs.ECS) {
		hero, ok := heroEntry(e)
		if !ok {
			return
		}
		em := components.Emitter.Get(hero)
		obj := components.Object.Get(hero)

		dt := em.Dt
		dragFactor := DragFactor(dt)

		var toRemove []*donburi.Entry

		tags.Spark.Each(e.World, func(entry *donburi.Entry) {
			p := components.Spark.Get(entry)
			IntegrateSpark(p, dt, dragFactor, rng)
			if SparkExpired(p, obj.W, obj.H) {
				toRemove = append(toRemove, entry)
			}
		})

		// Removed after the walk so no entry is skipped or visited twice
		for _, entry := range toRemove {
			e.World.Remove(entry.Entity())
		}
	}
}

// DragFactor is the velocity multiplier for a step of dt seconds. Drag is
// expressed per frame at DragFrameRate, so long and short steps agree.
func DragFactor(dt float64) float64 {
	return math.Pow(cfg.Sparks.Drag, dt*cfg.Sparks.DragFrameRate)
}

// IntegrateSpark advances one spark by dt seconds. A nil rng disables turbulence.
func IntegrateSpark(p *components.SparkData, dt, dragFactor float64, rng Rand) {
	c := &cfg.Sparks

	p.PrevX = p.X
	p.PrevY = p.Y

	// light turbulence keeps trajectories from being perfectly smooth
	if rng != nil {
		p.VX += randRange(rng, c.TurbulenceXMin, c.TurbulenceXMax)
		p.VY += randRange(rng, c.TurbulenceYMin, c.TurbulenceYMax)
	}

	p.VX *= dragFactor
	p.VY = p.VY*dragFactor + c.Gravity*dt

	p.X += p.VX * dt
	p.Y += p.VY * dt

	p.Life -= dt * 1000
}

// SparkExpired reports whether a spark must leave the store. There is no
// check above the container: sparks thrown upward fall back in.
func SparkExpired(p *components.SparkData, w, h float64) bool {
	m := cfg.Sparks.ExitMargin
	return p.Life <= 0 ||
		p.X < -m ||
		p.X > w+m ||
		p.Y > h+m
}
