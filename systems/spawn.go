package systems

import (
	"math"

	"github.com/weldworks/weldsparks/archetypes"
	"github.com/weldworks/weldsparks/components"
	cfg "github.com/weldworks/weldsparks/config"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateSpawner creates the spawn scheduler system. It runs once per tick
// before physics and may add at most one spark.
func NewUpdateSpawner(rng Rand) ecs.System {
	return func(e *ecs.ECS) {
		hero, ok := heroEntry(e)
		if !ok {
			return
		}
		em := components.Emitter.Get(hero)

		// Sampled once: a tick emits at most one spark.
		count := CountSparks(e)

		ScheduleSpawn(em, rng, func() bool {
			if count >= Capacity(em.Intensity) {
				return false
			}
			x, y := heroOrigin(hero)
			entry := archetypes.Spark.Spawn(e)
			spark := NewSpark(rng, x, y)
			components.Spark.Set(entry, &spark)
			return true
		})
	}
}

// ScheduleSpawn advances the emission schedule at em.Now. emit tries to add
// one spark and reports whether it did (false when the store is full).
//
// Exactly one of four things happens once the schedule is due: continue a
// running burst, start a new burst, pause for a while, or emit a single spark.
func ScheduleSpawn(em *components.EmitterData, rng Rand, emit func() bool) {
	now := em.Now
	if now < em.NextSpawnAt {
		return
	}

	c := &cfg.Sparks
	intensity := em.Intensity

	spawnOne := func() {
		if emit() {
			em.LastFlash = now
			em.HasFlash = true
		}
	}

	if em.BurstLeft > 0 {
		spawnOne()
		em.BurstLeft--
		em.NextSpawnAt = now + randRange(rng, c.BurstStepMin, c.BurstStepMax)/intensity
		return
	}

	if rng.Float64() < c.BurstChance*intensity {
		em.BurstLeft = int(math.Floor(randRange(rng, c.BurstCountMin, c.BurstCountMax) * intensity))
		spawnOne()
		em.BurstLeft--
		em.NextSpawnAt = now + randRange(rng, c.BurstStepMin, c.BurstStepMax)/intensity
		return
	}

	if rng.Float64() < c.PauseChance {
		em.NextSpawnAt = now + randRange(rng, c.PauseMin, c.PauseMax)
		return
	}

	spawnOne()
	em.NextSpawnAt = now + randRange(rng, c.BaseIntervalMin, c.BaseIntervalMax)/intensity
}

// NewSpark launches a spark from (x, y). Most sparks fly left around pi with
// a slight upward kick; some go in any direction.
func NewSpark(rng Rand, x, y float64) components.SparkData {
	c := &cfg.Sparks

	speed := randRange(rng, c.SpeedMin, c.SpeedMax) * lerp(c.SpeedJitterMin, c.SpeedJitterMax, rng.Float64())

	var theta float64
	if rng.Float64() < c.FullRandomChance {
		theta = randRange(rng, 0, math.Pi*2)
	} else {
		theta = math.Pi + randRange(rng, -c.ThetaSpread, c.ThetaSpread)
	}

	vx := math.Cos(theta) * speed
	vy := math.Sin(theta)*(speed*c.VerticalScale) - randRange(rng, 0, c.UpBias*speed)

	life := randRange(rng, c.LifeMinMS, c.LifeMaxMS)

	return components.SparkData{
		X:       x,
		Y:       y,
		PrevX:   x,
		PrevY:   y,
		VX:      vx,
		VY:      vy,
		Life:    life,
		MaxLife: life,
		Size:    randRange(rng, c.SizeMin, c.SizeMax),
		Hue:     randRange(rng, c.HueMin, c.HueMax),
	}
}
