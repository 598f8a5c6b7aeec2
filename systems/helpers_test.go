package systems

import (
	"github.com/solarlune/resolv"
	"github.com/weldworks/weldsparks/archetypes"
	"github.com/weldworks/weldsparks/components"
	"github.com/weldworks/weldsparks/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// seqRand replays a fixed sequence of values, wrapping around at the end
type seqRand struct {
	vals []float64
	i    int
}

func newSeqRand(vals ...float64) *seqRand {
	return &seqRand{vals: vals}
}

func (s *seqRand) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

func newTestECS(w, h, intensity float64) (*ecs.ECS, *donburi.Entry) {
	e := ecs.NewECS(donburi.NewWorld())
	hero := archetypes.Hero.Spawn(e)

	obj := resolv.NewObject(0, 0, 0, 0, tags.ResolvContainer)
	components.Object.Set(hero, &components.ObjectData{Object: obj})
	components.Origin.SetValue(hero, components.OriginData{
		XPercent:   50,
		YPercent:   50,
		ObjectPosX: 0.5,
		ObjectPosY: 0.5,
	})
	components.Emitter.SetValue(hero, components.EmitterData{Intensity: intensity})
	ResizeSurface(hero, w, h, 1)
	return e, hero
}

// tick mirrors the scene clock: set the frame time, then run the systems
func tick(e *ecs.ECS, hero *donburi.Entry, now float64, systems ...ecs.System) {
	em := components.Emitter.Get(hero)
	dt := now - em.LastT
	if dt < 0 {
		dt = 0
	}
	if dt > 64 {
		dt = 64
	}
	em.Dt = dt / 1000
	em.LastT = now
	em.Now = now
	for _, s := range systems {
		s(e)
	}
}

func addSpark(e *ecs.ECS, p components.SparkData) *donburi.Entry {
	entry := archetypes.Spark.Spawn(e)
	components.Spark.Set(entry, &p)
	return entry
}
