package archetypes

import (
	"github.com/weldworks/weldsparks/components"
	cfg "github.com/weldworks/weldsparks/config"
	"github.com/weldworks/weldsparks/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Spark = newArchetype(
		tags.Spark,
		components.Spark,
	)
	// Hero is the single container entity: surface, weld origin and spawn schedule
	Hero = newArchetype(
		tags.Hero,
		components.Object,
		components.Surface,
		components.Origin,
		components.Emitter,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
