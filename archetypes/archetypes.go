package archetypes

import (
	"github.com/automoto/rogueratou/components"
	cfg "github.com/automoto/rogueratou/config"
	"github.com/automoto/rogueratou/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Space = newArchetype(
		components.Space,
	)
	Input = newArchetype(
		components.Input,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Physics,
		components.Color,
	)
	Platform = newArchetype(
		tags.Platform,
		tags.Transient,
		components.Object,
		components.Color,
	)
	Rock = newArchetype(
		tags.Rock,
		tags.Transient,
		components.Rock,
		components.Object,
		components.Physics,
		components.Color,
	)
	Arrow = newArchetype(
		tags.Arrow,
		tags.Transient,
		components.Arrow,
		components.Object,
		components.Physics,
		components.Color,
	)
	Portal = newArchetype(
		tags.Portal,
		tags.Transient,
		components.Portal,
		components.Object,
		components.Color,
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
