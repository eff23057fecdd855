package archetypes

import (
	"github.com/mossbank/ramble/components"
	cfg "github.com/mossbank/ramble/config"
	"github.com/mossbank/ramble/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Object,
		components.Kinematics,
		components.DirInput,
		components.Pose,
		components.Animation,
		components.SquashStretch,
	)
	Walker = newArchetype(
		tags.Walker,
		components.Walker,
		components.Object,
		components.Kinematics,
		components.Pose,
		components.Animation,
		components.SquashStretch,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Ramp = newArchetype(
		tags.Ramp,
		components.Object,
	)
	Platform = newArchetype(
		tags.Platform,
		components.Object,
		components.Tween,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Space = newArchetype(
		components.Space,
	)
	Settings = newArchetype(
		components.Settings,
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
