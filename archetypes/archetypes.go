package archetypes

import (
	"github.com/automoto/testarossa/components"
	cfg "github.com/automoto/testarossa/config"
	"github.com/automoto/testarossa/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	// Car starts with motion state only; the model and fade are added once
	// the mesh has loaded.
	Car = newArchetype(
		tags.Car,
		components.Motion,
	)
	Street = newArchetype(
		tags.Street,
		components.Grid,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Viewport = newArchetype(
		tags.Viewport,
		components.Viewport,
	)
	InputSource = newArchetype(
		components.InputSource,
	)
	Overlay = newArchetype(
		tags.Overlay,
		components.Overlay,
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
