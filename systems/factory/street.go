package factory

import (
	"github.com/automoto/testarossa/archetypes"
	"github.com/automoto/testarossa/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateStreet(ecs *ecs.ECS, size float64, divisions int) *donburi.Entry {
	street := archetypes.Street.Spawn(ecs)
	components.Grid.SetValue(street, components.GridData{
		Size:      size,
		Divisions: divisions,
	})
	return street
}
