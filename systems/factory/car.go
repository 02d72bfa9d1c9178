package factory

import (
	"image/color"

	"github.com/automoto/testarossa/archetypes"
	"github.com/automoto/testarossa/assets"
	"github.com/automoto/testarossa/components"
	cfg "github.com/automoto/testarossa/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCar spawns the car at the origin with zeroed motion state.
func CreateCar(ecs *ecs.ECS) *donburi.Entry {
	car := archetypes.Car.Spawn(ecs)
	components.Motion.SetValue(car, components.MotionData{})
	return car
}

// AttachModel gives the car its mesh and starts the fade-in.
func AttachModel(car *donburi.Entry, model *assets.Model, c color.NRGBA) {
	car.AddComponent(components.Model)
	components.Model.SetValue(car, components.ModelData{
		Name:  model.Name,
		Mesh:  model.Mesh,
		Color: c,
	})

	car.AddComponent(components.Fade)
	components.Fade.SetValue(car, components.FadeData{
		Tween: gween.New(0, 1, cfg.Scene.FadeDuration, ease.OutQuad),
	})
}
