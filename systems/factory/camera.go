package factory

import (
	"github.com/automoto/testarossa/archetypes"
	"github.com/automoto/testarossa/components"
	cfg "github.com/automoto/testarossa/config"
	"github.com/automoto/testarossa/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera places the camera at its fixed offset, looking at the origin.
// The aspect is filled in by the viewport adapter.
func CreateCamera(ecs *ecs.ECS) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	p, t := cfg.Camera.Position, cfg.Camera.Target
	components.Camera.SetValue(camera, components.CameraData{
		Perspective: gamemath.Perspective{
			Position:    mgl64.Vec3(p),
			Target:      mgl64.Vec3(t),
			FieldOfView: cfg.Camera.FieldOfView,
			Aspect:      1,
			Near:        cfg.Camera.Near,
			Far:         cfg.Camera.Far,
		},
	})
	return camera
}
