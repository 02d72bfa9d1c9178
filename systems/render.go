package systems

import (
	"image/color"

	"github.com/automoto/testarossa/components"
	cfg "github.com/automoto/testarossa/config"
	"github.com/automoto/testarossa/gamemath"
	"github.com/automoto/testarossa/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawScene renders the street and the car offscreen and composes the result
// onto the screen.
func DrawScene(e *ecs.ECS, screen *ebiten.Image) {
	camEntry, ok := components.Camera.First(e.World)
	if !ok {
		return // no camera yet
	}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	cam := components.Camera.Get(camEntry).Projector(float64(w), float64(h))
	target := offscreen(w, h)
	target.Fill(cfg.Scene.ClearColor)

	tags.Street.Each(e.World, func(entry *donburi.Entry) {
		drawStreet(target, cam, components.Grid.Get(entry))
	})
	tags.Car.Each(e.World, func(entry *donburi.Entry) {
		drawCar(target, cam, entry)
	})

	compose(screen, target)
}

func drawStreet(dst *ebiten.Image, cam gamemath.Projector, grid *components.GridData) {
	half := grid.Size / 2
	spacing := grid.Spacing()

	// lines running away from the camera
	for i := 0; i <= grid.Divisions; i++ {
		x := -half + float64(i)*spacing
		c := cfg.Grid.Color
		if i*2 == grid.Divisions {
			c = cfg.Grid.CenterColor
		}
		strokeSegment(dst, cam, mgl64.Vec3{x, 0, -half}, mgl64.Vec3{x, 0, half}, c)
	}

	// cross lines, scrolled toward the camera
	for i := 0; i <= grid.Divisions; i++ {
		z := -half + float64(i)*spacing + grid.Offset
		if z > half {
			continue
		}
		strokeSegment(dst, cam, mgl64.Vec3{-half, 0, z}, mgl64.Vec3{half, 0, z}, cfg.Grid.Color)
	}
}

func drawCar(dst *ebiten.Image, cam gamemath.Projector, entry *donburi.Entry) {
	if !entry.HasComponent(components.Model) {
		return // still loading
	}
	model := components.Model.Get(entry)
	if model.Mesh == nil {
		return
	}
	motion := components.Motion.Get(entry)

	alpha := 1.0
	if entry.HasComponent(components.Fade) {
		alpha = components.Fade.Get(entry).Alpha
	}
	if alpha <= 0 {
		return
	}
	c := withAlpha(model.Color, alpha)

	m := gamemath.ModelMatrix(motion.PositionX, motion.RotationY)
	for _, s := range model.Mesh.Segments {
		a := mgl64.TransformCoordinate(s.A, m)
		b := mgl64.TransformCoordinate(s.B, m)
		strokeSegment(dst, cam, a, b, c)
	}
}

func strokeSegment(dst *ebiten.Image, cam gamemath.Projector, a, b mgl64.Vec3, c color.Color) {
	x0, y0, x1, y1, ok := cam.ProjectSegment(a, b)
	if !ok {
		return
	}
	vector.StrokeLine(dst, float32(x0), float32(y0), float32(x1), float32(y1), cfg.Scene.LineWidth, c, true)
}

func withAlpha(c color.NRGBA, alpha float64) color.NRGBA {
	if alpha >= 1 {
		return c
	}
	c.A = uint8(float64(c.A) * alpha)
	return c
}
