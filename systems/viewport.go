package systems

import (
	"github.com/automoto/testarossa/components"
	"github.com/automoto/testarossa/host"
	"github.com/automoto/testarossa/logging"
	"github.com/automoto/testarossa/tags"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// FitViewport brings the viewport geometry and the camera aspect in line with
// the host's current sizes. Each container dimension falls back to the
// window's when it reads zero; if the height is still zero the previous
// geometry is kept.
func FitViewport(e *ecs.ECS, env host.Environment) {
	vpEntry, ok := tags.Viewport.First(e.World)
	if !ok {
		return
	}
	vp := components.Viewport.Get(vpEntry)

	container := env.ContainerSize()
	window := env.WindowSize()

	width, height := container.Width, container.Height
	if width <= 0 {
		width = window.Width
	}
	if height <= 0 {
		height = window.Height
	}

	if width > 0 && height > 0 {
		vp.Width = width
		vp.Height = height
		vp.AspectRatio = float64(width) / float64(height)
	} else {
		logging.L().Named("viewport").Debug("degenerate viewport, keeping previous geometry",
			zap.Int("width", width),
			zap.Int("height", height))
	}

	// pointer coordinates are window-relative
	switch {
	case window.Width > 0:
		vp.HorizontalCenter = float64(window.Width) / 2
	case vp.Width > 0:
		vp.HorizontalCenter = float64(vp.Width) / 2
	}

	if camEntry, ok := components.Camera.First(e.World); ok {
		components.Camera.Get(camEntry).Aspect = vp.AspectRatio
	}
}

// WatchViewport refits the viewport on every resize notification.
func WatchViewport(e *ecs.ECS, env host.Environment) {
	env.OnResize(func() {
		FitViewport(e, env)
	})
}
