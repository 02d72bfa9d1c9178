package factory

import (
	"github.com/automoto/testarossa/archetypes"
	"github.com/automoto/testarossa/components"
	cfg "github.com/automoto/testarossa/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateViewport spawns the viewport at the configured window size, so the
// geometry is valid even if the host's first report is degenerate.
func CreateViewport(ecs *ecs.ECS) *donburi.Entry {
	viewport := archetypes.Viewport.Spawn(ecs)
	components.Viewport.SetValue(viewport, components.ViewportData{
		Width:            cfg.C.Width,
		Height:           cfg.C.Height,
		AspectRatio:      float64(cfg.C.Width) / float64(cfg.C.Height),
		HorizontalCenter: float64(cfg.C.Width) / 2,
	})
	return viewport
}
