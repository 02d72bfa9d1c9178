package factory

import (
	"github.com/automoto/testarossa/archetypes"
	"github.com/automoto/testarossa/components"
	cfg "github.com/automoto/testarossa/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLoadingOverlay spawns the pulsing notice shown while the model loads.
func CreateLoadingOverlay(ecs *ecs.ECS) *donburi.Entry {
	overlay := archetypes.Overlay.Spawn(ecs)
	components.Overlay.SetValue(overlay, components.OverlayData{
		Message: cfg.Overlay.LoadingText,
		Pulse:   gween.New(0.25, 1, cfg.Overlay.PulseDuration, ease.InOutSine),
		Alpha:   0.25,
	})
	return overlay
}
