package systems

import (
	"github.com/automoto/testarossa/components"
	cfg "github.com/automoto/testarossa/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFade advances every fade tween by one frame.
func UpdateFade(e *ecs.ECS) {
	components.Fade.Each(e.World, func(entry *donburi.Entry) {
		fade := components.Fade.Get(entry)
		if fade.Done || fade.Tween == nil {
			return
		}
		v, finished := fade.Tween.Update(cfg.Scene.FrameDelta)
		fade.Alpha = float64(v)
		fade.Done = finished
	})
}

// UpdateOverlay pulses the loading notice back and forth.
func UpdateOverlay(e *ecs.ECS) {
	components.Overlay.Each(e.World, func(entry *donburi.Entry) {
		overlay := components.Overlay.Get(entry)
		if overlay.Failed || overlay.Pulse == nil {
			return
		}
		v, finished := overlay.Pulse.Update(cfg.Scene.FrameDelta)
		overlay.Alpha = float64(v)
		if finished {
			to := float32(1)
			if v > 0.5 {
				to = 0.25
			}
			overlay.Pulse = gween.New(v, to, cfg.Overlay.PulseDuration, ease.InOutSine)
		}
	})
}

// FailOverlay switches the notice to its terminal failure message.
func FailOverlay(e *ecs.ECS, message string) {
	components.Overlay.Each(e.World, func(entry *donburi.Entry) {
		overlay := components.Overlay.Get(entry)
		overlay.Message = message
		overlay.Failed = true
		overlay.Pulse = nil
		overlay.Alpha = 1
	})
}
