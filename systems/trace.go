package systems

import (
	"github.com/automoto/testarossa/components"
	cfg "github.com/automoto/testarossa/config"
	"github.com/automoto/testarossa/logging"
	"github.com/automoto/testarossa/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// TraceFrame is the headless renderer: it logs the car transform every
// config.Debug.TraceEvery frames instead of drawing.
func TraceFrame(e *ecs.ECS, _ *ebiten.Image) {
	carEntry, ok := tags.Car.First(e.World)
	if !ok {
		return
	}
	m := components.Motion.Get(carEntry)
	every := uint64(max(cfg.Debug.TraceEvery, 1))
	if m.Frame%every != 0 {
		return
	}
	logging.L().Named("trace").Info("frame",
		zap.Uint64("frame", m.Frame),
		zap.Float64("positionX", m.PositionX),
		zap.Float64("rotationY", m.RotationY),
		zap.Float64("targetX", m.TargetX))
}
